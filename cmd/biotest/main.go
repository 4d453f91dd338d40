// Command biotest compares two amino acid sequences side by side in the
// terminal.
//
// Usage:
//
//	biotest [--seq1 ARND --seq2 ARNE] [--fasta pair.fasta] [flags]
//	biotest config init
package main

import (
	"fmt"
	"os"

	"github.com/Ch3mestry/bioTest/internal/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "biotest: %v\n", err)
		os.Exit(1)
	}
}
