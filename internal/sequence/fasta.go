package sequence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA entry.
type Record struct {
	Header   string
	Sequence string
}

// ParseFASTA reads FASTA records from r. Lines starting with '>' open a new
// record; sequence lines are concatenated with whitespace removed.
func ParseFASTA(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var current *Record
	var seq strings.Builder
	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
		}
		seq.Reset()
	}

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, ">"):
			flush()
			current = &Record{Header: strings.TrimSpace(text[1:])}
		case strings.HasPrefix(text, ";"):
			// comment line
			continue
		default:
			if current == nil {
				return nil, fmt.Errorf("line %d: sequence data before first header", line)
			}
			seq.WriteString(strings.Join(strings.Fields(text), ""))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}
	flush()
	return records, nil
}

// LoadPair reads a FASTA file and returns the sequences of its first two
// records.
func LoadPair(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("opening fasta file: %w", err)
	}
	defer f.Close()

	records, err := ParseFASTA(f)
	if err != nil {
		return "", "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) < 2 {
		return "", "", fmt.Errorf("parsing %s: need 2 records, found %d", path, len(records))
	}
	return records[0].Sequence, records[1].Sequence, nil
}
