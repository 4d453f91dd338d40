package sequence

import "regexp"

// Pattern is the set of symbols accepted in a sequence: the 20 standard
// amino acids plus the gap symbol.
const Pattern = `^[ARNDCEQGHILKMFPSTWYV-]+$`

var alphabetRe = regexp.MustCompile(`(?i)` + Pattern)

// MatchesAlphabet reports whether s consists entirely of allowed symbols.
// The empty string never matches.
func MatchesAlphabet(s string) bool {
	return alphabetRe.MatchString(s)
}
