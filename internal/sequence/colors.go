package sequence

import "unicode"

// colorMap assigns a background colour to each residue. Residues sharing a
// physico-chemical class share a colour. The gap symbol is deliberately
// absent so it renders without fill.
var colorMap = map[rune]string{
	'A': "#67E4a9",
	'R': "#bb99ff",
	'N': "#80bfff",
	'D': "#fc9cac",
	'C': "#FFEA00",
	'Q': "#80bfff",
	'E': "#fc9cac",
	'G': "#C4C4C4",
	'H': "#80bfff",
	'I': "#67E4a9",
	'L': "#67E4a9",
	'K': "#bb99ff",
	'M': "#67E4a9",
	'F': "#67E4a9",
	'P': "#67E4a9",
	'S': "#80bfff",
	'T': "#80bfff",
	'W': "#67E4a9",
	'Y': "#67E4a9",
	'V': "#67E4a9",
}

// Color returns the fill colour for r, ignoring case.
func Color(r rune) (string, bool) {
	c, ok := colorMap[unicode.ToUpper(r)]
	return c, ok
}
