package sequence

import (
	"math"
	"unicode"
)

// Cell is a single rendered residue.
type Cell struct {
	Char rune
	// Fill is the background colour; empty means no fill.
	Fill string
	// Diff marks a residue of the second sequence that differs from the
	// residue at the same position in the first.
	Diff bool
}

// Row pairs the chunks of both sequences at one chunk index.
type Row struct {
	Index  int
	Offset int // position of the first residue in the full sequence
	First  []Cell
	Second []Cell
}

// Rows lays out a sequence pair as chunked, colour-coded rows.
// Only the first sequence is coloured and only the second is diffed.
func Rows(first, second string) []Row {
	firstChunks := Chunk(first, ChunkWidth)
	secondChunks := Chunk(second, ChunkWidth)

	n := max(len(firstChunks), len(secondChunks))
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		var a, b []rune
		if i < len(firstChunks) {
			a = []rune(firstChunks[i])
		}
		if i < len(secondChunks) {
			b = []rune(secondChunks[i])
		}

		row := Row{
			Index:  i,
			Offset: i * ChunkWidth,
			First:  make([]Cell, len(a)),
			Second: make([]Cell, len(b)),
		}
		for j, r := range a {
			fill, _ := Color(r)
			row.First[j] = Cell{Char: r, Fill: fill}
		}
		for j, r := range b {
			row.Second[j] = Cell{Char: r, Diff: j >= len(a) || !sameResidue(r, a[j])}
		}
		rows = append(rows, row)
	}
	return rows
}

func sameResidue(a, b rune) bool {
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

// Stats summarises a rendered pair.
type Stats struct {
	Length      int
	Differences int
	Identity    int // percent, rounded
}

// Summary counts the positions flagged as different across all rows.
func Summary(rows []Row) Stats {
	var s Stats
	for _, row := range rows {
		s.Length = max(s.Length, row.Offset+max(len(row.First), len(row.Second)))
		for _, c := range row.Second {
			if c.Diff {
				s.Differences++
			}
		}
	}
	if s.Length == 0 {
		return s
	}
	same := s.Length - s.Differences
	s.Identity = int(math.Round(float64(same) * 100 / float64(s.Length)))
	return s
}
