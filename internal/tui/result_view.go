package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ch3mestry/bioTest/internal/sequence"
)

type lineKind int

const (
	lineFirst lineKind = iota
	lineSecond
	lineSpacer
)

// gridLine is one screen line of the result grid.
type gridLine struct {
	kind  lineKind
	cells []sequence.Cell
}

// gridPos addresses a character cell in grid coordinates.
type gridPos struct {
	line int
	col  int
}

func (p gridPos) before(o gridPos) bool {
	return p.line < o.line || (p.line == o.line && p.col < o.col)
}

// selection is a mouse drag over the grid.
type selection struct {
	active  bool
	anchor  gridPos
	head    gridPos
	dragged bool
}

func (s selection) bounds() (gridPos, gridPos) {
	if s.head.before(s.anchor) {
		return s.head, s.anchor
	}
	return s.anchor, s.head
}

// ResultView renders the last submitted pair as a colour-coded grid.
type ResultView struct {
	first  string
	second string
	shown  bool
	lines  []gridLine
	stats  sequence.Stats
	offset int
	sel    selection
}

// SetPair replaces the displayed pair and resets scroll and selection.
func (v *ResultView) SetPair(first, second string) {
	rows := sequence.Rows(first, second)

	lines := make([]gridLine, 0, len(rows)*3)
	for i, row := range rows {
		if i > 0 {
			lines = append(lines, gridLine{kind: lineSpacer})
		}
		lines = append(lines,
			gridLine{kind: lineFirst, cells: row.First},
			gridLine{kind: lineSecond, cells: row.Second},
		)
	}

	*v = ResultView{
		first:  first,
		second: second,
		shown:  true,
		lines:  lines,
		stats:  sequence.Summary(rows),
	}
}

// Shown reports whether a pair has been submitted.
func (v ResultView) Shown() bool {
	return v.shown
}

// Scroll moves the viewport by delta lines, keeping height lines visible.
func (v *ResultView) Scroll(delta, height int) {
	maxOffset := max(0, len(v.lines)-height)
	v.offset = min(max(0, v.offset+delta), maxOffset)
}

// hit converts a screen cell relative to the grid's top-left corner into
// grid coordinates. Points below the last line clamp to it.
func (v ResultView) hit(x, y int) (gridPos, bool) {
	if len(v.lines) == 0 || y < 0 {
		return gridPos{}, false
	}
	line := min(v.offset+y, len(v.lines)-1)
	return gridPos{line: line, col: max(0, x)}, true
}

// visibleLines is the number of grid lines drawn in a viewport of height
// lines at the current offset.
func (v ResultView) visibleLines(height int) int {
	return max(0, min(height, len(v.lines)-v.offset))
}

func (v *ResultView) press(p gridPos) {
	v.sel = selection{active: true, anchor: p, head: p}
}

func (v *ResultView) extend(p gridPos) {
	if !v.sel.active {
		return
	}
	v.sel.head = p
	if p != v.sel.anchor {
		v.sel.dragged = true
	}
}

// release ends the drag and returns the selected text. The highlight stays
// until the next press.
func (v *ResultView) release() string {
	if !v.sel.active {
		return ""
	}
	v.sel.active = false
	if !v.sel.dragged {
		v.sel = selection{}
		return ""
	}
	return v.selectedText()
}

// selectedText returns the characters between the selection bounds. Lines
// are joined with newlines.
func (v ResultView) selectedText() string {
	from, to := v.sel.bounds()
	var parts []string
	for l := from.line; l <= to.line && l < len(v.lines); l++ {
		start, end := v.selectedRange(l, from, to)
		var b strings.Builder
		for _, c := range v.lines[l].cells[start:end] {
			b.WriteRune(c.Char)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n")
}

// selectedRange returns the half-open cell range of line l inside the
// selection [from, to].
func (v ResultView) selectedRange(l int, from, to gridPos) (int, int) {
	n := len(v.lines[l].cells)
	start, end := 0, n
	if l == from.line {
		start = min(from.col, n)
	}
	if l == to.line {
		end = min(to.col+1, n)
	}
	return start, max(start, end)
}

func (v ResultView) hasSelection() bool {
	return v.sel.dragged
}

// View renders height lines of the grid starting at the scroll offset.
// A non-positive height renders everything.
func (v ResultView) View(width, height int) string {
	if !v.shown {
		return ""
	}

	start, end := 0, len(v.lines)
	if height > 0 && end-start > height {
		start = min(v.offset, len(v.lines)-height)
		end = start + height
	}

	from, to := v.sel.bounds()
	rendered := make([]string, 0, end-start)
	for l := start; l < end; l++ {
		selStart, selEnd := 0, 0
		if v.hasSelection() && l >= from.line && l <= to.line {
			selStart, selEnd = v.selectedRange(l, from, to)
		}
		rendered = append(rendered, fitWidth(v.renderLine(v.lines[l], selStart, selEnd), width))
	}
	return strings.Join(rendered, "\n")
}

func (v ResultView) renderLine(line gridLine, selStart, selEnd int) string {
	var b strings.Builder
	for i, c := range line.cells {
		style := fillStyle("")
		switch line.kind {
		case lineFirst:
			style = fillStyle(c.Fill)
		case lineSecond:
			if c.Diff {
				style = diffStyle
			}
		}
		if i >= selStart && i < selEnd {
			style = style.Inherit(selectedStyle)
		}
		b.WriteString(style.Render(string(c.Char)))
	}
	return b.String()
}

func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
