package layout

import (
	"unicode/utf8"

	"github.com/iw2rmb/vigenere/internal/textclass"
)

// Pos is a wrapped position: Row indexes the line, Col the rune in it.
type Pos struct {
	Row int
	Col int
}

// PositionOf locates the rune at flat index in the wrapped lines.
//
// It reports false when index lies outside the runes the lines cover, which
// callers treat as "nothing to highlight".
func PositionOf(lines []string, index int) (Pos, bool) {
	if index < 0 {
		return Pos{}, false
	}
	start := 0
	for row, line := range lines {
		n := utf8.RuneCountInString(line)
		if index < start+n {
			return Pos{Row: row, Col: index - start}, true
		}
		start += n
	}
	return Pos{}, false
}

// IndexAt is the inverse of PositionOf.
func IndexAt(lines []string, p Pos) (int, bool) {
	if p.Row < 0 || p.Row >= len(lines) || p.Col < 0 {
		return 0, false
	}
	start := 0
	for _, line := range lines[:p.Row] {
		start += utf8.RuneCountInString(line)
	}
	if p.Col >= utf8.RuneCountInString(lines[p.Row]) {
		return 0, false
	}
	return start + p.Col, true
}

// ColForCell returns the rune of line that covers terminal cell, or false if
// the cell lies past the end of the line.
func ColForCell(line string, cell int) (int, bool) {
	if cell < 0 {
		return 0, false
	}
	at := 0
	col := 0
	for _, r := range line {
		w := textclass.Width(r)
		if cell < at+w {
			return col, true
		}
		at += w
		col++
	}
	return 0, false
}
