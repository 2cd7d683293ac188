package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/iw2rmb/vigenere/internal/textclass"
)

// Wrap splits text into display lines of at most width cells.
//
// Lines break at Unicode line-break opportunities; a word longer than width
// is split by cells. Every rune is kept: whitespace that ends a line stays on
// it (and may hang past width), hard line breaks are honoured, and control
// whitespace is shown as a single space. width <= 0 disables wrapping.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	rs := []rune(text)
	if width <= 0 {
		return []string{displayString(rs)}
	}

	can, must := breakOpportunities(text, len(rs))

	lines := make([]string, 0, 1+len(rs)/width)
	for start := 0; start < len(rs); {
		used := 0
		end := start
		for end < len(rs) {
			if end > start && must[end] {
				break
			}
			w := textclass.Width(rs[end])
			if used > 0 && used+w > width {
				if textclass.IsSpace(rs[end]) {
					end++
					continue
				}
				break
			}
			used += w
			end++
		}

		if end < len(rs) && !must[end] {
			if br := lastBreak(can, start, end); br > start {
				end = br
			}
		}

		lines = append(lines, displayString(rs[start:end]))
		start = end
	}
	return lines
}

// breakOpportunities marks, for each rune index i, whether a line may (can)
// or must break before rune i.
func breakOpportunities(text string, n int) (can, must []bool) {
	can = make([]bool, n+1)
	must = make([]bool, n+1)

	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		pos += utf8.RuneCountInString(seg)
		if pos > n {
			pos = n
		}
		can[pos] = true
		must[pos] = mustBreak
	}
	return can, must
}

func lastBreak(can []bool, start, end int) int {
	for j := end; j > start; j-- {
		if can[j] {
			return j
		}
	}
	return start
}

func displayString(rs []rune) string {
	var sb strings.Builder
	sb.Grow(len(rs))
	for _, r := range rs {
		sb.WriteRune(textclass.Display(r))
	}
	return sb.String()
}
