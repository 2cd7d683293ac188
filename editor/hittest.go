package editor

import (
	"github.com/iw2rmb/vigenere/layout"
	"github.com/iw2rmb/vigenere/session"
)

// hitTest maps view coordinates to a buffer slot. Clicks on either row of a
// message line address that line's runes; clicks on the key panel address
// key letters. Borders, padding and the footer miss.
func (m Model) hitTest(x, y int) (session.Mode, int, bool) {
	if m.sess == nil || m.width == 0 {
		return 0, 0, false
	}
	g, err := m.layout(m.showAnalysis)
	if err != nil {
		return 0, 0, false
	}

	if y >= 1 && y < g.messageRows-1 {
		row := (y - 1) / 2
		lines := g.frame.TextLines()
		cell := x - panelChrome/2
		if cell < 0 || cell >= g.inner {
			return 0, 0, false
		}
		col, ok := layout.ColForCell(lines[row], cell)
		if !ok {
			return 0, 0, false
		}
		i, ok := layout.IndexAt(lines, layout.Pos{Row: row, Col: col})
		if !ok {
			return 0, 0, false
		}
		return session.ModeMessage, i, true
	}

	if y == g.keyTop+1 {
		i := x - g.keyLeft - panelChrome/2
		if i < 0 || i >= g.keyWidth-panelChrome {
			return 0, 0, false
		}
		return session.ModeKey, i, true
	}
	return 0, 0, false
}
