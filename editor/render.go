package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/internal/textclass"
	"github.com/iw2rmb/vigenere/session"
)

const (
	panelChrome   = 4 // border + padding columns
	keyPanelRows  = 3
	analysisRows  = 5
	analysisLines = 3
)

// geometry places the panels for the current window. Rows are counted from
// the top of the view.
type geometry struct {
	inner int
	frame session.Frame

	messageRows int
	keyTop      int
	keyLeft     int
	keyWidth    int
	analysisTop int
	used        int
}

func (m Model) layout(analysis bool) (geometry, error) {
	var g geometry
	g.inner = m.width - panelChrome
	if g.inner < 1 {
		return g, fmt.Errorf("%w: message panel needs at least %d columns, have %d", ErrLayoutOverflow, panelChrome+1, m.width)
	}
	g.frame = m.frame(g.inner)
	g.messageRows = 2*len(g.frame.Lines) + 2

	g.keyWidth = utf8.RuneCountInString(g.frame.Key) + panelChrome
	if g.keyWidth > m.width {
		return g, fmt.Errorf("%w: key panel needs %d columns, have %d", ErrLayoutOverflow, g.keyWidth, m.width)
	}
	g.keyTop = g.messageRows
	g.keyLeft = leftOffset(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Repeat("+", g.keyWidth)))
	g.used = g.messageRows + keyPanelRows
	if g.used > m.height {
		return g, fmt.Errorf("%w: message panel needs %d rows, have %d", ErrLayoutOverflow, g.used, m.height)
	}

	g.analysisTop = -1
	if analysis {
		g.analysisTop = g.used
		g.used += analysisRows
		if g.used > m.height {
			return g, fmt.Errorf("%w: frequency panel needs %d rows, have %d", ErrLayoutOverflow, g.used, m.height)
		}
	}
	return g, nil
}

func (m Model) fit(analysis bool) error {
	_, err := m.layout(analysis)
	return err
}

func (m Model) View() string {
	if m.sess == nil || m.width == 0 || m.height == 0 || m.Quitting() {
		return ""
	}
	g, err := m.layout(m.showAnalysis)
	if err != nil {
		return err.Error()
	}

	parts := []string{m.renderMessage(g), m.renderKey(g)}
	if m.showAnalysis {
		parts = append(parts, m.renderAnalysis(g))
	}
	if footer := m.renderFooter(m.height - g.used); footer != "" {
		parts = append(parts, footer)
	}
	view := strings.Join(parts, "\n")
	if m.showHelp {
		view = m.renderHelpPopup(view)
	}
	return view
}

// renderHelpPopup draws the full key reference centered over base.
func (m Model) renderHelpPopup(base string) string {
	if n := lipgloss.Height(base); n < m.height {
		base += strings.Repeat("\n", m.height-n)
	}
	h := m.help
	h.Width = m.width - panelChrome
	popup := m.cfg.Style.panel().Render(h.FullHelpView(m.keys.FullHelp()))
	x := max(0, (m.width-lipgloss.Width(popup))/2)
	y := max(0, (m.height-lipgloss.Height(popup))/2)
	return overlay.New(viewModel(popup), viewModel(base), overlay.Left, overlay.Top, x, y).View()
}

// viewModel adapts a rendered string to the tea.Model the overlay composites.
type viewModel string

func (v viewModel) Init() tea.Cmd                       { return nil }
func (v viewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v viewModel) View() string                        { return string(v) }

func (m Model) renderMessage(g geometry) string {
	st := m.cfg.Style
	rows := make([]string, 0, 2*len(g.frame.Lines))
	for r, line := range g.frame.Lines {
		col := -1
		if g.frame.CursorOK && g.frame.Cursor.Row == r {
			col = g.frame.Cursor.Col
		}
		rows = append(rows, renderRow(line.Key, g.inner, -1, st.KeyRow, st.Cursor))
		rows = append(rows, renderRow(line.Text, g.inner, col, st.Message, st.Cursor))
	}
	return st.panel().Render(strings.Join(rows, "\n"))
}

func (m Model) renderKey(g geometry) string {
	st := m.cfg.Style
	slot := st.KeySlot
	if g.frame.Mode == session.ModeKey {
		slot = st.Cursor
	}
	row := renderRow(g.frame.Key, g.keyWidth-panelChrome, g.frame.KeyCursor, st.Key, slot)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, st.panel().Render(row))
}

// leftOffset counts the leading spaces of a placed line.
func leftOffset(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

func (m Model) renderAnalysis(g geometry) string {
	st := m.cfg.Style
	a := m.analysis
	text := [analysisLines]string{
		cipher.Line("unigrams: ", a.Unigrams, g.inner),
		cipher.Line("bigrams: ", a.Bigrams, g.inner),
		cipher.Line("trigrams: ", a.Trigrams, g.inner),
	}
	rows := make([]string, len(text))
	for i, s := range text {
		rows[i] = renderRow(s, g.inner, -1, st.Analysis, st.Analysis)
	}
	return st.panel().Render(strings.Join(rows, "\n"))
}

// renderFooter draws the status line and short help, limited to rows lines.
func (m Model) renderFooter(rows int) string {
	if rows <= 0 {
		return ""
	}
	status := "[" + m.sess.Mode().String() + "]"
	if !m.sess.MessageEditable() {
		status += " read-only"
	}
	if m.status != "" {
		status += " " + m.status
	}
	lines := []string{m.cfg.Style.Status.MaxWidth(m.width).Render(status)}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return strings.Join(lines, "\n")
}

// renderRow clips text to width cells, styles the rune at cursor (if >= 0)
// and pads the result to exactly width cells.
func renderRow(text string, width, cursor int, base, cur lipgloss.Style) string {
	var before, at, after strings.Builder
	cells := 0
	i := 0
	for _, r := range text {
		r = textclass.Display(r)
		w := textclass.Width(r)
		if cells+w > width {
			break
		}
		switch {
		case i < cursor || cursor < 0:
			before.WriteRune(r)
		case i == cursor:
			at.WriteRune(r)
		default:
			after.WriteRune(r)
		}
		cells += w
		i++
	}

	var sb strings.Builder
	if before.Len() > 0 {
		sb.WriteString(base.Render(before.String()))
	}
	if at.Len() > 0 {
		sb.WriteString(cur.Render(at.String()))
	}
	if after.Len() > 0 {
		sb.WriteString(base.Render(after.String()))
	}
	if cells < width {
		sb.WriteString(strings.Repeat(" ", width-cells))
	}
	return sb.String()
}
