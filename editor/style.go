package editor

import "github.com/charmbracelet/lipgloss"

// asciiBorder frames every panel.
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// Style controls the editor's rendering.
type Style struct {
	Panel lipgloss.Style

	Message lipgloss.Style // output rows
	KeyRow  lipgloss.Style // key letters above each output row
	Cursor  lipgloss.Style

	Key     lipgloss.Style // key panel letters
	KeySlot lipgloss.Style // key letter used at the message cursor

	Analysis lipgloss.Style
	Status   lipgloss.Style
}

// Palette holds lipgloss color strings ("240", "#FF8800"). Empty entries keep
// the default.
type Palette struct {
	Message string
	Key     string
	Cursor  string
	Border  string
	Muted   string
}

func DefaultStyle() Style { return DefaultStyleFor(lipgloss.DefaultRenderer()) }

// DefaultStyleFor builds the default style on renderer r.
func DefaultStyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Panel:    r.NewStyle().Border(asciiBorder).Padding(0, 1),
		Message:  r.NewStyle().Bold(true),
		KeyRow:   r.NewStyle().Faint(true),
		Cursor:   r.NewStyle().Reverse(true),
		Key:      r.NewStyle(),
		KeySlot:  r.NewStyle().Underline(true),
		Analysis: r.NewStyle(),
		Status:   r.NewStyle().Faint(true),
	}
}

// WithPalette returns s with the palette's colors applied.
func (s Style) WithPalette(p Palette) Style {
	if p.Message != "" {
		s.Message = s.Message.Foreground(lipgloss.Color(p.Message))
	}
	if p.Key != "" {
		s.Key = s.Key.Foreground(lipgloss.Color(p.Key))
		s.KeySlot = s.KeySlot.Foreground(lipgloss.Color(p.Key))
	}
	if p.Cursor != "" {
		s.Cursor = s.Cursor.Foreground(lipgloss.Color(p.Cursor))
	}
	if p.Border != "" {
		s.Panel = s.Panel.BorderForeground(lipgloss.Color(p.Border))
	}
	if p.Muted != "" {
		s.KeyRow = s.KeyRow.Foreground(lipgloss.Color(p.Muted))
		s.Status = s.Status.Foreground(lipgloss.Color(p.Muted))
	}
	return s
}

// panel returns the frame style, forcing the border and padding the layout
// math depends on.
func (s Style) panel() lipgloss.Style {
	return s.Panel.Border(asciiBorder).Padding(0, 1)
}
