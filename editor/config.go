package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/vigenere/session"
)

// Config configures the editor Model.
type Config struct {
	// Session is driven by the editor. Required.
	Session *session.Session

	KeyMap KeyMap // zero value: DefaultKeyMap()
	Style  Style

	// Frequency panel.
	ShowAnalysis bool
	AnalysisTop  int // default: cipher.DefaultTop

	// Clipboard receives the output on the copy binding. Nil disables copy.
	Clipboard Clipboard

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}
