package editor

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/session"
)

// ErrLayoutOverflow reports a terminal too small for the panels.
var ErrLayoutOverflow = errors.New("terminal too small")

// Model is a Bubble Tea component that renders and interacts with a session.
type Model struct {
	cfg  Config
	sess *session.Session
	keys KeyMap
	help help.Model

	analysis     cipher.Analysis
	showAnalysis bool

	width, height int
	cache         *frameCache

	showHelp bool
	status   string
	err      error
	quitting bool
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.AnalysisTop <= 0 {
		cfg.AnalysisTop = cipher.DefaultTop
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	m := Model{
		cfg:          cfg,
		sess:         cfg.Session,
		keys:         cfg.KeyMap,
		help:         help.New(),
		showAnalysis: cfg.ShowAnalysis,
		cache:        &frameCache{},
	}
	if cfg.Session != nil {
		m.analysis = cipher.Analyze(cfg.Session.Text(), cfg.AnalysisTop)
		m.syncKeys()
	}
	return m
}

// frameCache holds the last session frame; the session revision and the
// wrap width identify it.
type frameCache struct {
	ok    bool
	rev   uint64
	width int
	frame session.Frame
}

func (m Model) frame(width int) session.Frame {
	rev := m.sess.Revision()
	if c := m.cache; c != nil && c.ok && c.rev == rev && c.width == width {
		return c.frame
	}
	f := m.sess.Frame(width)
	if m.cache != nil {
		*m.cache = frameCache{ok: true, rev: rev, width: width, frame: f}
	}
	return f
}

// syncKeys enables undo and redo only when the session has history for them.
func (m *Model) syncKeys() {
	m.keys.Undo.SetEnabled(m.sess.CanUndo())
	m.keys.Redo.SetEnabled(m.sess.CanRedo())
}

func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Quitting reports whether the user finished the session.
func (m Model) Quitting() bool { return m.quitting || m.err != nil }

// Output returns the session's current output.
func (m Model) Output() string {
	if m.sess == nil {
		return ""
	}
	return m.sess.Output()
}

// Status returns the transient status line message.
func (m Model) Status() string { return m.status }

func (m Model) ShowAnalysis() bool { return m.showAnalysis }

// ShowHelp reports whether the full key reference is open.
func (m Model) ShowHelp() bool { return m.showHelp }

// SetSize resizes the editor. It sets Err when the panels no longer fit.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.help.Width = width
	if m.sess != nil {
		if err := m.fit(m.showAnalysis); err != nil {
			m.err = err
		}
	}
	return m
}
