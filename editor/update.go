package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vigenere/buffer"
	"github.com/iw2rmb/vigenere/session"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.sess == nil || m.Quitting() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
		if m.err != nil {
			m.cfg.Logger.Error("layout overflow", "width", msg.Width, "height", msg.Height, "err", m.err)
			return m, tea.Quit
		}
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.keys
	m.status = ""

	switch {
	case key.Matches(msg, km.Quit):
		m.quitting = true
		m.cfg.Logger.Debug("finish", "key", m.sess.Key())
		return m, tea.Quit
	case key.Matches(msg, km.Toggle):
		m.sess.Toggle()
		m.cfg.Logger.Debug("mode", "mode", m.sess.Mode(), "cursor", m.sess.Cursor())
	case key.Matches(msg, km.Left):
		m.sess.Move(buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.sess.Move(buffer.DirRight)
	case key.Matches(msg, km.Up):
		m.shiftKey(1)
	case key.Matches(msg, km.Down):
		m.shiftKey(-1)
	case key.Matches(msg, km.Undo):
		if m.sess.Undo() {
			m.cfg.Logger.Debug("undo", "key", m.sess.Key())
		}
	case key.Matches(msg, km.Redo):
		if m.sess.Redo() {
			m.cfg.Logger.Debug("redo", "key", m.sess.Key())
		}
	case key.Matches(msg, km.Copy):
		m = m.copyOutput()
	case key.Matches(msg, km.Analysis):
		m = m.toggleAnalysis()
	case key.Matches(msg, km.Help):
		m.showHelp = !m.showHelp
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			if m.sess.Type(r) {
				m.cfg.Logger.Debug("type", "rune", string(r), "key", m.sess.Key())
			}
		}
		if m.sess.Mode() == session.ModeMessage && !m.sess.MessageEditable() {
			m.status = "message is read-only"
		}
	}
	m.syncKeys()
	return m, nil
}

func (m Model) shiftKey(delta int) {
	if m.sess.Mode() != session.ModeKey {
		return
	}
	if m.sess.ShiftKey(delta) {
		m.cfg.Logger.Debug("shift", "delta", delta, "key", m.sess.Key())
	}
}

func (m Model) copyOutput() Model {
	if m.cfg.Clipboard == nil {
		m.status = "clipboard unavailable"
		return m
	}
	if err := m.cfg.Clipboard.WriteText(m.sess.Output()); err != nil {
		m.cfg.Logger.Warn("clipboard write failed", "err", err)
		m.status = fmt.Sprintf("copy failed: %v", err)
		return m
	}
	m.status = "output copied"
	return m
}

func (m Model) toggleAnalysis() Model {
	next := !m.showAnalysis
	if next && m.width > 0 {
		if err := m.fit(true); err != nil {
			m.status = "frequency panel does not fit"
			return m
		}
	}
	m.showAnalysis = next
	return m
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	if m.showHelp {
		m.showHelp = false
		return m
	}
	mode, index, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m
	}
	m.sess.SetMode(mode)
	m.sess.SetCursor(index)
	m.cfg.Logger.Debug("click", "mode", mode, "cursor", m.sess.Cursor())
	return m
}
