package editor

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/session"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func asciiStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return DefaultStyleFor(r)
}

// newTestModel returns an editor over "attack at dawn" enciphered with LEMON,
// sized width x height.
func newTestModel(t *testing.T, opt session.Options, width, height int) Model {
	t.Helper()
	if opt.Direction == cipher.DirDecipher {
		opt.Direction = cipher.DirEncipher
	}
	s, err := session.New("attack at dawn", "lemon", opt)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	m := New(Config{Session: s, Style: asciiStyle()})
	return m.SetSize(width, height)
}
