package session

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/internal/textclass"
	"github.com/iw2rmb/vigenere/layout"
)

// Line is one wrapped row of output with the key letters that produced it.
// Key spans the same cells as Text; non-letter positions are blank.
type Line struct {
	Text string
	Key  string
}

// Frame is everything a renderer needs to draw the session once.
type Frame struct {
	Mode  Mode
	Lines []Line

	// Cursor is the message cursor's wrapped position. CursorOK is false in
	// key mode or when the cursor falls outside the wrapped lines.
	Cursor   layout.Pos
	CursorOK bool

	Key string
	// KeyCursor is the key cursor in key mode; in message mode it is the key
	// slot applied at the message cursor.
	KeyCursor int
}

// Frame derives the current view, wrapping the output to width cells.
func (s *Session) Frame(width int) Frame {
	out := s.Output()
	wrapped := layout.Wrap(out, width)
	stream := []rune(cipher.KeyStream(s.text.Text(), s.key.Text()))
	src := s.text.Runes()

	f := Frame{
		Mode:  s.mode,
		Lines: make([]Line, 0, len(wrapped)),
		Key:   s.key.Text(),
	}

	at := 0
	for _, text := range wrapped {
		n := utf8.RuneCountInString(text)
		var key strings.Builder
		for i, r := range []rune(text) {
			if j := at + i; j < len(stream) && textclass.IsLetter(src[j]) {
				key.WriteRune(stream[j])
				continue
			}
			key.WriteString(strings.Repeat(" ", textclass.Width(r)))
		}
		f.Lines = append(f.Lines, Line{Text: text, Key: key.String()})
		at += n
	}

	switch s.mode {
	case ModeKey:
		f.KeyCursor = s.key.Cursor()
	case ModeMessage:
		f.KeyCursor = s.KeyIndex(s.text.Cursor())
		f.Cursor, f.CursorOK = layout.PositionOf(wrapped, s.text.Cursor())
	}
	return f
}

// TextLines returns the output rows of f.
func (f Frame) TextLines() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.Text
	}
	return out
}
