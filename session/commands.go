package session

import (
	"github.com/iw2rmb/vigenere/buffer"
	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/internal/textclass"
)

// Toggle switches between key and message mode and puts the cursor on the
// first valid slot of the newly active buffer.
func (s *Session) Toggle() {
	if s.mode == ModeKey {
		s.mode = ModeMessage
	} else {
		s.mode = ModeKey
	}
	s.rev++
	b := s.active()
	b.SetCursor(b.First())
}

// SetMode activates m without moving its cursor.
func (s *Session) SetMode(m Mode) {
	if (m == ModeKey || m == ModeMessage) && m != s.mode {
		s.mode = m
		s.rev++
	}
}

// Move steps the cursor one valid slot. In message mode it skips every
// non-letter.
func (s *Session) Move(dir buffer.Dir) {
	s.active().Move(dir)
}

// SetCursor places the cursor at i in the active buffer, snapping forward to
// the next letter in message mode.
func (s *Session) SetCursor(i int) {
	s.active().SetCursor(i)
}

// ShiftKey rotates the key letter under the cursor by delta. It is a no-op
// outside key mode.
func (s *Session) ShiftKey(delta int) bool {
	if s.mode != ModeKey {
		return false
	}
	i := s.key.Cursor()
	return s.key.Set(i, cipher.Shift(s.key.At(i), delta))
}

// Type handles a typed letter and reports whether it was applied.
//
// In key mode the letter replaces the key letter under the cursor. In message
// mode (when editable) the key letter that produces the cursor position is
// rewritten so the output shows the typed letter there. The cursor then
// advances one slot in either case. Non-letters and read-only message mode
// are ignored.
func (s *Session) Type(r rune) bool {
	if !textclass.IsLetter(r) {
		return false
	}
	switch s.mode {
	case ModeKey:
		s.key.Set(s.key.Cursor(), cipher.Upper(r))
		s.key.Move(buffer.DirRight)
		return true
	case ModeMessage:
		if !s.opt.MessageEdit {
			return false
		}
		i := s.text.Cursor()
		k, ok := cipher.KeyFor(s.opt.Direction, s.text.At(i), r)
		if !ok {
			return false
		}
		ki := cipher.KeyIndexFor(s.key.Text(), s.text.Text(), i)
		s.key.Set(ki, k)
		s.text.Move(buffer.DirRight)
		return true
	}
	return false
}

// KeyIndex returns the key slot that enciphers or deciphers message rune i.
func (s *Session) KeyIndex(i int) int {
	return cipher.KeyIndexFor(s.key.Text(), s.text.Text(), i)
}

// Undo reverts the last key edit.
func (s *Session) Undo() bool { return s.key.Undo() }

// Redo reapplies the last undone key edit.
func (s *Session) Redo() bool { return s.key.Redo() }

func (s *Session) CanUndo() bool { return s.key.CanUndo() }

func (s *Session) CanRedo() bool { return s.key.CanRedo() }
