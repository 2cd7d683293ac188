// Package session holds the interactive cipher state: the message, the key,
// which of the two is being edited, and the cursor in it.
//
// A Session is a pure state machine with no terminal I/O. Hosts feed it
// commands and render the Frame it produces.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/vigenere/buffer"
	"github.com/iw2rmb/vigenere/cipher"
	"github.com/iw2rmb/vigenere/internal/textclass"
)

var (
	ErrNoLetters = errors.New("message must contain at least one letter A-Z")
	ErrKeyLength = errors.New("key length must be at least 1")
)

// DefaultPlaceholder seeds keys created by NewWithKeyLength.
const DefaultPlaceholder = 'A'

// Mode selects the buffer the cursor addresses.
type Mode int

const (
	ModeKey Mode = iota
	ModeMessage
)

func (m Mode) String() string {
	switch m {
	case ModeKey:
		return "key"
	case ModeMessage:
		return "message"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type Options struct {
	Direction cipher.Direction

	// MessageEdit lets letters typed in message mode rewrite the key so the
	// message shows the typed letter. When false, message mode is view-only.
	MessageEdit bool

	HistoryLimit int  // forwarded to the key buffer
	Placeholder  rune // key seed for NewWithKeyLength; default 'A'
}

// Session owns the message and key buffers. Neither is exposed for direct
// mutation.
type Session struct {
	opt  Options
	mode Mode
	rev  uint64 // mode switches

	text *buffer.Buffer
	key  *buffer.Buffer
}

// New starts a session on text with an explicit key.
func New(text, key string, opt Options) (*Session, error) {
	tb := buffer.New(text, buffer.Options{HistoryLimit: -1, Valid: textclass.IsLetter})
	if !tb.HasValid() {
		return nil, ErrNoLetters
	}
	if err := cipher.ValidateKey(key); err != nil {
		return nil, err
	}
	return &Session{
		opt:  opt,
		mode: ModeKey,
		text: tb,
		key:  buffer.New(strings.ToUpper(key), buffer.Options{HistoryLimit: opt.HistoryLimit}),
	}, nil
}

// NewWithKeyLength starts a session with a key of n placeholder letters.
func NewWithKeyLength(text string, n int, opt Options) (*Session, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrKeyLength, n)
	}
	p := opt.Placeholder
	if p == 0 {
		p = DefaultPlaceholder
	}
	return New(text, strings.Repeat(string(p), n), opt)
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Direction() cipher.Direction { return s.opt.Direction }

// MessageEditable reports whether typing in message mode edits the key.
func (s *Session) MessageEditable() bool { return s.opt.MessageEdit }

// Text returns the loaded message.
func (s *Session) Text() string { return s.text.Text() }

// Key returns the current key.
func (s *Session) Key() string { return s.key.Text() }

// Output returns the message transformed by the current key.
func (s *Session) Output() string {
	return cipher.Transform(s.opt.Direction, s.text.Text(), s.key.Text())
}

// Revision changes whenever the frame may change: a key edit, a cursor move
// or a mode switch.
func (s *Session) Revision() uint64 {
	return s.rev + s.key.Version() + s.text.Version()
}

// Cursor returns the cursor index in the active buffer.
func (s *Session) Cursor() int { return s.active().Cursor() }

func (s *Session) active() *buffer.Buffer {
	if s.mode == ModeMessage {
		return s.text
	}
	return s.key
}
