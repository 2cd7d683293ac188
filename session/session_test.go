package session

import (
	"errors"
	"testing"

	"github.com/iw2rmb/vigenere/buffer"
	"github.com/iw2rmb/vigenere/cipher"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New("123, ...", "KEY", Options{}); !errors.Is(err, ErrNoLetters) {
		t.Fatalf("no letters: got %v, want ErrNoLetters", err)
	}
	if _, err := New("abc", "", Options{}); !errors.Is(err, cipher.ErrEmptyKey) {
		t.Fatalf("empty key: got %v, want ErrEmptyKey", err)
	}
	if _, err := New("abc", "K3Y", Options{}); !errors.Is(err, cipher.ErrKeyNotAlpha) {
		t.Fatalf("digit key: got %v, want ErrKeyNotAlpha", err)
	}
	if _, err := NewWithKeyLength("abc", 0, Options{}); !errors.Is(err, ErrKeyLength) {
		t.Fatalf("zero length: got %v, want ErrKeyLength", err)
	}
}

func TestNewWithKeyLength_SeedsPlaceholder(t *testing.T) {
	s, err := NewWithKeyLength("abc", 4, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := s.Key(), "AAAA"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}

	s, err = NewWithKeyLength("abc", 2, Options{Placeholder: 'Q'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := s.Key(), "QQ"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
}

func TestNew_InitialStateAndUppercaseKey(t *testing.T) {
	s, err := New("Attack at dawn", "lemon", Options{Direction: cipher.DirEncipher})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode() != ModeKey {
		t.Fatalf("mode=%v, want key", s.Mode())
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor=%d, want 0", s.Cursor())
	}
	if got, want := s.Key(), "LEMON"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
	if got, want := s.Output(), "Lxfopv ef rnhr"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestToggle_ResetsCursorToFirstValidSlot(t *testing.T) {
	s, _ := NewWithKeyLength(`"Hi," she said`, 3, Options{})
	s.Move(buffer.DirRight)
	s.Move(buffer.DirRight)
	if got := s.Cursor(); got != 2 {
		t.Fatalf("key cursor=%d, want 2", got)
	}

	s.Toggle()
	if s.Mode() != ModeMessage {
		t.Fatalf("mode=%v, want message", s.Mode())
	}
	if got, want := s.Cursor(), 1; got != want {
		t.Fatalf("message cursor=%d, want %d", got, want)
	}

	s.Move(buffer.DirRight)
	s.Toggle()
	if s.Mode() != ModeKey || s.Cursor() != 0 {
		t.Fatalf("after toggle back: mode=%v cursor=%d, want key/0", s.Mode(), s.Cursor())
	}
}

func TestMove_MessageSkipsNonLetters(t *testing.T) {
	s, _ := NewWithKeyLength("a, b!", 1, Options{})
	s.Toggle()
	s.Move(buffer.DirRight)
	if got, want := s.Cursor(), 3; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	s.Move(buffer.DirRight)
	if got, want := s.Cursor(), 0; got != want {
		t.Fatalf("wrapped cursor=%d, want %d", got, want)
	}
	s.Move(buffer.DirLeft)
	if got, want := s.Cursor(), 3; got != want {
		t.Fatalf("cursor after left=%d, want %d", got, want)
	}
}

func TestShiftKey_OnlyInKeyMode(t *testing.T) {
	s, _ := NewWithKeyLength("abc", 2, Options{})
	if !s.ShiftKey(1) {
		t.Fatalf("expected ShiftKey(+1) to change key")
	}
	if got, want := s.Key(), "BA"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
	s.Move(buffer.DirRight)
	s.ShiftKey(-1)
	if got, want := s.Key(), "BZ"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}

	s.Toggle()
	if s.ShiftKey(1) {
		t.Fatalf("ShiftKey in message mode must be a no-op")
	}
	if got, want := s.Key(), "BZ"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
}

func TestType_KeyModeUppercasesAndAdvances(t *testing.T) {
	s, _ := NewWithKeyLength("Attack at dawn", 5, Options{Direction: cipher.DirEncipher})
	for _, r := range "lemon" {
		if !s.Type(r) {
			t.Fatalf("Type(%q) not applied", r)
		}
	}
	if got, want := s.Key(), "LEMON"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
	if got := s.Cursor(); got != 0 {
		t.Fatalf("cursor should wrap to 0, got %d", got)
	}
	if s.Type('1') || s.Type(' ') {
		t.Fatalf("non-letters must be ignored")
	}
	if got, want := s.Output(), "Lxfopv ef rnhr"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestType_MessageEditDerivesKey(t *testing.T) {
	cases := []struct {
		name  string
		dir   cipher.Direction
		text  string
		typed string
		want  string
	}{
		{name: "decipher", dir: cipher.DirDecipher, text: "Lxfopv ef rnhr", typed: "attackatdawn", want: "Attack at dawn"},
		{name: "encipher", dir: cipher.DirEncipher, text: "Attack at dawn", typed: "LXFOPVEFRNHR", want: "Lxfopv ef rnhr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewWithKeyLength(tc.text, 5, Options{Direction: tc.dir, MessageEdit: true})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s.Toggle()
			for _, r := range tc.typed {
				if !s.Type(r) {
					t.Fatalf("Type(%q) not applied", r)
				}
			}
			if got, want := s.Key(), "LEMON"; got != want {
				t.Fatalf("key=%q, want %q", got, want)
			}
			if got := s.Output(); got != tc.want {
				t.Fatalf("output=%q, want %q", got, tc.want)
			}
		})
	}
}

// Typing at any letter position makes the output show that letter there.
func TestType_MessageEditShowsTypedLetterAtCursor(t *testing.T) {
	const text = "Wkh txlfn, eurzq ira!"
	for _, dir := range []cipher.Direction{cipher.DirEncipher, cipher.DirDecipher} {
		s, _ := NewWithKeyLength(text, 3, Options{Direction: dir, MessageEdit: true})
		s.Toggle()
		for step := 0; step < 20; step++ {
			i := s.Cursor()
			typed := rune('a' + (step*7)%26)
			s.Type(typed)
			got := []rune(s.Output())[i]
			if cipher.Upper(got) != cipher.Upper(typed) {
				t.Fatalf("%v step %d: output[%d]=%q, want %q", dir, step, i, got, typed)
			}
		}
	}
}

func TestType_ReadOnlyMessageMode(t *testing.T) {
	s, _ := NewWithKeyLength("abc", 2, Options{MessageEdit: false})
	s.Toggle()
	if s.Type('x') {
		t.Fatalf("read-only message mode must ignore letters")
	}
	if got, want := s.Key(), "AA"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
	if got := s.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}

func TestUndoRedo_KeyEdits(t *testing.T) {
	s, _ := NewWithKeyLength("abc", 3, Options{})
	if s.CanUndo() || s.CanRedo() {
		t.Fatalf("fresh session: CanUndo=%v CanRedo=%v, want false", s.CanUndo(), s.CanRedo())
	}
	s.Type('x')
	s.Type('y')
	if got, want := s.Key(), "XYA"; got != want {
		t.Fatalf("key=%q, want %q", got, want)
	}
	if !s.Undo() {
		t.Fatalf("expected Undo=true")
	}
	if got, want := s.Key(), "XAA"; got != want {
		t.Fatalf("key after undo=%q, want %q", got, want)
	}
	if !s.CanRedo() {
		t.Fatalf("expected CanRedo=true after undo")
	}
	if !s.Redo() {
		t.Fatalf("expected Redo=true")
	}
	if s.CanRedo() || !s.CanUndo() {
		t.Fatalf("after redo: CanUndo=%v CanRedo=%v, want true/false", s.CanUndo(), s.CanRedo())
	}
	if got, want := s.Key(), "XYA"; got != want {
		t.Fatalf("key after redo=%q, want %q", got, want)
	}
}

func TestSetCursor_SnapsToLetter(t *testing.T) {
	s, _ := NewWithKeyLength("ab cd", 2, Options{})
	s.Toggle()
	s.SetCursor(2)
	if got, want := s.Cursor(), 3; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestRevision_ChangesWithFrameInputs(t *testing.T) {
	s, _ := NewWithKeyLength("ab cd", 2, Options{})
	rev := s.Revision()
	step := func(name string, f func(), changed bool) {
		t.Helper()
		f()
		got := s.Revision()
		if (got != rev) != changed {
			t.Fatalf("%s: revision %d -> %d, changed=%v, want changed=%v", name, rev, got, got != rev, changed)
		}
		rev = got
	}

	step("shift", func() { s.ShiftKey(1) }, true)
	step("move", func() { s.Move(buffer.DirRight) }, true)
	step("same mode", func() { s.SetMode(ModeKey) }, false)
	step("toggle", s.Toggle, true)
	step("shift in message mode", func() { s.ShiftKey(1) }, false)
	step("set mode", func() { s.SetMode(ModeKey) }, true)
	step("undo", func() { s.Undo() }, true)
}
