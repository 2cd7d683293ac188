package buffer

type Options struct {
	HistoryLimit int // default: 1000; negative disables history

	// Valid reports whether the cursor may rest on r. Nil accepts every slot.
	Valid func(r rune) bool
}

// Buffer is a fixed-length rune sequence with a cursor and undo history.
//
// Length never changes after New; edits overwrite single slots.
type Buffer struct {
	runes   []rune
	version uint64

	cursor int

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	b := &Buffer{
		runes: []rune(text),
		opt:   opt,
	}
	b.cursor = b.First()
	return b
}

func (b *Buffer) Text() string { return string(b.runes) }

// Runes returns a copy of the buffer contents.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return out
}

func (b *Buffer) Len() int { return len(b.runes) }

// At returns the rune at i, or 0 when i is out of range.
func (b *Buffer) At(i int) rune {
	if i < 0 || i >= len(b.runes) {
		return 0
	}
	return b.runes[i]
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

// IsValid reports whether the cursor may rest on slot i.
func (b *Buffer) IsValid(i int) bool {
	if i < 0 || i >= len(b.runes) {
		return false
	}
	return b.opt.Valid == nil || b.opt.Valid(b.runes[i])
}

// HasValid reports whether any slot accepts the cursor.
func (b *Buffer) HasValid() bool {
	for i := range b.runes {
		if b.IsValid(i) {
			return true
		}
	}
	return false
}

// First returns the first slot that accepts the cursor, or 0 if none does.
func (b *Buffer) First() int {
	for i := range b.runes {
		if b.IsValid(i) {
			return i
		}
	}
	return 0
}

// SetCursor moves the cursor to i, or to the next valid slot after it.
// Indexes outside the buffer wrap around.
func (b *Buffer) SetCursor(i int) {
	if len(b.runes) == 0 {
		return
	}
	next := wrapIndex(i, len(b.runes))
	if !b.IsValid(next) {
		next = Advance(b.runes, next, DirRight, b.opt.Valid)
	}
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}
