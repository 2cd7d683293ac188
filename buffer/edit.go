package buffer

// Set overwrites slot i with r. It reports whether the buffer changed.
// The previous contents are recorded for Undo.
func (b *Buffer) Set(i int, r rune) bool {
	if i < 0 || i >= len(b.runes) || b.runes[i] == r {
		return false
	}
	prev := b.snapshot()
	b.runes[i] = r
	b.recordUndo(prev)
	b.version++
	return true
}
