package buffer

// Advance steps from index in direction dir, wrapping at both ends, until it
// reaches a slot accepted by valid. A nil valid accepts every slot.
//
// The walk visits each slot at most once; if no slot is valid, index is
// returned unchanged. Callers are expected to reject such buffers up front.
func Advance(runes []rune, index int, dir Dir, valid func(rune) bool) int {
	n := len(runes)
	if n == 0 {
		return 0
	}
	i := wrapIndex(index, n)
	for range n {
		i = wrapIndex(i+dir.Step(), n)
		if valid == nil || valid(runes[i]) {
			return i
		}
	}
	return wrapIndex(index, n)
}

// Move steps the cursor one valid slot in dir.
func (b *Buffer) Move(dir Dir) {
	next := Advance(b.runes, b.cursor, dir, b.opt.Valid)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}
