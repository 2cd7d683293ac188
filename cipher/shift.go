package cipher

import "github.com/iw2rmb/vigenere/internal/textclass"

const alphabetSize = 26

// Shift offsets a Latin letter by offset positions modulo 26, preserving case.
// Any other rune is returned unchanged.
func Shift(r rune, offset int) rune {
	if !textclass.IsLetter(r) {
		return r
	}
	base := 'a'
	if textclass.IsUpper(r) {
		base = 'A'
	}
	n := (int(r-base) + offset) % alphabetSize
	if n < 0 {
		n += alphabetSize
	}
	return base + rune(n)
}

// Value returns the alphabet index of a letter (A/a = 0 … Z/z = 25), or 0
// for anything else.
func Value(r rune) int {
	switch {
	case 'a' <= r && r <= 'z':
		return int(r - 'a')
	case 'A' <= r && r <= 'Z':
		return int(r - 'A')
	default:
		return 0
	}
}

// Upper returns the uppercase form of a Latin letter.
func Upper(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
