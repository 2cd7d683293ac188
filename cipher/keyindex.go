package cipher

import "github.com/iw2rmb/vigenere/internal/textclass"

// KeyIndexFor returns the index into key of the letter Transform applies to
// the rune at textIndex. Only letters before textIndex advance the key.
//
// textIndex counts runes. Out-of-range indexes are clamped to the text.
func KeyIndexFor(key, text string, textIndex int) int {
	n := len([]rune(key))
	if n == 0 {
		return 0
	}
	ki, i := 0, 0
	for _, r := range text {
		if i >= textIndex {
			break
		}
		if textclass.IsLetter(r) {
			ki = (ki + 1) % n
		}
		i++
	}
	return ki
}

// KeyStream returns, rune for rune, the key letter applied at each position
// of text, or the text rune itself where no key letter is consumed.
func KeyStream(text, key string) string {
	k := []rune(key)
	out := []rune(text)
	if len(k) == 0 {
		return text
	}
	ki := 0
	for i, r := range out {
		if !textclass.IsLetter(r) {
			continue
		}
		out[i] = k[ki]
		ki = (ki + 1) % len(k)
	}
	return string(out)
}

// KeyFor returns the uppercase key letter that makes Transform(d, …) turn
// the text letter src into shown. The case of shown is ignored.
//
// If either rune is not a letter, src's key letter cannot be derived and
// 'A' (the identity shift) is returned with ok=false.
func KeyFor(d Direction, src, shown rune) (rune, bool) {
	if !textclass.IsLetter(src) || !textclass.IsLetter(shown) {
		return 'A', false
	}
	var k rune
	if d == DirEncipher {
		k = Shift(Upper(shown), -Value(src))
	} else {
		k = Shift(Upper(src), -Value(shown))
	}
	return k, true
}
