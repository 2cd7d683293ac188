// Package textclass classifies runes for the cipher, the wrapper and the
// frequency analyzer, so all three agree on what a letter is.
package textclass

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// IsLetter reports whether r belongs to the 26-letter Latin alphabet.
//
// Accented and non-Latin letters are not enciphered and behave like
// punctuation everywhere in the module.
func IsLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsUpper reports whether r is an uppercase Latin letter.
func IsUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

// IsWord reports whether r survives the analyzer's non-word filter:
// letters, numbers of any kind (digits, fractions, superscripts, numerals)
// and underscore.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// AllLetters reports whether s is non-empty and made of Latin letters only.
func AllLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}

// Display maps control whitespace to a plain space so every rune occupies
// at least one visible cell.
func Display(r rune) rune {
	if r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
		return ' '
	}
	if unicode.IsControl(r) {
		return '?'
	}
	return r
}

// Width returns the terminal cell width of r as displayed, never less than 1.
func Width(r rune) int {
	w := runewidth.RuneWidth(Display(r))
	if w < 1 {
		return 1
	}
	return w
}
