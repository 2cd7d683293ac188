package cipher

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/vigenere/internal/textclass"
)

var (
	ErrEmptyKey    = errors.New("key must be at least one letter")
	ErrKeyNotAlpha = errors.New("key must contain only letters A-Z")
)

// Direction selects enciphering or deciphering.
type Direction int

const (
	DirDecipher Direction = iota
	DirEncipher
)

func (d Direction) String() string {
	switch d {
	case DirEncipher:
		return "encipher"
	case DirDecipher:
		return "decipher"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) sign() int {
	if d == DirEncipher {
		return 1
	}
	return -1
}

// ValidateKey checks the Transform precondition: one or more Latin letters.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !textclass.AllLetters(key) {
		return fmt.Errorf("%w: %q", ErrKeyNotAlpha, key)
	}
	return nil
}

// Encipher returns text enciphered with the cyclic key.
func Encipher(text, key string) string { return Transform(DirEncipher, text, key) }

// Decipher returns text deciphered with the cyclic key.
func Decipher(text, key string) string { return Transform(DirDecipher, text, key) }

// Transform applies key to text in direction d.
//
// The key index moves only on letters. Output letters keep the case of the
// input letter regardless of the key's case. Every other byte, including
// bytes that are not valid UTF-8, is copied through. An empty key returns
// text unchanged; callers are expected to reject it with ValidateKey first.
func Transform(d Direction, text, key string) string {
	k := []rune(key)
	if len(k) == 0 {
		return text
	}
	sign := d.sign()

	var sb strings.Builder
	sb.Grow(len(text))
	ki := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !textclass.IsLetter(r) {
			// Copied as bytes so invalid UTF-8 survives unchanged.
			sb.WriteString(text[i : i+size])
			i += size
			continue
		}
		sb.WriteRune(Shift(r, sign*Value(k[ki])))
		ki = (ki + 1) % len(k)
		i += size
	}
	return sb.String()
}
