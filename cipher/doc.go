// Package cipher implements the running-key (Vigenère) transform over Latin
// letters, the key-index resolver that mirrors it, and n-gram frequency
// analysis.
//
// Only the 26 Latin letters are shifted. Every other rune passes through
// unchanged and does not consume a key letter, so the key pointer advances
// exactly once per letter of the text. KeyIndexFor and KeyStream reproduce
// that pointer and must stay consistent with Transform.
package cipher
