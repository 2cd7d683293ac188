// Package buffer implements the flat rune buffers edited by a session: the
// message text and the key.
//
// Positions are 0-based rune indexes into the flattened text. A buffer may
// restrict which slots its cursor can rest on (the message cursor only stops
// on letters); movement wraps around both ends.
package buffer
