// Package editor provides the Bubble Tea component that drives a cipher
// session in the terminal.
//
// The component translates key and mouse events into session commands and
// draws the message, key and analysis panels from the session's Frame. It
// holds no cipher state of its own: every frame is rebuilt from the session.
package editor
