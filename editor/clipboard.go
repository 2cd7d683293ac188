package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are reported in the status line.
type Clipboard interface {
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// Available reports whether a system clipboard utility was found.
func (SystemClipboard) Available() bool { return !clipboard.Unsupported }
