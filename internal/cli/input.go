package cli

import (
	"fmt"
	"os"
	"strings"
)

// LoadText resolves the text argument. An existing regular file supplies its
// contents; anything else is the message itself. Surrounding whitespace is
// trimmed either way.
func LoadText(arg string) (string, error) {
	text := arg
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		b, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		text = string(b)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text is empty", ErrUsage)
	}
	return text, nil
}
