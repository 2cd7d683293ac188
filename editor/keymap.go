package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Letters are not bound: any Latin
// letter is typed into the active buffer.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Toggle key.Binding
	Quit   key.Binding

	Undo, Redo key.Binding
	Copy       key.Binding

	Analysis key.Binding
	Help     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev letter")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next letter")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "key letter +1")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "key letter -1")),

		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "key/message")),
		Quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "finish")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Copy: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy output")),

		Analysis: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "frequencies")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k KeyMap) isZero() bool { return len(k.Quit.Keys()) == 0 }

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Left, k.Right, k.Up, k.Down, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Left, k.Right},
		{k.Up, k.Down, k.Undo, k.Redo},
		{k.Copy, k.Analysis, k.Help, k.Quit},
	}
}
