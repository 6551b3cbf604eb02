package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings used while editing text.
//
// Names follow Bubble Tea's key vocabulary, which input.Key reports through
// its String method.
type KeyMap struct {
	Quit, Save key.Binding

	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Inventory key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "top of screen")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "bottom of screen")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Inventory: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "inventory")),
	}
}

// InventoryKeyMap defines the bindings active while the inventory overlay is
// open. No binding in it edits text.
type InventoryKeyMap struct {
	Up, Down, Left, Right key.Binding
	Activate              key.Binding
	Close                 key.Binding
}

func DefaultInventoryKeyMap() InventoryKeyMap {
	return InventoryKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),

		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "equip")),
		Close:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+q", "ctrl+g"), key.WithHelp("esc", "close")),
	}
}
