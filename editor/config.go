package editor

import "log"

// DefaultTabWidth is the number of spaces a tab byte expands to on screen.
const DefaultTabWidth = 4

// Config configures an Editor.
type Config struct {
	// ScreenRows and ScreenCols are the terminal size reported at startup.
	// One row is taken by the status bar.
	ScreenRows int
	ScreenCols int

	// TabWidth <= 0 selects DefaultTabWidth.
	TabWidth int

	KeyMap          KeyMap
	InventoryKeyMap InventoryKeyMap
	Style           Style

	// Logger receives load, save and mode change events. Nil discards them.
	Logger *log.Logger

	// Items fills the inventory overlay. Nil selects DefaultItems.
	Items []Item

	// Banner is shown on an empty document. Empty selects rpgeditor.Banner().
	Banner string
}
