package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Graph3x/RPGEditor/input"
)

// Mode names the key routing table in effect.
type Mode int

const (
	ModeEditing Mode = iota
	ModeInventory
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

// mode is one routing table. handleKey reports whether the session should
// end.
type mode interface {
	kind() Mode
	handleKey(e *Editor, k input.Key) (quit bool)
}

type editingMode struct{}

func (editingMode) kind() Mode { return ModeEditing }

func (editingMode) handleKey(e *Editor, k input.Key) bool {
	km := e.cfg.KeyMap
	switch {
	case key.Matches(k, km.Quit):
		return true
	case key.Matches(k, km.Save):
		e.Save()
	case key.Matches(k, km.Inventory):
		e.setMode(inventoryMode{})

	case key.Matches(k, km.Up):
		e.move(DirUp)
	case key.Matches(k, km.Down):
		e.move(DirDown)
	case key.Matches(k, km.Left):
		e.move(DirLeft)
	case key.Matches(k, km.Right):
		e.move(DirRight)
	case key.Matches(k, km.PageUp):
		e.move(DirPageUp)
	case key.Matches(k, km.PageDown):
		e.move(DirPageDown)
	case key.Matches(k, km.Home):
		e.move(DirHome)
	case key.Matches(k, km.End):
		e.move(DirEnd)

	case key.Matches(k, km.Enter):
		e.insertNewline()
	case key.Matches(k, km.Backspace):
		e.deleteBackward()
	case key.Matches(k, km.Delete):
		e.deleteForward()

	default:
		if !k.IsByte() {
			return false
		}
		if k == input.KeyTab || !k.IsControl() {
			e.insertChar(k.Byte())
		}
	}
	return false
}

type inventoryMode struct{}

func (inventoryMode) kind() Mode { return ModeInventory }

func (inventoryMode) handleKey(e *Editor, k input.Key) bool {
	km := e.cfg.InventoryKeyMap
	switch {
	case key.Matches(k, km.Close):
		e.setMode(editingMode{})
	case key.Matches(k, km.Up):
		e.inv.Move(DirUp)
	case key.Matches(k, km.Down):
		e.inv.Move(DirDown)
	case key.Matches(k, km.Left):
		e.inv.Move(DirLeft)
	case key.Matches(k, km.Right):
		e.inv.Move(DirRight)
	case key.Matches(k, km.Activate):
		e.message = e.inv.Activate()
		e.logf("inventory: %s", e.message)
	}
	return false
}
