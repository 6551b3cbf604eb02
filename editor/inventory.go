package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InventoryColumns is the width of the inventory grid in slots.
const InventoryColumns = 4

const slotWidth = 14

type Item struct {
	Name     string
	Glyph    byte
	Equipped bool
}

func DefaultItems() []Item {
	return []Item{
		{Name: "Sword", Glyph: '/'},
		{Name: "Shield", Glyph: ']'},
		{Name: "Bow", Glyph: ')'},
		{Name: "Potion", Glyph: '!'},
		{Name: "Scroll", Glyph: '?'},
		{Name: "Ring", Glyph: '='},
		{Name: "Amulet", Glyph: '"'},
		{Name: "Lantern", Glyph: '*'},
	}
}

// Inventory is the grid shown by the overlay mode. The selection always
// points at an existing item unless the inventory is empty.
type Inventory struct {
	items []Item
	sel   int
}

// NewInventory copies items.
func NewInventory(items []Item) *Inventory {
	return &Inventory{items: append([]Item(nil), items...)}
}

func (inv *Inventory) Items() []Item { return append([]Item(nil), inv.items...) }

// Selected returns the index of the selected slot, or -1 when empty.
func (inv *Inventory) Selected() int {
	if len(inv.items) == 0 {
		return -1
	}
	return inv.sel
}

// Move shifts the selection inside the grid. Moves that would leave the grid
// or land on an empty slot are ignored.
func (inv *Inventory) Move(dir Direction) {
	if len(inv.items) == 0 {
		return
	}
	next := inv.sel
	switch dir {
	case DirUp:
		next -= InventoryColumns
	case DirDown:
		next += InventoryColumns
	case DirLeft:
		if inv.sel%InventoryColumns == 0 {
			return
		}
		next--
	case DirRight:
		if inv.sel%InventoryColumns == InventoryColumns-1 {
			return
		}
		next++
	default:
		return
	}
	if next < 0 || next >= len(inv.items) {
		return
	}
	inv.sel = next
}

// Activate toggles the selected item and describes what happened.
func (inv *Inventory) Activate() string {
	if len(inv.items) == 0 {
		return "Inventory is empty"
	}
	it := &inv.items[inv.sel]
	it.Equipped = !it.Equipped
	if it.Equipped {
		return fmt.Sprintf("Equipped %s", it.Name)
	}
	return fmt.Sprintf("Unequipped %s", it.Name)
}

// View renders the inventory panel.
func (inv *Inventory) View(st Style) string {
	var lines []string
	lines = append(lines, st.InventoryTitle.Render("Inventory"))
	if len(inv.items) == 0 {
		lines = append(lines, st.Slot.Render("(empty)"))
	}

	for start := 0; start < len(inv.items); start += InventoryColumns {
		end := min(start+InventoryColumns, len(inv.items))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, inv.renderSlot(st, i))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return st.InventoryPanel.Render(strings.Join(lines, "\n"))
}

func (inv *Inventory) renderSlot(st Style, i int) string {
	it := inv.items[i]
	mark := ' '
	if it.Equipped {
		mark = '*'
	}
	text := fmt.Sprintf("%c[%c] %s", mark, it.Glyph, it.Name)
	if len(text) > slotWidth {
		text = text[:slotWidth]
	}
	text += strings.Repeat(" ", slotWidth-len(text))

	switch {
	case i == inv.sel:
		return st.SlotSelected.Render(text)
	case it.Equipped:
		return st.SlotEquipped.Render(text)
	default:
		return st.Slot.Render(text)
	}
}
