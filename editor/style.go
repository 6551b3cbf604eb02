package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	// StatusBar styles the status text. The bar is always drawn in reverse
	// video around it.
	StatusBar lipgloss.Style

	// Control renders the one-column glyph shown for a control byte.
	Control lipgloss.Style

	InventoryPanel lipgloss.Style
	InventoryTitle lipgloss.Style
	Slot           lipgloss.Style
	SlotSelected   lipgloss.Style
	SlotEquipped   lipgloss.Style
}

// DefaultStyle returns the default style bound to lipgloss's default
// renderer.
func DefaultStyle() Style {
	return RendererStyle(lipgloss.DefaultRenderer())
}

// RendererStyle returns the default style bound to r.
func RendererStyle(r *lipgloss.Renderer) Style {
	return Style{
		StatusBar: r.NewStyle(),
		Control:   r.NewStyle().Reverse(true),

		InventoryPanel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		InventoryTitle: r.NewStyle().Bold(true),
		Slot:           r.NewStyle(),
		SlotSelected:   r.NewStyle().Reverse(true),
		SlotEquipped:   r.NewStyle().Bold(true),
	}
}
