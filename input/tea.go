package input

import tea "github.com/charmbracelet/bubbletea"

var teaTypes = map[Key]tea.KeyType{
	KeyLeft:     tea.KeyLeft,
	KeyRight:    tea.KeyRight,
	KeyUp:       tea.KeyUp,
	KeyDown:     tea.KeyDown,
	KeyPageUp:   tea.KeyPgUp,
	KeyPageDown: tea.KeyPgDown,
	KeyDelete:   tea.KeyDelete,
	KeyHome:     tea.KeyHome,
	KeyEnd:      tea.KeyEnd,
}

// Msg maps k onto Bubble Tea's key vocabulary. Control bytes map to the
// matching ctrl key types (127 is backspace), other bytes become rune keys.
func (k Key) Msg() tea.KeyMsg {
	if t, ok := teaTypes[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	if !k.IsByte() {
		return tea.KeyMsg{Type: tea.KeyRunes}
	}

	b := k.Byte()
	switch {
	case k.IsControl():
		return tea.KeyMsg{Type: tea.KeyType(b)}
	case b == ' ':
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune(b)}}
	}
}

// String returns the Bubble Tea name of k ("up", "ctrl+q", "a"), which is
// what key.Binding matches against.
func (k Key) String() string {
	return k.Msg().String()
}
