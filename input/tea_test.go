package input

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKey_StringUsesBubbleTeaNames(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{key: KeyUp, want: "up"},
		{key: KeyDown, want: "down"},
		{key: KeyLeft, want: "left"},
		{key: KeyRight, want: "right"},
		{key: KeyPageUp, want: "pgup"},
		{key: KeyPageDown, want: "pgdown"},
		{key: KeyDelete, want: "delete"},
		{key: KeyHome, want: "home"},
		{key: KeyEnd, want: "end"},
		{key: KeyBackspace, want: "backspace"},
		{key: KeyEnter, want: "enter"},
		{key: KeyTab, want: "tab"},
		{key: KeyEscape, want: "esc"},
		{key: Ctrl('q'), want: "ctrl+q"},
		{key: Ctrl('s'), want: "ctrl+s"},
		{key: Ctrl('h'), want: "ctrl+h"},
		{key: 'a', want: "a"},
		{key: 'Q', want: "Q"},
		{key: ' ', want: " "},
	}

	for _, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Fatalf("Key(%d).String(): got %q, want %q", int(tc.key), got, tc.want)
		}
	}
}

func TestKey_MsgTypes(t *testing.T) {
	if got := KeyBackspace.Msg().Type; got != tea.KeyBackspace {
		t.Fatalf("backspace type: got %v, want %v", got, tea.KeyBackspace)
	}
	if got := Ctrl('q').Msg().Type; got != tea.KeyCtrlQ {
		t.Fatalf("ctrl+q type: got %v, want %v", got, tea.KeyCtrlQ)
	}
	msg := Key('x').Msg()
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Runes[0] != 'x' {
		t.Fatalf("rune msg: got %+v", msg)
	}
}

func TestKey_MatchesBindings(t *testing.T) {
	quit := key.NewBinding(key.WithKeys("ctrl+q"))
	up := key.NewBinding(key.WithKeys("up", "w"))

	if !key.Matches(Ctrl('q'), quit) {
		t.Fatalf("expected ctrl+q to match quit binding")
	}
	if !key.Matches(KeyUp, up) || !key.Matches(Key('w'), up) {
		t.Fatalf("expected up and w to match up binding")
	}
	if key.Matches(Key('q'), quit) {
		t.Fatalf("plain q must not match ctrl+q")
	}
}

func TestKey_Classification(t *testing.T) {
	if !KeyBackspace.IsControl() || !KeyTab.IsControl() || Key('a').IsControl() {
		t.Fatalf("unexpected control classification")
	}
	if KeyUp.IsByte() || !Key(0xff).IsByte() {
		t.Fatalf("unexpected byte classification")
	}
	if Ctrl('q') != 17 {
		t.Fatalf("Ctrl('q'): got %d, want 17", Ctrl('q'))
	}
}
