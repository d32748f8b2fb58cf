package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHoleFor(t *testing.T) {
	km := DefaultKeyMap(9)

	tests := []struct {
		key  string
		hole int
	}{
		{"1", 0},
		{"5", 4},
		{"9", 8},
		{"0", -1},
		{"s", -1},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.HoleFor(runeKey(tc.key)); got != tc.hole {
				t.Errorf("HoleFor(%q) = %d, want %d", tc.key, got, tc.hole)
			}
		})
	}
}

func TestDefaultKeyMapFewHoles(t *testing.T) {
	km := DefaultKeyMap(3)

	if len(km.Holes) != 3 {
		t.Fatalf("expected 3 hole bindings, got %d", len(km.Holes))
	}
	if got := km.HoleFor(runeKey("4")); got != -1 {
		t.Errorf("HoleFor(4) = %d on a 3-hole board", got)
	}
	if km.whack.Help().Key != "1-3" {
		t.Errorf("whack help key = %q", km.whack.Help().Key)
	}
}

func TestDefaultKeyMapManyHoles(t *testing.T) {
	km := DefaultKeyMap(12)
	if len(km.Holes) != 9 {
		t.Errorf("expected 9 hole bindings, got %d", len(km.Holes))
	}
}

func TestKeyMapControls(t *testing.T) {
	km := DefaultKeyMap(9)

	if !key.Matches(runeKey("s"), km.Start) {
		t.Error("s should start")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Start) {
		t.Error("enter should start")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit) {
		t.Error("ctrl+c should quit")
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) == 0 {
		t.Error("help should list bindings")
	}
}
