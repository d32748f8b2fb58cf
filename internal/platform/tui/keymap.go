package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for a game.
type KeyMap struct {
	Holes      []key.Binding // Holes[i] whacks the mole in hole i
	Start      key.Binding
	Difficulty key.Binding
	Help       key.Binding
	Quit       key.Binding

	whack key.Binding // Help entry summarizing Holes
}

// DefaultKeyMap returns default key bindings for a board with the given
// number of holes. Holes beyond nine have no key and are mouse-only.
func DefaultKeyMap(holes int) KeyMap {
	n := min(holes, 9)
	km := KeyMap{
		Holes: make([]key.Binding, n),
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "start"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	keys := make([]string, n)
	for i := range n {
		k := strconv.Itoa(i + 1)
		keys[i] = k
		km.Holes[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, "whack hole "+k),
		)
	}
	if n > 0 {
		km.whack = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp("1-"+strconv.Itoa(n), "whack"),
		)
	}
	return km
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.whack, k.Start, k.Difficulty, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.whack, k.Start, k.Difficulty},
		{k.Help, k.Quit},
		{key.NewBinding(key.WithKeys("mouse"), key.WithHelp("click", "whack a hole"))},
	}
}

// HoleFor returns the hole index bound to msg, or -1 if none.
func (k KeyMap) HoleFor(msg tea.KeyMsg) int {
	for i, b := range k.Holes {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}
