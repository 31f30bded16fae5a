package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the viewer key bindings.
type KeyMap struct {
	Feed  key.Binding
	Pop   key.Binding
	Clear key.Binding
	Left  key.Binding
	Right key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Feed: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume feed"),
		),
		Pop: key.NewBinding(
			key.WithKeys("o", "O"),
			key.WithHelp("o", "pop oldest"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "probe left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "probe right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Feed, k.Pop, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Feed, k.Pop, k.Clear},
		{k.Left, k.Right},
		{k.Help, k.Quit},
	}
}
