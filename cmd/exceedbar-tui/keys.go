package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Less  key.Binding
	More  key.Binding
	Raise key.Binding
	Lower key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Less: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "less"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more"),
		),
		Raise: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "raise max"),
		),
		Lower: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "lower max"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Less, k.More, k.Raise, k.Lower, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Less, k.More}, {k.Raise, k.Lower}, {k.Reset, k.Quit}}
}
