package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digits     key.Binding
	Backspace  key.Binding
	Clear      key.Binding
	Replay     key.Binding
	Start      key.Binding
	Reset      key.Binding
	Hint       key.Binding
	Guide      key.Binding
	DigitLevel key.Binding
	Trials     key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Start: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "start/next"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "restart"),
		),
		Hint: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hint"),
		),
		Guide: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "guide"),
		),
		DigitLevel: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "digits"),
		),
		Trials: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trials"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "volume"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Replay, k.Hint, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Backspace, k.Clear},
		{k.Start, k.Replay, k.Reset},
		{k.Hint, k.Guide},
		{k.DigitLevel, k.Trials, k.VolumeUp},
		{k.Quit},
	}
}
