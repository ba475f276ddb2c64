package ui

import "github.com/charmbracelet/bubbles/key"

// editKeyMap defines key bindings for the edit dialog
type editKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Cancel},
	}
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// handoffKeyMap defines key bindings for the handoff dialog
type handoffKeyMap struct {
	Copy    key.Binding
	Back    key.Binding
	OK      key.Binding
	Dismiss key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k handoffKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Back, k.OK, k.Dismiss}
}

// FullHelp returns keybindings for the expanded help view
func (k handoffKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Back, k.OK, k.Dismiss},
	}
}

func newHandoffKeyMap() handoffKeyMap {
	return handoffKeyMap{
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy instructions"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		OK: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}
