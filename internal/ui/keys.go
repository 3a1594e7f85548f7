package ui

import (
	"github.com/atomicstack/menu-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to navigation commands. It doubles as the
// help.KeyMap rendered in the footer.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Back        key.Binding
	Quit        key.Binding
	Interrupt   key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	ClearFilter key.Binding
}

// DefaultKeyMap returns the standard bindings. With the filter enabled,
// letters are reserved for typing, so the vi-style aliases and q are off.
func DefaultKeyMap(filterEnabled bool) KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		ClearFilter: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear filter"),
			key.WithDisabled(),
		),
	}
	if filterEnabled {
		km.Up.SetKeys("up")
		km.Up.SetHelp("↑", "up")
		km.Down.SetKeys("down")
		km.Down.SetHelp("↓", "down")
		km.Quit.SetEnabled(false)
		km.ClearFilter.SetEnabled(true)
	}
	return km
}

// Translate maps one key event to a navigation command. The boolean is false
// for keys that have no navigation meaning.
func (k KeyMap) Translate(msg tea.KeyMsg, atRoot bool) (state.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return state.MoveUp, true
	case key.Matches(msg, k.Down):
		return state.MoveDown, true
	case key.Matches(msg, k.Select):
		return state.Select, true
	case key.Matches(msg, k.Back):
		if atRoot {
			return state.Exit, true
		}
		return state.Back, true
	case key.Matches(msg, k.Quit, k.Interrupt):
		return state.Exit, true
	}
	return state.CommandNone, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.ClearFilter, k.Quit, k.Interrupt}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Back, k.ClearFilter, k.Quit, k.Interrupt},
	}
}
