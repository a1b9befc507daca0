package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/chorin/internal/config"
)

// keyMap holds the normal mode bindings built from the user's key mappings.
// Arrow keys and ctrl+c always work alongside the configured keys.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Resolve  key.Binding
	Complete key.Binding
	Obviate  key.Binding
	Abrogate key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys(km.PrevChore, "up"),
			key.WithHelp(km.PrevChore, "previous chore"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextChore, "down"),
			key.WithHelp(km.NextChore, "next chore"),
		),
		Resolve: key.NewBinding(
			key.WithKeys(km.ResolveChore),
			key.WithHelp(km.ResolveChore, "choose"),
		),
		Complete: key.NewBinding(
			key.WithKeys(km.CompleteChore),
			key.WithHelp(km.CompleteChore, "complete"),
		),
		Obviate: key.NewBinding(
			key.WithKeys(km.ObviateChore),
			key.WithHelp(km.ObviateChore, "obviate"),
		),
		Abrogate: key.NewBinding(
			key.WithKeys(km.AbrogateChore),
			key.WithHelp(km.AbrogateChore, "abrogate"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}
