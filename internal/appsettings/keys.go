package appsettings

import (
	"charm.land/bubbles/v2/key"

	"github.com/iiroan/otpdeck/internal/locale"
)

type screenKeyMap struct {
	Move   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newScreenKeyMap(strs locale.Strings) screenKeyMap {
	return screenKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", strs.Get(locale.HelpMove)),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", strs.Get(locale.HelpSelect)),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", strs.Get(locale.HelpBack)),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", strs.Get(locale.HelpQuit)),
		),
	}
}

func (k screenKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Back}
}

func (k screenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Move, k.Select}, {k.Back, k.Quit}}
}

// dialogKeyMap is shown while a dialog has focus.
type dialogKeyMap struct {
	Move    key.Binding
	Select  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	confirm bool
}

func newDialogKeyMap(strs locale.Strings, confirm bool) dialogKeyMap {
	k := dialogKeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab"),
			key.WithHelp("←/→/tab", strs.Get(locale.HelpMove)),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", strs.Get(locale.HelpSelect)),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", strs.Get(locale.HelpYes)),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", strs.Get(locale.HelpNo)),
		),
		confirm: confirm,
	}
	if !confirm {
		k.Move = key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", strs.Get(locale.HelpMove)),
		)
		k.Cancel = key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", strs.Get(locale.HelpBack)),
		)
	}
	return k
}

func (k dialogKeyMap) ShortHelp() []key.Binding {
	if k.confirm {
		return []key.Binding{k.Move, k.Select, k.Confirm, k.Cancel}
	}
	return []key.Binding{k.Move, k.Select, k.Cancel}
}

func (k dialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
