package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodoro/internal/domain"
	"github.com/xvierd/pomodoro/internal/ports"
)

// keyMap defines the widget's key bindings. Bindings for controls that are
// currently disabled are switched off, which hides them from help and makes
// key.Matches ignore them.
type keyMap struct {
	Toggle    key.Binding
	Stop      key.Binding
	FocusUp   key.Binding
	FocusDown key.Binding
	BreakUp   key.Binding
	BreakDown key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "focus +5m"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "focus -5m"),
		),
		BreakUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "break +1m"),
		),
		BreakDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "break -1m"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// syncWith enables or disables bindings to mirror the controls' state.
func (k *keyMap) syncWith(snap domain.Snapshot) {
	editable := snap.CanEditDurations()
	k.FocusUp.SetEnabled(editable)
	k.FocusDown.SetEnabled(editable)
	k.BreakUp.SetEnabled(editable)
	k.BreakDown.SetEnabled(editable)
	k.Stop.SetEnabled(snap.CanStop())
}

// command maps a key press to the timer command it triggers.
func (k keyMap) command(km tea.KeyMsg) (ports.TimerCommand, bool) {
	switch {
	case key.Matches(km, k.Quit):
		return ports.CmdQuit, true
	case key.Matches(km, k.Toggle):
		return ports.CmdToggle, true
	case key.Matches(km, k.Stop):
		return ports.CmdStop, true
	case key.Matches(km, k.FocusUp):
		return ports.CmdFocusUp, true
	case key.Matches(km, k.FocusDown):
		return ports.CmdFocusDown, true
	case key.Matches(km, k.BreakUp):
		return ports.CmdBreakUp, true
	case key.Matches(km, k.BreakDown):
		return ports.CmdBreakDown, true
	}
	return "", false
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Stop},
		{k.FocusUp, k.FocusDown},
		{k.BreakUp, k.BreakDown},
		{k.Help, k.Quit},
	}
}
