package appsettings

import (
	tea "charm.land/bubbletea/v2"

	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
)

// Coordinator is the state holder the route binds the screen to.
// *settings.Coordinator implements it.
type Coordinator interface {
	Subscribe() (<-chan settings.AppSettings, func())
	Snapshot() settings.AppSettings
	SetSelectedTheme(settings.SelectedTheme)
	SetListStyle(settings.ListStyle)
	ToggleShowNextCode()
	ToggleAutoFocusSearch()
	ToggleShowBackupNotice()
}

type snapshotMsg settings.AppSettings

// Route runs the screen against a coordinator: intents are forwarded to it
// and every published snapshot is rendered.
type Route struct {
	screen  Screen
	updates <-chan settings.AppSettings
	cancel  func()
}

// NewRoute subscribes to c. The subscription ends when the user leaves the
// screen or Close is called.
func NewRoute(c Coordinator, strs locale.Strings) Route {
	updates, cancel := c.Subscribe()
	intents := Intents{
		OnSelectedThemeChange:    c.SetSelectedTheme,
		OnListStyleChange:        c.SetListStyle,
		OnShowNextCodeToggle:     c.ToggleShowNextCode,
		OnShowBackupNoticeToggle: c.ToggleShowBackupNotice,
		OnAutoFocusSearchToggle:  c.ToggleAutoFocusSearch,
	}
	return Route{
		screen:  NewScreen(c.Snapshot(), intents, strs),
		updates: updates,
		cancel:  cancel,
	}
}

// Screen returns the wrapped screen.
func (r Route) Screen() Screen { return r.screen }

// Close cancels the subscription.
func (r Route) Close() { r.cancel() }

func (r Route) Init() tea.Cmd {
	return tea.Batch(r.screen.Init(), waitForSnapshot(r.updates))
}

func (r Route) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		r.screen = r.screen.SetSnapshot(settings.AppSettings(msg))
		return r, waitForSnapshot(r.updates)
	case BackMsg:
		r.cancel()
		return r, tea.Quit
	}

	var cmd tea.Cmd
	r.screen, cmd = r.screen.Update(msg)
	return r, cmd
}

func (r Route) View() tea.View {
	v := tea.NewView(r.screen.View())
	v.AltScreen = true
	return v
}

// waitForSnapshot blocks until the next snapshot. A closed subscription
// yields no message, which ends the wait loop.
func waitForSnapshot(updates <-chan settings.AppSettings) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg(s)
	}
}
