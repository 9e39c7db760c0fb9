package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var launcherItems = []MenuItem{
	{ID: "appearance", TitleText: "Appearance", Details: "Theme and list settings"},
	{ID: "show", TitleText: "Show settings"},
	{ID: "version", TitleText: "Version"},
}

func sendMenu(t *testing.T, m menuModel, keys ...string) (menuModel, tea.Cmd) {
	t.Helper()
	var (
		model tea.Model = m
		cmd   tea.Cmd
	)
	for _, k := range keys {
		model, cmd = model.Update(keyPress(k))
	}
	return model.(menuModel), cmd
}

func newTestMenu(opts ...MenuOption) menuModel {
	cfg := defaultMenuConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := newMenuModel(testStyles(), "otpdeck", "", launcherItems, cfg)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(menuModel)
}

func TestMenu_EnterSelects(t *testing.T) {
	m, cmd := sendMenu(t, newTestMenu(), "down", "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, "show", m.choice)
}

func TestMenu_NumberJump(t *testing.T) {
	m, cmd := sendMenu(t, newTestMenu(), "3")
	require.NotNil(t, cmd)
	assert.Equal(t, "version", m.choice)

	m, _ = sendMenu(t, newTestMenu(), "9")
	assert.Empty(t, m.choice, "slots past the last item are ignored")
	assert.False(t, m.quitting)
}

func TestMenu_InitialSelection(t *testing.T) {
	m := newTestMenu(WithInitialSelectionID(" version "))
	m, _ = sendMenu(t, m, "enter")
	assert.Equal(t, "version", m.choice)
}

func TestMenu_Leave(t *testing.T) {
	m, _ := sendMenu(t, newTestMenu(), "q")
	assert.Equal(t, MenuActionQuit, m.choice)

	m, _ = sendMenu(t, newTestMenu(WithBackNavigation("")), "esc")
	assert.Equal(t, MenuActionBack, m.choice)

	m, _ = sendMenu(t, newTestMenu(WithBackNavigation("")), "ctrl+c")
	assert.Equal(t, MenuActionQuit, m.choice)
}

func TestMenu_View(t *testing.T) {
	m := newTestMenu(WithBackNavigation("back"))
	out := ansi.Strip(m.render())

	assert.Contains(t, out, "otpdeck")
	assert.Contains(t, out, "> 1. Appearance")
	assert.Contains(t, out, "2. Show settings")
	assert.Contains(t, out, "esc/q back")
	assert.True(t, m.View().AltScreen)
}

func TestMenuKeyMap_Help(t *testing.T) {
	k := newMenuKeyMap(false, "")
	assert.Len(t, k.ShortHelp(), 4)
	assert.Equal(t, "q/esc", k.Quit.Help().Key)

	k = newMenuKeyMap(true, "up")
	assert.Equal(t, "up", k.Back.Help().Desc)
	assert.Equal(t, []string{"ctrl+c"}, k.Quit.Keys())
}
