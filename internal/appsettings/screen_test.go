package appsettings

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
)

// recorder captures every intent the screen reports.
type recorder struct {
	themes       []settings.SelectedTheme
	styles       []settings.ListStyle
	nextCode     int
	backupNotice int
	autoFocus    int
}

func (r *recorder) intents() Intents {
	return Intents{
		OnSelectedThemeChange:    func(t settings.SelectedTheme) { r.themes = append(r.themes, t) },
		OnListStyleChange:        func(s settings.ListStyle) { r.styles = append(r.styles, s) },
		OnShowNextCodeToggle:     func() { r.nextCode++ },
		OnShowBackupNoticeToggle: func() { r.backupNotice++ },
		OnAutoFocusSearchToggle:  func() { r.autoFocus++ },
	}
}

func (r *recorder) total() int {
	return len(r.themes) + len(r.styles) + r.nextCode + r.backupNotice + r.autoFocus
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(t *testing.T, m Screen, keys ...string) (Screen, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyPress(k))
	}
	return m, cmd
}

func scenarioSnapshot() settings.AppSettings {
	return settings.AppSettings{
		SelectedTheme:    settings.ThemeSystem,
		ListStyle:        settings.StyleList,
		ShowNextCode:     true,
		AutoFocusSearch:  false,
		ShowBackupNotice: true,
	}
}

func newTestScreen(snapshot settings.AppSettings) (Screen, *recorder) {
	rec := &recorder{}
	m := NewScreen(snapshot, rec.intents(), locale.English())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, rec
}

func moveTo(t *testing.T, m Screen, kind rowKind) Screen {
	t.Helper()
	for i := 0; i < int(kind); i++ {
		m, _ = press(t, m, "down")
	}
	require.Equal(t, int(kind), m.Cursor())
	return m
}

func TestNewScreen_NoDialogOpen(t *testing.T) {
	m, rec := newTestScreen(scenarioSnapshot())
	assert.False(t, m.ThemeDialogOpen())
	assert.False(t, m.ListStyleDialogOpen())
	assert.False(t, m.ConfirmDisableBackupNoticeOpen())
	assert.Equal(t, 0, m.Cursor())
	assert.Zero(t, rec.total())
}

func TestScenario_SelectDarkTheme(t *testing.T) {
	m, rec := newTestScreen(scenarioSnapshot())

	m, _ = press(t, m, "enter")
	require.True(t, m.ThemeDialogOpen())

	m, _ = press(t, m, "down", "down", "enter")

	assert.Equal(t, []settings.SelectedTheme{settings.ThemeDark}, rec.themes)
	assert.Equal(t, 1, rec.total(), "no other intent may fire")
	assert.False(t, m.ThemeDialogOpen())
	assert.Equal(t, scenarioSnapshot(), m.Snapshot(), "the screen never edits the snapshot itself")
}

func TestThemeDialog_SelectingIndexMapsToVariant(t *testing.T) {
	for i, want := range settings.AllThemes() {
		t.Run(want.String(), func(t *testing.T) {
			m, rec := newTestScreen(settings.Defaults())
			m, _ = press(t, m, "enter")
			for j := 0; j < i; j++ {
				m, _ = press(t, m, "down")
			}
			m, _ = press(t, m, "enter")

			assert.Equal(t, []settings.SelectedTheme{want}, rec.themes)
			assert.False(t, m.ThemeDialogOpen())
		})
	}
}

func TestListStyleDialog_SelectingIndexMapsToVariant(t *testing.T) {
	for i, want := range settings.AllListStyles() {
		t.Run(want.String(), func(t *testing.T) {
			m, rec := newTestScreen(settings.Defaults())
			m = moveTo(t, m, rowListStyle)
			m, _ = press(t, m, "enter")
			require.True(t, m.ListStyleDialogOpen())

			m, _ = press(t, m, string(rune('1'+i)))

			assert.Equal(t, []settings.ListStyle{want}, rec.styles)
			assert.Equal(t, 1, rec.total())
			assert.False(t, m.ListStyleDialogOpen())
		})
	}
}

func TestSelectionDialog_OpensOnCurrentValue(t *testing.T) {
	m, rec := newTestScreen(settings.Defaults().WithSelectedTheme(settings.ThemeLight))
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "enter")
	assert.Equal(t, []settings.SelectedTheme{settings.ThemeLight}, rec.themes)
}

func TestSelectionDialog_DismissInvokesNothing(t *testing.T) {
	m, rec := newTestScreen(settings.Defaults())
	m, _ = press(t, m, "enter", "down", "esc")

	assert.False(t, m.ThemeDialogOpen())
	assert.Zero(t, rec.total())
}

func TestToggles_InvokeOncePerActivation(t *testing.T) {
	tests := []struct {
		name  string
		row   rowKind
		count func(*recorder) int
	}{
		{"show next code", rowShowNextCode, func(r *recorder) int { return r.nextCode }},
		{"auto focus search", rowAutoFocusSearch, func(r *recorder) int { return r.autoFocus }},
	}
	for _, tt := range tests {
		for _, checked := range []bool{false, true} {
			snapshot := settings.Defaults().WithShowNextCode(checked).WithAutoFocusSearch(checked)
			t.Run(tt.name, func(t *testing.T) {
				m, rec := newTestScreen(snapshot)
				m = moveTo(t, m, tt.row)

				m, _ = press(t, m, "enter")
				assert.Equal(t, 1, tt.count(rec))
				m, _ = press(t, m, "space")
				assert.Equal(t, 2, tt.count(rec))
				assert.Equal(t, 2, rec.total())
				assert.False(t, m.ThemeDialogOpen() || m.ListStyleDialogOpen() || m.ConfirmDisableBackupNoticeOpen())
			})
		}
	}
}

func TestBackupNotice_TurningOnIsImmediate(t *testing.T) {
	m, rec := newTestScreen(settings.Defaults().WithShowBackupNotice(false))
	m = moveTo(t, m, rowShowBackupNotice)

	m, _ = press(t, m, "enter")

	assert.Equal(t, 1, rec.backupNotice)
	assert.False(t, m.ConfirmDisableBackupNoticeOpen())
}

func TestBackupNotice_TurningOffNeedsConfirmation(t *testing.T) {
	m, rec := newTestScreen(settings.Defaults().WithShowBackupNotice(true))
	m = moveTo(t, m, rowShowBackupNotice)

	m, _ = press(t, m, "enter")
	require.True(t, m.ConfirmDisableBackupNoticeOpen())
	assert.Zero(t, rec.total(), "nothing is invoked before the user confirms")

	m, _ = press(t, m, "y")
	assert.Equal(t, 1, rec.backupNotice)
	assert.Equal(t, 1, rec.total())
	assert.False(t, m.ConfirmDisableBackupNoticeOpen())
}

func TestBackupNotice_ConfirmWithButton(t *testing.T) {
	m, rec := newTestScreen(settings.Defaults())
	m = moveTo(t, m, rowShowBackupNotice)

	m, _ = press(t, m, "enter", "tab", "enter")
	assert.Equal(t, 1, rec.backupNotice)
	assert.False(t, m.ConfirmDisableBackupNoticeOpen())
}

func TestBackupNotice_DismissLeavesFlag(t *testing.T) {
	for _, dismiss := range [][]string{{"esc"}, {"n"}, {"enter"}} {
		t.Run(dismiss[0], func(t *testing.T) {
			m, rec := newTestScreen(settings.Defaults())
			m = moveTo(t, m, rowShowBackupNotice)

			m, _ = press(t, m, "enter")
			m, _ = press(t, m, dismiss...)

			assert.False(t, m.ConfirmDisableBackupNoticeOpen())
			assert.Zero(t, rec.total())
			assert.True(t, m.Snapshot().ShowBackupNotice)
		})
	}
}

func TestDialogCapturesKeys(t *testing.T) {
	m, rec := newTestScreen(settings.Defaults())
	m, _ = press(t, m, "enter")
	require.True(t, m.ThemeDialogOpen())

	// q closes the dialog instead of leaving the screen; the row cursor stays put.
	m, cmd := press(t, m, "down", "q")
	assert.Nil(t, cmd)
	assert.False(t, m.ThemeDialogOpen())
	assert.Equal(t, 0, m.Cursor())
	assert.Zero(t, rec.total())
}

func TestBack(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestScreen(settings.Defaults())
			_, cmd := press(t, m, k)
			require.NotNil(t, cmd)
			assert.Equal(t, BackMsg{}, cmd())
		})
	}
}

func TestCtrlCLeavesFromDialog(t *testing.T) {
	m, _ := newTestScreen(settings.Defaults())
	m, _ = press(t, m, "enter")
	_, cmd := press(t, m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestCursorBounds(t *testing.T) {
	m, _ := newTestScreen(settings.Defaults())
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.Cursor())
	m, _ = press(t, m, "j", "j", "j", "j", "j", "j")
	assert.Equal(t, int(rowShowBackupNotice), m.Cursor())
	m, _ = press(t, m, "k")
	assert.Equal(t, int(rowAutoFocusSearch), m.Cursor())
}

func TestSetSnapshot_KeepsDialogState(t *testing.T) {
	m, _ := newTestScreen(settings.Defaults())
	m, _ = press(t, m, "enter")

	next := settings.Defaults().WithSelectedTheme(settings.ThemeDark)
	m = m.SetSnapshot(next)

	assert.True(t, m.ThemeDialogOpen())
	assert.Equal(t, next, m.Snapshot())
}

func TestView_RendersRows(t *testing.T) {
	m, _ := newTestScreen(scenarioSnapshot())
	out := ansi.Strip(m.View())

	for _, want := range []string{
		"Appearance",
		"Theme",
		"System default",
		"Services list style",
		"Default",
		"Show next token",
		"● On",
		"Auto-focus search",
		"○ Off",
		"Show backup notice",
		"enter select",
	} {
		assert.Contains(t, out, want)
	}
}

func TestView_ReflectsNewSnapshot(t *testing.T) {
	m, _ := newTestScreen(scenarioSnapshot())
	m = m.SetSnapshot(scenarioSnapshot().WithSelectedTheme(settings.ThemeDark).WithListStyle(settings.StyleCompact))
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "Dark")
	assert.Contains(t, out, "Compact")
	assert.NotContains(t, out, "System default")
}

func TestView_Dialogs(t *testing.T) {
	m, _ := newTestScreen(settings.Defaults())

	themes, _ := press(t, m, "enter")
	out := ansi.Strip(themes.View())
	assert.Contains(t, out, "(•) System default")
	assert.Contains(t, out, "( ) Dark")

	m = moveTo(t, m, rowShowBackupNotice)
	confirm, _ := press(t, m, "enter")
	out = ansi.Strip(confirm.View())
	assert.Contains(t, out, "Turn off")
	assert.Contains(t, out, "Cancel")
	assert.Contains(t, out, "y yes")
}

func TestView_Localized(t *testing.T) {
	m := NewScreen(settings.Defaults(), Intents{}, locale.For("pl"))
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Wygląd")
	assert.Contains(t, out, "Motyw")
}

func TestNilIntentsAreSkipped(t *testing.T) {
	m := NewScreen(settings.Defaults().WithShowBackupNotice(false), Intents{}, locale.English())

	m, _ = press(t, m, "enter", "enter")
	assert.False(t, m.ThemeDialogOpen())

	m = moveTo(t, m, rowShowNextCode)
	m, _ = press(t, m, "enter", "down", "enter", "down", "enter")
	assert.False(t, m.ConfirmDisableBackupNoticeOpen())
}
