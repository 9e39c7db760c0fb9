// Package appsettings implements the appearance settings screen: a list of
// setting rows over the current snapshot plus the dialogs used to change it.
package appsettings

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
	"github.com/iiroan/otpdeck/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// top bar, blank line, blank line, help footer
	chromeHeight = 4
)

// Intents are the user actions the screen reports. Nil callbacks are skipped.
type Intents struct {
	OnSelectedThemeChange    func(settings.SelectedTheme)
	OnListStyleChange        func(settings.ListStyle)
	OnShowNextCodeToggle     func()
	OnShowBackupNoticeToggle func()
	OnAutoFocusSearchToggle  func()
}

// BackMsg is emitted when the user leaves the screen.
type BackMsg struct{}

func back() tea.Msg { return BackMsg{} }

// Screen renders a snapshot and turns key presses into intents. Dialog
// visibility lives here only; the snapshot is replaced, never edited.
type Screen struct {
	snapshot settings.AppSettings
	intents  Intents
	strings  locale.Strings

	styles         ui.Styles
	darkBackground bool

	list list.Model
	help help.Model
	keys screenKeyMap

	width  int
	height int

	showThemeDialog                bool
	showListStyleDialog            bool
	showConfirmDisableBackupNotice bool

	themeDialog     ui.RadioDialog
	listStyleDialog ui.RadioDialog
	confirmDialog   ui.ConfirmDialog
}

// NewScreen returns a screen with no dialog open.
func NewScreen(snapshot settings.AppSettings, intents Intents, strs locale.Strings) Screen {
	m := Screen{
		snapshot:       snapshot,
		intents:        intents,
		strings:        strs,
		darkBackground: true,
		keys:           newScreenKeyMap(strs),
		width:          defaultWidth,
		height:         defaultHeight,
	}
	m.styles = ui.StylesFor(snapshot.SelectedTheme, m.darkBackground)

	l := list.New(buildRows(snapshot, strs), m.delegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	m.list = l

	m.help = help.New()
	m.applyStyles()
	m.resize()
	return m
}

// Init asks the terminal for its background so the system theme can follow it.
func (m Screen) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}

// Snapshot returns the snapshot being rendered.
func (m Screen) Snapshot() settings.AppSettings { return m.snapshot }

// ThemeDialogOpen reports whether the theme selection dialog is visible.
func (m Screen) ThemeDialogOpen() bool { return m.showThemeDialog }

// ListStyleDialogOpen reports whether the list style selection dialog is visible.
func (m Screen) ListStyleDialogOpen() bool { return m.showListStyleDialog }

// ConfirmDisableBackupNoticeOpen reports whether the confirmation dialog is visible.
func (m Screen) ConfirmDisableBackupNoticeOpen() bool { return m.showConfirmDisableBackupNotice }

func (m Screen) dialogOpen() bool {
	return m.showThemeDialog || m.showListStyleDialog || m.showConfirmDisableBackupNotice
}

// Cursor returns the index of the highlighted row.
func (m Screen) Cursor() int { return m.list.Index() }

// SetSnapshot replaces the rendered snapshot. Dialog state is kept.
func (m Screen) SetSnapshot(s settings.AppSettings) Screen {
	themeChanged := s.SelectedTheme != m.snapshot.SelectedTheme
	m.snapshot = s
	if themeChanged {
		m.styles = ui.StylesFor(s.SelectedTheme, m.darkBackground)
		m.applyStyles()
	}
	m.list.SetItems(buildRows(s, m.strings))
	return m
}

func (m Screen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.BackgroundColorMsg:
		m.darkBackground = msg.IsDark()
		m.styles = ui.StylesFor(m.snapshot.SelectedTheme, m.darkBackground)
		m.applyStyles()
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, back
		}
		if m.dialogOpen() {
			return m.updateDialog(msg), nil
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Screen) updateList(msg tea.KeyPressMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.list.CursorUp()
	case "down", "j":
		m.list.CursorDown()
	case "enter", "space":
		return m.activate(), nil
	case "esc", "q":
		return m, back
	}
	return m, nil
}

// activate performs the action of the highlighted row.
func (m Screen) activate() Screen {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return m
	}

	switch r.kind {
	case rowTheme:
		m.themeDialog = ui.NewRadioDialog(
			m.strings.Get(locale.SettingsTheme),
			themeOptions(m.strings),
			indexOf(settings.AllThemes(), m.snapshot.SelectedTheme),
		)
		m.showThemeDialog = true
	case rowListStyle:
		m.listStyleDialog = ui.NewRadioDialog(
			m.strings.Get(locale.SettingsListStyle),
			listStyleOptions(m.strings),
			indexOf(settings.AllListStyles(), m.snapshot.ListStyle),
		)
		m.showListStyleDialog = true
	case rowShowNextCode:
		call(m.intents.OnShowNextCodeToggle)
	case rowAutoFocusSearch:
		call(m.intents.OnAutoFocusSearchToggle)
	case rowShowBackupNotice:
		// Turning the reminder off needs confirmation; turning it on does not.
		if m.snapshot.ShowBackupNotice {
			m.confirmDialog = ui.NewConfirmDialog(
				m.strings.Get(locale.SettingsShowBackupNotice),
				m.strings.Get(locale.SettingsShowBackupNoticeConfirmBody),
				m.strings.Get(locale.CommonConfirm),
				m.strings.Get(locale.CommonCancel),
			)
			m.showConfirmDisableBackupNotice = true
		} else {
			call(m.intents.OnShowBackupNoticeToggle)
		}
	}
	return m
}

func (m Screen) updateDialog(msg tea.KeyPressMsg) Screen {
	var res ui.DialogResult
	switch {
	case m.showThemeDialog:
		m.themeDialog, res = m.themeDialog.Update(msg)
		switch res {
		case ui.DialogSelected:
			if m.intents.OnSelectedThemeChange != nil {
				m.intents.OnSelectedThemeChange(settings.AllThemes()[m.themeDialog.Cursor()])
			}
			m.showThemeDialog = false
		case ui.DialogDismissed:
			m.showThemeDialog = false
		}
	case m.showListStyleDialog:
		m.listStyleDialog, res = m.listStyleDialog.Update(msg)
		switch res {
		case ui.DialogSelected:
			if m.intents.OnListStyleChange != nil {
				m.intents.OnListStyleChange(settings.AllListStyles()[m.listStyleDialog.Cursor()])
			}
			m.showListStyleDialog = false
		case ui.DialogDismissed:
			m.showListStyleDialog = false
		}
	case m.showConfirmDisableBackupNotice:
		m.confirmDialog, res = m.confirmDialog.Update(msg)
		switch res {
		case ui.DialogConfirmed:
			call(m.intents.OnShowBackupNoticeToggle)
			m.showConfirmDisableBackupNotice = false
		case ui.DialogDismissed:
			m.showConfirmDisableBackupNotice = false
		}
	}
	return m
}

func (m Screen) View() string {
	var body, footer string
	switch {
	case m.showThemeDialog:
		body = m.placeDialog(m.themeDialog.View(m.styles, m.width))
		footer = m.help.View(newDialogKeyMap(m.strings, false))
	case m.showListStyleDialog:
		body = m.placeDialog(m.listStyleDialog.View(m.styles, m.width))
		footer = m.help.View(newDialogKeyMap(m.strings, false))
	case m.showConfirmDisableBackupNotice:
		body = m.placeDialog(m.confirmDialog.View(m.styles, m.width))
		footer = m.help.View(newDialogKeyMap(m.strings, true))
	default:
		body = m.list.View()
		footer = m.help.View(m.keys)
	}
	return ui.Frame(m.styles, m.strings.Get(locale.SettingsAppearance), "", body, footer)
}

func (m Screen) placeDialog(dialog string) string {
	return lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center, dialog)
}

func (m *Screen) resize() {
	m.list.SetSize(m.width, m.listHeight())
}

func (m Screen) listHeight() int {
	return max(5, m.height-chromeHeight)
}

func (m Screen) delegate() rowDelegate {
	return rowDelegate{
		styles:   m.styles,
		onLabel:  m.strings.Get(locale.CommonOn),
		offLabel: m.strings.Get(locale.CommonOff),
	}
}

func (m *Screen) applyStyles() {
	m.list.SetDelegate(m.delegate())
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.FullDesc = m.styles.HelpDesc
	m.help.Styles.Ellipsis = m.styles.HelpDesc
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}
