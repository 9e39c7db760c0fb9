package appsettings

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/iiroan/otpdeck/internal/locale"
	"github.com/iiroan/otpdeck/internal/settings"
	"github.com/iiroan/otpdeck/internal/ui"
)

type rowKind int

const (
	rowTheme rowKind = iota
	rowListStyle
	rowShowNextCode
	rowAutoFocusSearch
	rowShowBackupNotice
)

// row is one entry of the settings list. Link rows carry a subtitle with the
// current value; switch rows carry their state.
type row struct {
	kind     rowKind
	icon     string
	title    string
	subtitle string
	toggle   bool
	checked  bool
}

func (r row) FilterValue() string { return r.title }

func buildRows(s settings.AppSettings, strs locale.Strings) []list.Item {
	return []list.Item{
		row{
			kind:     rowTheme,
			icon:     ui.IconTheme,
			title:    strs.Get(locale.SettingsTheme),
			subtitle: ThemeLabel(strs, s.SelectedTheme),
		},
		row{
			kind:     rowListStyle,
			icon:     ui.IconListStyle,
			title:    strs.Get(locale.SettingsListStyle),
			subtitle: ListStyleLabel(strs, s.ListStyle),
		},
		row{
			kind:     rowShowNextCode,
			icon:     ui.IconNextToken,
			title:    strs.Get(locale.SettingsShowNextCode),
			subtitle: strs.Get(locale.SettingsShowNextCodeBody),
			toggle:   true,
			checked:  s.ShowNextCode,
		},
		row{
			kind:     rowAutoFocusSearch,
			icon:     ui.IconSearch,
			title:    strs.Get(locale.SettingsAutoFocusSearch),
			subtitle: strs.Get(locale.SettingsAutoFocusSearchBody),
			toggle:   true,
			checked:  s.AutoFocusSearch,
		},
		row{
			kind:    rowShowBackupNotice,
			icon:    ui.IconCloudOff,
			title:   strs.Get(locale.SettingsShowBackupNotice),
			toggle:  true,
			checked: s.ShowBackupNotice,
		},
	}
}

// ThemeLabel returns the localized name of a theme.
func ThemeLabel(strs locale.Strings, t settings.SelectedTheme) string {
	switch t {
	case settings.ThemeLight:
		return strs.Get(locale.ThemeLight)
	case settings.ThemeDark:
		return strs.Get(locale.ThemeDark)
	default:
		return strs.Get(locale.ThemeSystem)
	}
}

// ListStyleLabel returns the localized name of a list style.
func ListStyleLabel(strs locale.Strings, v settings.ListStyle) string {
	switch v {
	case settings.StyleCompact:
		return strs.Get(locale.StyleCompact)
	default:
		return strs.Get(locale.StyleList)
	}
}

func themeOptions(strs locale.Strings) []string {
	themes := settings.AllThemes()
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = ThemeLabel(strs, t)
	}
	return out
}

func listStyleOptions(strs locale.Strings) []string {
	styles := settings.AllListStyles()
	out := make([]string, len(styles))
	for i, v := range styles {
		out[i] = ListStyleLabel(strs, v)
	}
	return out
}

// rowDelegate renders rows with the screen's current styles.
type rowDelegate struct {
	styles   ui.Styles
	onLabel  string
	offLabel string
}

func (d rowDelegate) Height() int { return 2 }

func (d rowDelegate) Spacing() int { return 1 }

func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok || m.Width() <= 0 {
		return
	}
	selected := index == m.Index()

	var out string
	if r.toggle {
		out = ui.SwitchRow(d.styles, r.icon, r.title, r.subtitle, r.checked, d.onLabel, d.offLabel, selected, m.Width())
	} else {
		out = ui.LinkRow(d.styles, r.icon, r.title, r.subtitle, selected, m.Width())
	}
	io.WriteString(w, out) //nolint:errcheck
}
