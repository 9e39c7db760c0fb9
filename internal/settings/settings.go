// Package settings holds the appearance preferences of the authenticator,
// the stores that persist them and the coordinator that publishes snapshots.
package settings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrUnknownListStyle = errors.New("unknown list style")
)

// SelectedTheme is the UI theme chosen by the user.
type SelectedTheme int

const (
	// ThemeSystem follows the terminal background.
	ThemeSystem SelectedTheme = iota
	ThemeLight
	ThemeDark
)

var themeNames = [...]string{
	ThemeSystem: "SYSTEM",
	ThemeLight:  "LIGHT",
	ThemeDark:   "DARK",
}

// AllThemes returns every theme in declaration order.
func AllThemes() []SelectedTheme {
	return []SelectedTheme{ThemeSystem, ThemeLight, ThemeDark}
}

func (t SelectedTheme) String() string {
	if t < 0 || int(t) >= len(themeNames) {
		return fmt.Sprintf("SelectedTheme(%d)", int(t))
	}
	return themeNames[t]
}

// ParseTheme parses a canonical theme name, ignoring case and surrounding space.
func ParseTheme(s string) (SelectedTheme, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range AllThemes() {
		if themeNames[t] == name {
			return t, nil
		}
	}
	return ThemeSystem, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// ListStyle is how the list of services is displayed.
type ListStyle int

const (
	StyleList ListStyle = iota
	StyleCompact
)

var listStyleNames = [...]string{
	StyleList:    "LIST",
	StyleCompact: "COMPACT",
}

// AllListStyles returns every list style in declaration order.
func AllListStyles() []ListStyle {
	return []ListStyle{StyleList, StyleCompact}
}

func (s ListStyle) String() string {
	if s < 0 || int(s) >= len(listStyleNames) {
		return fmt.Sprintf("ListStyle(%d)", int(s))
	}
	return listStyleNames[s]
}

// ParseListStyle parses a canonical list style name, ignoring case and surrounding space.
func ParseListStyle(s string) (ListStyle, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, v := range AllListStyles() {
		if listStyleNames[v] == name {
			return v, nil
		}
	}
	return StyleList, fmt.Errorf("%w: %q", ErrUnknownListStyle, s)
}

// AppSettings is an immutable snapshot of the appearance preferences.
// Mutating helpers return a modified copy.
type AppSettings struct {
	SelectedTheme    SelectedTheme
	ListStyle        ListStyle
	ShowNextCode     bool
	AutoFocusSearch  bool
	ShowBackupNotice bool
}

// Defaults returns the snapshot used before anything has been stored.
func Defaults() AppSettings {
	return AppSettings{
		SelectedTheme:    ThemeSystem,
		ListStyle:        StyleList,
		ShowNextCode:     false,
		AutoFocusSearch:  false,
		ShowBackupNotice: true,
	}
}

func (s AppSettings) WithSelectedTheme(t SelectedTheme) AppSettings {
	s.SelectedTheme = t
	return s
}

func (s AppSettings) WithListStyle(v ListStyle) AppSettings {
	s.ListStyle = v
	return s
}

func (s AppSettings) WithShowNextCode(v bool) AppSettings {
	s.ShowNextCode = v
	return s
}

func (s AppSettings) WithAutoFocusSearch(v bool) AppSettings {
	s.AutoFocusSearch = v
	return s
}

func (s AppSettings) WithShowBackupNotice(v bool) AppSettings {
	s.ShowBackupNotice = v
	return s
}
