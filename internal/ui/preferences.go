package ui

import "github.com/iiroan/otpdeck/internal/settings"

// Preferences controls runtime UI settings that are not part of the stored
// appearance snapshot.
type Preferences struct {
	NoColor bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{
	NoColor: false,
}

// ApplyPreferences updates the active UI preferences.
func ApplyPreferences(p Preferences) {
	CurrentPreferences = p
}

// StylesFor returns the styles for a stored theme on a terminal with the
// given background, honouring the active preferences.
func StylesFor(theme settings.SelectedTheme, darkBackground bool) Styles {
	palette := PaletteFor(theme, darkBackground)
	palette.Disabled = CurrentPreferences.NoColor
	return NewStyles(palette)
}
