package ui

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/iiroan/otpdeck/internal/settings"
)

// Palette defines the TUI color palette. Colors are hex strings so the same
// palette can feed both lipgloss major versions.
type Palette struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Success    string
	Warning    string
	Error      string
	Muted      string
	Background string
	Foreground string
	Border     string
	Highlight  string
	Disabled   bool
}

// DarkPalette is used on dark terminals.
func DarkPalette() Palette {
	return Palette{
		Name:       "dark",
		Primary:    "#22D3EE",
		Secondary:  "#A78BFA",
		Accent:     "#38BDF8",
		Success:    "#34D399",
		Warning:    "#FBBF24",
		Error:      "#F87171",
		Muted:      "#94A3B8",
		Background: "#0B1120",
		Foreground: "#E2E8F0",
		Border:     "#334155",
		Highlight:  "#7DD3FC",
	}
}

// LightPalette is used on light terminals.
func LightPalette() Palette {
	return Palette{
		Name:       "light",
		Primary:    "#0E7490",
		Secondary:  "#6D28D9",
		Accent:     "#0369A1",
		Success:    "#047857",
		Warning:    "#B45309",
		Error:      "#B91C1C",
		Muted:      "#64748B",
		Background: "#F8FAFC",
		Foreground: "#0F172A",
		Border:     "#CBD5E1",
		Highlight:  "#0284C7",
	}
}

// PaletteFor resolves the stored theme against the terminal background.
func PaletteFor(theme settings.SelectedTheme, darkBackground bool) Palette {
	switch theme {
	case settings.ThemeLight:
		return LightPalette()
	case settings.ThemeDark:
		return DarkPalette()
	default:
		if darkBackground {
			return DarkPalette()
		}
		return LightPalette()
	}
}

// Color returns the lipgloss color for hex, or no color when the palette is disabled.
func (p Palette) Color(hex string) color.Color {
	if p.Disabled || hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}
