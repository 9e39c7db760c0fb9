package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a form theme built from p.
func HuhTheme(p Palette) *huh.Theme {
	t := huh.ThemeBase()
	if p.Disabled {
		return t
	}

	color := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	t.Focused.Base = t.Focused.Base.BorderForeground(color(p.Border))
	t.Focused.Title = t.Focused.Title.Foreground(color(p.Highlight)).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(color(p.Muted))
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(color(p.Error))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(color(p.Error))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(color(p.Accent))
	t.Focused.Option = t.Focused.Option.Foreground(color(p.Foreground))
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(color(p.Accent))
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(color(p.Background)).Background(color(p.Primary)).Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(color(p.Foreground)).Background(lipgloss.Color(""))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
