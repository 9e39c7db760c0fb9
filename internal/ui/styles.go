// Package ui provides the Charm-based widgets otpdeck screens are built from
package ui

import (
	lipgloss "charm.land/lipgloss/v2"
)

// Styles is the set of lipgloss styles derived from one palette.
type Styles struct {
	Palette Palette

	// Frame
	TopBar  lipgloss.Style
	Tagline lipgloss.Style

	// Text
	Bold      lipgloss.Style
	Primary   lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	ErrorText lipgloss.Style

	// Setting rows
	Icon             lipgloss.Style
	RowTitle         lipgloss.Style
	RowTitleSelected lipgloss.Style
	RowSubtitle      lipgloss.Style
	Cursor           lipgloss.Style
	SwitchOn         lipgloss.Style
	SwitchOff        lipgloss.Style

	// Dialogs
	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	DialogBody     lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Help footer
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Boxes
	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style
}

// NewStyles builds styles from p.
func NewStyles(p Palette) Styles {
	c := p.Color
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	return Styles{
		Palette: p,

		TopBar: lipgloss.NewStyle().
			Foreground(c(p.Background)).
			Background(c(p.Primary)).
			Padding(0, 1).
			Bold(true),
		Tagline: lipgloss.NewStyle().
			Foreground(c(p.Muted)).
			Italic(true),

		Bold:      lipgloss.NewStyle().Bold(true),
		Primary:   lipgloss.NewStyle().Foreground(c(p.Primary)).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(c(p.Muted)),
		Success:   lipgloss.NewStyle().Foreground(c(p.Success)).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(c(p.Warning)),
		ErrorText: lipgloss.NewStyle().Foreground(c(p.Error)).Bold(true),

		Icon:             lipgloss.NewStyle().Foreground(c(p.Accent)).Width(2),
		RowTitle:         lipgloss.NewStyle().Foreground(c(p.Foreground)),
		RowTitleSelected: lipgloss.NewStyle().Foreground(c(p.Primary)).Bold(true),
		RowSubtitle:      lipgloss.NewStyle().Foreground(c(p.Muted)),
		Cursor:           lipgloss.NewStyle().Foreground(c(p.Primary)).Bold(true),
		SwitchOn:         lipgloss.NewStyle().Foreground(c(p.Success)).Bold(true),
		SwitchOff:        lipgloss.NewStyle().Foreground(c(p.Muted)),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.Border)).
			Padding(1, 2),
		DialogTitle:    lipgloss.NewStyle().Foreground(c(p.Highlight)).Bold(true).MarginBottom(1),
		DialogBody:     lipgloss.NewStyle().Foreground(c(p.Foreground)),
		Option:         lipgloss.NewStyle().Foreground(c(p.Foreground)),
		OptionSelected: lipgloss.NewStyle().Foreground(c(p.Accent)).Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(c(p.Foreground)).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(p.Background)).
			Background(c(p.Primary)).
			Padding(0, 2).
			Bold(true),

		HelpKey:  lipgloss.NewStyle().Foreground(c(p.Accent)).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(c(p.Muted)),

		InfoBox:    box.BorderForeground(c(p.Secondary)),
		SuccessBox: box.BorderForeground(c(p.Success)),
		ErrorBox:   box.BorderForeground(c(p.Error)),
	}
}
