package ui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// LinkRow renders a row that opens another surface. The subtitle shows the
// current value.
func LinkRow(s Styles, icon, title, subtitle string, selected bool, width int) string {
	return renderRow(s, icon, title, subtitle, "", selected, width)
}

// SwitchRow renders a boolean row with its state on the right.
func SwitchRow(s Styles, icon, title, body string, checked bool, onLabel, offLabel string, selected bool, width int) string {
	state := s.SwitchOff.Render("○ " + offLabel)
	if checked {
		state = s.SwitchOn.Render("● " + onLabel)
	}
	return renderRow(s, icon, title, body, state, selected, width)
}

func renderRow(s Styles, icon, title, subtitle, trailing string, selected bool, width int) string {
	prefix := "  "
	titleStyle := s.RowTitle
	if selected {
		prefix = s.Cursor.Render("> ")
		titleStyle = s.RowTitleSelected
	}

	head := prefix + s.Icon.Render(icon) + " "
	available := max(8, width-lipgloss.Width(head)-lipgloss.Width(trailing)-1)
	line := head + titleStyle.Render(ansi.Truncate(title, available, "..."))
	if trailing != "" {
		gap := width - lipgloss.Width(line) - lipgloss.Width(trailing)
		line += strings.Repeat(" ", max(1, gap)) + trailing
	}

	if subtitle == "" {
		return line
	}
	indent := strings.Repeat(" ", lipgloss.Width(head))
	sub := indent + s.RowSubtitle.Render(ansi.Truncate(subtitle, max(8, width-len(indent)), "..."))
	return line + "\n" + sub
}
