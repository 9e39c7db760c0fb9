package ui

import (
	"os"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

const defaultTerminalWidth = 80

func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}

// Header renders the top bar.
func Header(s Styles, title string) string {
	return s.TopBar.Render(title)
}

// Frame renders a full-screen TUI layout.
func Frame(s Styles, title string, subtitle string, body string, footer string) string {
	parts := make([]string, 0, 5)
	parts = append(parts, Header(s, title))
	if subtitle != "" {
		parts = append(parts, s.Tagline.Render(subtitle))
	}
	parts = append(parts, "", body)
	if footer != "" {
		parts = append(parts, "", footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
