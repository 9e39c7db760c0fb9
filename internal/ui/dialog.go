package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// DialogResult reports what a key press did to a dialog.
type DialogResult int

const (
	// DialogPending means the dialog stays open.
	DialogPending DialogResult = iota
	// DialogDismissed means the dialog was closed without a decision.
	DialogDismissed
	// DialogSelected means an option was chosen; see RadioDialog.Cursor.
	DialogSelected
	// DialogConfirmed means the confirm button was chosen.
	DialogConfirmed
)

const dialogMaxWidth = 56

// RadioDialog is a single-choice list with the current value marked.
type RadioDialog struct {
	Title    string
	Options  []string
	Selected int

	cursor int
}

// NewRadioDialog opens with the cursor on the selected option.
func NewRadioDialog(title string, options []string, selected int) RadioDialog {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return RadioDialog{
		Title:    title,
		Options:  options,
		Selected: selected,
		cursor:   selected,
	}
}

// Cursor returns the highlighted option index.
func (d RadioDialog) Cursor() int { return d.cursor }

func (d RadioDialog) Update(msg tea.KeyPressMsg) (RadioDialog, DialogResult) {
	switch key := msg.String(); key {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.Options)-1 {
			d.cursor++
		}
	case "enter", "space":
		if len(d.Options) == 0 {
			return d, DialogDismissed
		}
		return d, DialogSelected
	case "esc", "q":
		return d, DialogDismissed
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(d.Options) {
			d.cursor = idx
			return d, DialogSelected
		}
	}
	return d, DialogPending
}

func (d RadioDialog) View(s Styles, width int) string {
	inner := dialogInnerWidth(width)
	lines := []string{s.DialogTitle.Render(d.Title)}
	for i, opt := range d.Options {
		mark := "( )"
		if i == d.Selected {
			mark = "(•)"
		}
		line := mark + " " + opt
		if i == d.cursor {
			lines = append(lines, s.Cursor.Render("> ")+s.OptionSelected.Render(line))
			continue
		}
		lines = append(lines, "  "+s.Option.Render(line))
	}
	return s.Dialog.Width(inner).Render(strings.Join(lines, "\n"))
}

// ConfirmDialog asks for a yes/no decision. Cancel has focus when it opens.
type ConfirmDialog struct {
	Title        string
	Body         string
	ConfirmLabel string
	CancelLabel  string

	focusConfirm bool
}

func NewConfirmDialog(title, body, confirmLabel, cancelLabel string) ConfirmDialog {
	return ConfirmDialog{
		Title:        title,
		Body:         body,
		ConfirmLabel: confirmLabel,
		CancelLabel:  cancelLabel,
	}
}

// ConfirmFocused reports whether the confirm button has focus.
func (d ConfirmDialog) ConfirmFocused() bool { return d.focusConfirm }

func (d ConfirmDialog) Update(msg tea.KeyPressMsg) (ConfirmDialog, DialogResult) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab", "shift+tab":
		d.focusConfirm = !d.focusConfirm
	case "enter", "space":
		if d.focusConfirm {
			return d, DialogConfirmed
		}
		return d, DialogDismissed
	case "y":
		return d, DialogConfirmed
	case "n", "esc", "q":
		return d, DialogDismissed
	}
	return d, DialogPending
}

func (d ConfirmDialog) View(s Styles, width int) string {
	inner := dialogInnerWidth(width)
	cancel := s.Button.Render(d.CancelLabel)
	confirm := s.Button.Render(d.ConfirmLabel)
	if d.focusConfirm {
		confirm = s.ButtonFocused.Render(d.ConfirmLabel)
	} else {
		cancel = s.ButtonFocused.Render(d.CancelLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", confirm)

	body := s.DialogBody.Render(wordwrap.String(d.Body, max(10, inner-4)))
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.DialogTitle.Render(d.Title),
		body,
		"",
		buttons,
	)
	return s.Dialog.Width(inner).Render(content)
}

// dialogInnerWidth keeps dialogs readable on wide terminals and inside the
// frame on narrow ones; 6 columns go to border and padding.
func dialogInnerWidth(width int) int {
	if width <= 0 {
		width = defaultTerminalWidth
	}
	return max(20, min(dialogMaxWidth, width-6))
}
