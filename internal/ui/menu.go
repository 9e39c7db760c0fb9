package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

// ErrNonInteractive is returned when a menu is requested without a terminal.
var ErrNonInteractive = errors.New("non-interactive terminal")

type MenuOption func(*menuConfig)

type menuConfig struct {
	allowBack          bool
	backLabel          string
	initialSelectionID string
}

func defaultMenuConfig() menuConfig {
	return menuConfig{
		allowBack: false,
		backLabel: "back",
	}
}

func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.allowBack = true
		if label != "" {
			cfg.backLabel = label
		}
	}
}

// WithInitialSelectionID pre-selects an item by ID when the menu opens.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.initialSelectionID = strings.TrimSpace(id)
	}
}

type menuKeyMap struct {
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Filter  key.Binding
	Jump    key.Binding
	hasBack bool
}

func newMenuKeyMap(allowBack bool, backLabel string) menuKeyMap {
	k := menuKeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
	if allowBack {
		k.Back = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", backLabel))
		k.Quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
		k.hasBack = true
	}
	return k
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	if k.hasBack {
		return []key.Binding{k.Select, k.Jump, k.Filter, k.Back}
	}
	return []key.Binding{k.Select, k.Jump, k.Filter, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	if k.hasBack {
		return [][]key.Binding{{k.Select, k.Jump, k.Filter}, {k.Back, k.Quit}}
	}
	return [][]key.Binding{{k.Select, k.Jump, k.Filter}, {k.Quit}}
}

// MenuItem represents a selectable item in a TUI list.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
}

// Title returns the menu label.
func (m MenuItem) Title() string { return m.TitleText }

// Description returns the menu details.
func (m MenuItem) Description() string { return m.Details }

// FilterValue returns the filterable text.
func (m MenuItem) FilterValue() string { return m.TitleText + " " + m.Details + " " + m.ID }

type menuModel struct {
	styles    Styles
	list      list.Model
	title     string
	subtitle  string
	choice    string
	quitting  bool
	allowBack bool
	help      help.Model
	keys      menuKeyMap

	width  int
	height int
}

type launcherDelegate struct {
	styles Styles
}

func (d launcherDelegate) Height() int { return 1 }

func (d launcherDelegate) Spacing() int { return 0 }

func (d launcherDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d launcherDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok || m.Width() <= 0 {
		return
	}

	isSelected := index == m.Index() && m.FilterState() != list.Filtering

	slot := fmt.Sprintf("%d.", index+1)
	content := menuItem.TitleText
	if menuItem.Details != "" && m.Width() > 60 {
		content += " - " + menuItem.Details
	}
	content = ansi.Truncate(content, max(14, m.Width()-6), "...")

	if isSelected {
		fmt.Fprint(w, d.styles.Cursor.Render("> ")+d.styles.RowTitleSelected.Render(slot+" "+content)) //nolint:errcheck
		return
	}
	fmt.Fprint(w, "  "+d.styles.Muted.Render(slot)+" "+d.styles.RowTitle.Render(content)) //nolint:errcheck
}

func newMenuModel(s Styles, title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, launcherDelegate{styles: s}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = s.Muted
	l.Styles.PaginationStyle = s.Muted

	if cfg.initialSelectionID != "" {
		for idx, item := range items {
			if item.ID == cfg.initialSelectionID {
				l.Select(idx)
				break
			}
		}
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = s.HelpKey
	helpModel.Styles.ShortDesc = s.HelpDesc
	helpModel.Styles.FullKey = s.HelpKey
	helpModel.Styles.FullDesc = s.HelpDesc
	helpModel.Styles.Ellipsis = s.HelpDesc

	m := menuModel{
		styles:    s,
		list:      l,
		title:     title,
		subtitle:  subtitle,
		allowBack: cfg.allowBack,
		help:      helpModel,
		keys:      newMenuKeyMap(cfg.allowBack, cfg.backLabel),
	}
	m.resizeList()
	return m
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
	case tea.KeyPressMsg:
		filtering := m.list.FilterState() == list.Filtering
		switch msg.String() {
		case "enter":
			if filtering {
				break
			}
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.ID
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if !filtering && m.selectByNumber(msg.String()) {
				return m, tea.Quit
			}
		case "q", "esc":
			if filtering || m.list.IsFiltered() {
				break
			}
			m.quitting = true
			if m.allowBack {
				m.choice = MenuActionBack
			} else {
				m.choice = MenuActionQuit
			}
			return m, tea.Quit
		case "ctrl+c":
			m.quitting = true
			m.choice = MenuActionQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *menuModel) pageStartIndex() int {
	return max(0, m.list.Index()-m.list.Cursor())
}

func (m *menuModel) selectByNumber(keyNum string) bool {
	if len(keyNum) != 1 {
		return false
	}
	slot := int(keyNum[0]-'1') + 1
	if slot < 1 || slot > 9 {
		return false
	}

	visible := m.list.VisibleItems()
	target := m.pageStartIndex() + (slot - 1)
	if target >= len(visible) {
		return false
	}

	m.list.Select(target)
	if item, ok := visible[target].(MenuItem); ok {
		m.choice = item.ID
		return true
	}
	return false
}

func (m *menuModel) resizeList() {
	width := m.width
	if width <= 0 {
		width = terminalWidth()
	}
	height := m.height
	if height <= 0 {
		height = 24
	}
	m.list.SetSize(max(20, width-4), max(5, height-8))
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m menuModel) render() string {
	body := m.list.View()
	if filter := strings.TrimSpace(m.list.FilterValue()); filter != "" {
		hint := m.styles.Muted.Render("filter: " + ansi.Truncate(filter, 40, "..."))
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", hint)
	}

	return Frame(m.styles, m.title, m.subtitle, body, m.help.View(m.keys))
}

// RunMenu displays a TUI list and returns the selected item ID, or one of
// the MenuAction values when the user leaves.
func RunMenu(s Styles, title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", ErrNonInteractive
	}
	cfg := defaultMenuConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	result, err := tea.NewProgram(newMenuModel(s, title, subtitle, items, cfg)).Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(menuModel); ok {
		return final.choice, nil
	}
	return "", nil
}
