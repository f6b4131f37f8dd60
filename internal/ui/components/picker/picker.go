// Package picker provides a popup for choosing schemas and tables found by introspection.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/ezscaffold/internal/config"
)

// Tab selects which list the picker is showing
type Tab int

const (
	TabSchemas Tab = iota
	TabTables
)

func (t Tab) String() string {
	if t == TabTables {
		return "Tables"
	}
	return "Schemas"
}

const maxVisible = 12

// PickedMsg is sent when the user confirms the selection
type PickedMsg struct {
	Schemas []string
	Tables  []string
}

// Styles for the picker
type Styles struct {
	Container   lipgloss.Style
	Title       lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Checked     lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds picker styles from the theme
func NewStyles(theme config.Theme) Styles {
	return Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			MarginBottom(1),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary)),
		ItemActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),
		Checked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(theme.Success)).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextFaint)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
	}
}

// Model is a two-tab multi-select list
type Model struct {
	items  [2][]string
	chosen [2]map[string]bool
	cursor [2]int
	offset [2]int
	tab    Tab
	width  int
	styles Styles
}

// New creates an empty picker
func New(theme config.Theme) Model {
	return Model{
		chosen: [2]map[string]bool{{}, {}},
		styles: NewStyles(theme),
	}
}

// Load replaces the lists. Values already selected in the form stay checked,
// and are added to the list when the database did not report them.
func (m Model) Load(schemas, tables, selectedSchemas, selectedTables []string) Model {
	m.items[TabSchemas] = merge(schemas, selectedSchemas)
	m.items[TabTables] = merge(tables, selectedTables)
	m.chosen = [2]map[string]bool{set(selectedSchemas), set(selectedTables)}
	m.cursor = [2]int{}
	m.offset = [2]int{}
	m.tab = TabTables
	if len(m.items[TabTables]) == 0 {
		m.tab = TabSchemas
	}
	return m
}

func merge(items, extra []string) []string {
	out := append([]string(nil), items...)
	seen := set(items)
	for _, e := range extra {
		if !seen[e] {
			out = append(out, e)
			seen[e] = true
		}
	}
	return out
}

func set(items []string) map[string]bool {
	s := make(map[string]bool, len(items))
	for _, i := range items {
		s[i] = true
	}
	return s
}

// SetWidth sets the available width
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// ActiveTab returns the tab being edited
func (m Model) ActiveTab() Tab {
	return m.tab
}

// Selected returns the checked items of a tab in list order
func (m Model) Selected(t Tab) []string {
	var out []string
	for _, item := range m.items[t] {
		if m.chosen[t][item] {
			out = append(out, item)
		}
	}
	return out
}

// Update handles input
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items[m.tab]
	switch key.String() {
	case "up", "k":
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case "down", "j":
		if m.cursor[m.tab] < len(items)-1 {
			m.cursor[m.tab]++
		}
	case "left", "h", "right", "l", "tab", "shift+tab":
		m.tab = 1 - m.tab
	case " ", "x":
		if len(items) > 0 {
			item := items[m.cursor[m.tab]]
			m.chosen[m.tab][item] = !m.chosen[m.tab][item]
		}
	case "a":
		all := len(m.Selected(m.tab)) < len(items)
		for _, item := range items {
			m.chosen[m.tab][item] = all
		}
	case "enter":
		picked := PickedMsg{Schemas: m.Selected(TabSchemas), Tables: m.Selected(TabTables)}
		return m, func() tea.Msg { return picked }
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m *Model) ensureCursorVisible() {
	c := m.cursor[m.tab]
	if c < m.offset[m.tab] {
		m.offset[m.tab] = c
	} else if c >= m.offset[m.tab]+maxVisible {
		m.offset[m.tab] = c - maxVisible + 1
	}
}

// View renders the picker popup
func (m Model) View() string {
	var view strings.Builder

	view.WriteString(m.styles.Title.Render("Introspected objects"))
	view.WriteString("\n")

	var tabs []string
	for _, t := range []Tab{TabSchemas, TabTables} {
		style := m.styles.TabInactive
		if t == m.tab {
			style = m.styles.TabActive
		}
		label := fmt.Sprintf("%s (%d/%d)", t, len(m.Selected(t)), len(m.items[t]))
		tabs = append(tabs, style.Render(label))
	}
	view.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	view.WriteString("\n\n")

	items := m.items[m.tab]
	if len(items) == 0 {
		view.WriteString(m.styles.Item.Render("  (none found)"))
		view.WriteString("\n")
	}
	end := m.offset[m.tab] + maxVisible
	if end > len(items) {
		end = len(items)
	}
	for i := m.offset[m.tab]; i < end; i++ {
		item := items[i]
		box := "[ ]"
		if m.chosen[m.tab][item] {
			box = m.styles.Checked.Render("[x]")
		}
		style, prefix := m.styles.Item, "  "
		if i == m.cursor[m.tab] {
			style, prefix = m.styles.ItemActive, "> "
		}
		view.WriteString(prefix + box + " " + style.Render(item) + "\n")
	}
	if len(items) > maxVisible {
		view.WriteString(m.styles.Help.Render(fmt.Sprintf("  %d-%d of %d", m.offset[m.tab]+1, end, len(items))))
		view.WriteString("\n")
	}

	view.WriteString("\n")
	view.WriteString(m.styles.Help.Render("space: toggle • a: all • tab: switch • enter: apply • esc: cancel"))

	width := m.width * 2 / 3
	if width < 40 {
		width = 40
	}
	if width > 80 {
		width = 80
	}
	return m.styles.Container.Width(width).Render(view.String())
}
