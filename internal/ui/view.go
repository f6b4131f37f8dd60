package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nhath/ezscaffold/internal/scaffold"
	"github.com/nhath/ezscaffold/internal/ui/highlight"
)

// View renders the form, the command preview and any open popups
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHints())

	// fill the screen so popups taller than the form are not cut off
	main := lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String())

	if m.showHelpPopup {
		main = m.renderHelpPopup(main)
	}
	if m.showPresetPopup {
		main = m.renderPresetPopup(main)
	}
	if m.showSavePopup {
		main = m.renderSavePopup(main)
	}
	if m.showHistoryPopup {
		main = m.renderHistoryPopup(main)
	}
	if m.showPicker {
		main = m.renderPickerPopup(main)
	}
	return main
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("EF Core scaffold builder")
	badge := ToolBadgeStyle.Render(m.builder.State().Tool.Label())
	parts := []string{title, " ", badge}
	if m.preset != "" {
		parts = append(parts, " ", PresetBadgeStyle.Render(m.preset))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderForm() string {
	s := m.builder.State()

	var b strings.Builder
	for i, r := range m.rows {
		focused := i == m.focused

		cursor := "  "
		label := LabelStyle.Render(r.label)
		if focused {
			cursor = CursorStyle.Render("> ")
			label = LabelFocusStyle.Render(r.label)
		}

		var value string
		switch r.kind {
		case rowTool:
			value = m.renderToolSwitch()
		case rowText:
			value = m.inputs[r.field].View()
		case rowToggle:
			box := "[ ]"
			if s.Bool(r.field) {
				box = "[x]"
			}
			value = ValueStyle.Render(box)
		}

		b.WriteString(cursor + label + value + "\n")
	}
	return b.String()
}

func (m Model) renderToolSwitch() string {
	active := m.builder.State().Tool
	var parts []string
	for _, t := range []scaffold.Tool{scaffold.PackageManager, scaffold.CLI} {
		style := MetaStyle
		if t == active {
			style = SelectedStyle
		}
		parts = append(parts, style.Padding(0, 1).Render(t.Label()))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderPreview() string {
	cmd := highlight.Command(m.builder.Command(), m.builder.State().Tool, syntaxStyle)

	width := m.width - 2
	if width < 40 {
		width = 40
	}
	return PreviewStyle.Width(width).Render(cmd)
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.loading {
		loadingStyle := lipgloss.NewStyle().Foreground(AccentColor()).Padding(0, 1)
		parts = append(parts, loadingStyle.Render(m.spinner.View()+" Introspecting..."))
	}

	if m.statusMsg != "" {
		parts = append(parts, SuccessStyle.Render("✓ "+m.statusMsg))
	}

	if m.errorMsg != "" {
		truncated := m.errorMsg
		if limit := m.width - 10; limit > 10 {
			truncated = ansi.Truncate(truncated, limit, "...")
		}
		parts = append(parts, ErrorStyle.Render("⚠ "+truncated))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).Render(content)
}

// firstKey returns the first binding or fallback
func firstKey(bindings []string, fallback string) string {
	if len(bindings) > 0 {
		return bindings[0]
	}
	return fallback
}

func (m Model) renderHints() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(TextPrimary()).
		Background(CardBg()).
		Padding(0, 1).
		Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(TextSecondary())

	hint := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(" "+desc)
	}

	keys := m.config.Keys
	hints := []string{
		hint(firstKey(keys.Copy, "ctrl+y"), "Copy"),
		hint(firstKey(keys.ToggleTool, "ctrl+t"), "Tool"),
		hint(firstKey(keys.Reset, "ctrl+r"), "Reset"),
		hint(firstKey(keys.Presets, "ctrl+o"), "Presets"),
		hint(firstKey(keys.Help, "f1"), "Help"),
		hint(firstKey(keys.Quit, "ctrl+c"), "Quit"),
	}
	return strings.Join(hints, "  ")
}
