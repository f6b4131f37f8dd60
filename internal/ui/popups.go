package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) composite(box, main string) string {
	return overlay.Composite(box, main, overlay.Center, overlay.Center, 0, 0)
}

func (m Model) renderHelpPopup(main string) string {
	var content strings.Builder

	content.WriteString(PopupTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	keys := m.config.Keys

	section := func(name string, bindings []struct{ key, desc string }) {
		header := lipgloss.NewStyle().Bold(true).Foreground(HighlightColor()).Render(name)
		content.WriteString(header + "\n")
		for _, b := range bindings {
			keyStyle := lipgloss.NewStyle().Foreground(SuccessColor()).Width(18)
			descStyle := lipgloss.NewStyle().Foreground(TextSecondary())
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.key), descStyle.Render(b.desc)))
		}
		content.WriteString("\n")
	}

	section("Form", []struct{ key, desc string }{
		{strings.Join(keys.NextField, "/"), "Next field"},
		{strings.Join(keys.PrevField, "/"), "Previous field"},
		{strings.Join(keys.Toggle, "/"), "Toggle checkbox or tool"},
		{strings.Join(keys.ToggleTool, "/"), "Switch PMC / CLI"},
		{strings.Join(keys.Reset, "/"), "Clear the form"},
	})

	section("Command", []struct{ key, desc string }{
		{strings.Join(keys.Copy, "/"), "Copy to clipboard"},
		{strings.Join(keys.History, "/"), "Copied commands"},
		{strings.Join(keys.Introspect, "/"), "Load schemas and tables from the URL"},
	})

	section("Presets", []struct{ key, desc string }{
		{strings.Join(keys.SavePreset, "/"), "Save form as preset"},
		{strings.Join(keys.Presets, "/"), "Load or delete presets"},
	})

	section("Other", []struct{ key, desc string }{
		{strings.Join(keys.Help, "/"), "Show this help"},
		{strings.Join(keys.Exit, "/"), "Close popup"},
		{strings.Join(keys.Quit, "/"), "Quit"},
	})

	box := PopupStyle.
		Width(60).
		MaxHeight(m.height - 2).
		Render(content.String())
	return m.composite(box, main)
}

func (m Model) renderPresetPopup(main string) string {
	var content strings.Builder
	content.WriteString(PopupTitleStyle.Render("Presets"))
	content.WriteString("\n")

	names := m.config.ListPresets()
	if len(names) == 0 {
		content.WriteString(MetaStyle.Render("No presets saved yet"))
		content.WriteString("\n")
	}
	for i, name := range names {
		line := "  " + name
		style := ItemStyle
		if i == m.presetIdx {
			line = "> " + name
			style = SelectedStyle
		}
		if name == m.preset {
			line += " ●"
		}
		content.WriteString(style.Render(line))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Faint(true).Render("enter: load • x: delete • esc: close"))

	box := PopupStyle.Width(44).Render(content.String())
	return m.composite(box, main)
}

func (m Model) renderSavePopup(main string) string {
	var content strings.Builder
	content.WriteString(PopupTitleStyle.Render("Save preset"))
	content.WriteString("\n")
	content.WriteString(m.presetNameInput.View())
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Faint(true).Render("enter: save • esc: cancel"))

	box := PopupStyle.Width(50).Render(content.String())
	return m.composite(box, main)
}

func (m Model) renderHistoryPopup(main string) string {
	var content strings.Builder
	content.WriteString(PopupTitleStyle.Render(fmt.Sprintf("History (%d)", len(m.history))))
	content.WriteString("\n")
	if m.historyStore == nil {
		content.WriteString(MetaStyle.Render("History is disabled"))
	} else {
		content.WriteString(m.historyTable.View())
	}
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Faint(true).Render("enter: copy again • x: delete • esc: close"))

	box := PopupStyle.MaxHeight(m.height - 2).Render(content.String())
	return m.composite(box, main)
}

func (m Model) renderPickerPopup(main string) string {
	return m.composite(m.picker.View(), main)
}
