// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/ezscaffold/internal/config"
)

var (
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	warningColor   lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color
	popupBg     lipgloss.Color
	borderColor lipgloss.Color
	selectedBg  lipgloss.Color

	syntaxStyle string

	// Styles
	TitleStyle       lipgloss.Style
	StatusBarStyle   lipgloss.Style
	ToolBadgeStyle   lipgloss.Style
	PresetBadgeStyle lipgloss.Style
	LabelStyle       lipgloss.Style
	LabelFocusStyle  lipgloss.Style
	CursorStyle      lipgloss.Style
	ValueStyle       lipgloss.Style
	MetaStyle        lipgloss.Style
	PreviewStyle     lipgloss.Style
	SuccessStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	KeyStyle         lipgloss.Style
	PopupStyle       lipgloss.Style
	PopupTitleStyle  lipgloss.Style
	ItemStyle        lipgloss.Style
	SelectedStyle    lipgloss.Style
)

// Color getter functions
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func WarningColor() lipgloss.Color   { return warningColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func CardBg() lipgloss.Color         { return cardBg }
func PopupBg() lipgloss.Color        { return popupBg }

// InitStyles initializes the global styles from the configured theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	warningColor = lipgloss.Color(theme.Warning)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)
	popupBg = lipgloss.Color(theme.PopupBg)
	borderColor = lipgloss.Color(theme.BorderColor)
	selectedBg = lipgloss.Color(theme.SelectedBg)

	syntaxStyle = theme.Syntax

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	ToolBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(successColor).
		Foreground(bgPrimary)

	PresetBadgeStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(cardBg).
		Foreground(textPrimary)

	LabelStyle = lipgloss.NewStyle().
		Foreground(textSecondary).
		Width(26)

	LabelFocusStyle = LabelStyle.
		Foreground(highlightColor).
		Bold(true)

	CursorStyle = lipgloss.NewStyle().
		Foreground(highlightColor).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(textPrimary)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	PreviewStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
		Background(successColor).
		Foreground(bgPrimary).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Background(errorColor).
		Foreground(textPrimary).
		Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
		Foreground(warningColor).
		Bold(true)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Background(popupBg).
		Padding(1, 2)

	PopupTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginBottom(1)

	ItemStyle = lipgloss.NewStyle().
		Foreground(textPrimary)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(successColor).
		Background(selectedBg).
		Bold(true)
}
