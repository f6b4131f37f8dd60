// Root Model struct, constructor and Init
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/ezscaffold/internal/config"
	"github.com/nhath/ezscaffold/internal/db"
	"github.com/nhath/ezscaffold/internal/history"
	"github.com/nhath/ezscaffold/internal/scaffold"
	"github.com/nhath/ezscaffold/internal/ui/components/historytable"
	"github.com/nhath/ezscaffold/internal/ui/components/picker"
)

// Model is the root Bubble Tea model
type Model struct {
	// Core state
	width, height int
	config        *config.Config
	builder       *scaffold.Builder
	copier        scaffold.Copier
	historyStore  *history.Store // nil disables history
	tunnel        *db.SSHConfig

	// Form
	rows    []row
	focused int
	inputs  map[scaffold.Field]*textinput.Model
	preset  string // name of the preset currently loaded

	// Popups
	popupStack       *PopupStack
	showHelpPopup    bool
	showPresetPopup  bool
	presetIdx        int
	showSavePopup    bool
	presetNameInput  textinput.Model
	showHistoryPopup bool
	historyTable     historytable.Model
	history          []history.Entry
	showPicker       bool
	picker           picker.Model

	// Status
	loading   bool
	spinner   spinner.Model
	statusMsg string // notifier success channel
	errorMsg  string // notifier error channel
}

// Options carries the optional collaborators of the model
type Options struct {
	Copier  scaffold.Copier
	History *history.Store
	Tunnel  *db.SSHConfig
	Initial *scaffold.FormState
	Preset  string
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, opts Options) Model {
	InitStyles(cfg.Theme)

	b := scaffold.NewBuilder()
	if tool, err := scaffold.ParseTool(cfg.DefaultTool); err == nil {
		b.SetTool(tool)
	}
	if opts.Initial != nil {
		b.SetState(*opts.Initial)
	}

	ni := textinput.New()
	ni.Prompt = "Name: "
	ni.Placeholder = "preset name"
	ni.CharLimit = 64
	ni.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(HighlightColor())

	m := Model{
		config:          cfg,
		builder:         b,
		copier:          opts.Copier,
		historyStore:    opts.History,
		tunnel:          opts.Tunnel,
		rows:            formRows(),
		inputs:          newInputs(),
		preset:          opts.Preset,
		popupStack:      NewPopupStack(),
		presetNameInput: ni,
		spinner:         sp,
		historyTable:    historytable.New(cfg.Theme, nil),
		picker:          picker.New(cfg.Theme),
	}
	m.loadInputs()
	m.focusRow(0)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Command returns the command currently shown in the preview
func (m Model) Command() string {
	return m.builder.Command()
}

// State returns the current form
func (m Model) State() scaffold.FormState {
	return m.builder.State()
}
