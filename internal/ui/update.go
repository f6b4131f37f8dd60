package ui

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/ezscaffold/internal/config"
	"github.com/nhath/ezscaffold/internal/db"
	"github.com/nhath/ezscaffold/internal/scaffold"
	"github.com/nhath/ezscaffold/internal/ui/components/historytable"
	"github.com/nhath/ezscaffold/internal/ui/components/picker"
)

const (
	popupHelp    = "help"
	popupPresets = "presets"
	popupSave    = "save"
	popupHistory = "history"
	popupPicker  = "picker"
)

func matchKey(msg tea.KeyMsg, keys []string) bool {
	return slices.Contains(keys, msg.String())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.historyTable = m.historyTable.SetWidth(msg.Width - 8)
		m.picker = m.picker.SetWidth(msg.Width)
		w := msg.Width - 34
		if w < 20 {
			w = 20
		}
		for _, in := range m.inputs {
			in.Width = w
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClipboardCopiedMsg:
		if msg.OK {
			m.statusMsg, m.errorMsg = msg.Message, ""
		} else {
			m.statusMsg, m.errorMsg = "", msg.Message
		}
		if msg.Err != nil {
			log.Printf("history: add: %v", msg.Err)
		}
		return m, nil

	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = "History: " + msg.Err.Error()
			return m, nil
		}
		m.history = msg.Entries
		m.historyTable = historytable.New(m.config.Theme, msg.Entries).SetWidth(m.width - 8)
		return m, nil

	case HistoryDeletedMsg:
		if msg.Err != nil {
			m.errorMsg = "History: " + msg.Err.Error()
			return m, nil
		}
		m.statusMsg = "History entry deleted"
		return m, m.loadHistoryCmd()

	case IntrospectedMsg:
		m.loading = false
		if msg.Err != nil {
			m.statusMsg, m.errorMsg = "", msg.Err.Error()
			return m, nil
		}
		m.applyCatalog(msg.Catalog)
		return m, nil

	case picker.PickedMsg:
		m.setField(scaffold.Schemas, strings.Join(msg.Schemas, ", "))
		m.setField(scaffold.Tables, strings.Join(msg.Tables, ", "))
		m.closePopup(popupPicker)
		m.statusMsg = fmt.Sprintf("Picked %d schemas, %d tables", len(msg.Schemas), len(msg.Tables))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink and other input messages
	if m.showSavePopup {
		var cmd tea.Cmd
		m.presetNameInput, cmd = m.presetNameInput.Update(msg)
		return m, cmd
	}
	return m, m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.config.Keys

	if matchKey(msg, keys.Quit) {
		return m, tea.Quit
	}

	if !m.popupStack.IsEmpty() {
		if matchKey(msg, keys.Exit) {
			m.popupStack.CloseTop(&m)
			return m, nil
		}
		switch m.popupStack.TopName() {
		case popupSave:
			return m.handleSaveKey(msg)
		case popupPresets:
			return m.handlePresetKey(msg)
		case popupHistory:
			return m.handleHistoryKey(msg)
		case popupPicker:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		case popupHelp:
			if matchKey(msg, keys.Help) {
				m.popupStack.CloseTop(&m)
			}
			return m, nil
		}
	}

	r := m.currentRow()
	switch {
	case matchKey(msg, keys.Copy):
		return m, m.copyCmd()

	case matchKey(msg, keys.Reset):
		m.builder.Reset()
		m.loadInputs()
		m.preset = ""
		m.clearStatus()
		return m, nil

	case matchKey(msg, keys.ToggleTool):
		m.builder.SetTool(m.builder.State().Tool.Toggle())
		m.clearStatus()
		return m, nil

	case matchKey(msg, keys.NextField):
		return m, m.focusRow(m.focused + 1)

	case matchKey(msg, keys.PrevField):
		return m, m.focusRow(m.focused - 1)

	case r.kind != rowText && matchKey(msg, keys.Toggle):
		m.activate()
		return m, nil

	case r.kind == rowTool && (msg.Type == tea.KeyLeft || msg.Type == tea.KeyRight):
		m.activate()
		return m, nil

	case r.kind == rowText && msg.Type == tea.KeyEnter:
		return m, m.focusRow(m.focused + 1)

	case matchKey(msg, keys.SavePreset):
		return m, m.openSavePopup()

	case matchKey(msg, keys.Presets):
		m.openPresetPopup()
		return m, nil

	case matchKey(msg, keys.History):
		m.showHistoryPopup = true
		m.popupStack.Push(popupHistory, func(m *Model) bool {
			was := m.showHistoryPopup
			m.showHistoryPopup = false
			return was
		})
		return m, m.loadHistoryCmd()

	case matchKey(msg, keys.Introspect):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.clearStatus()
		return m, tea.Batch(m.introspectCmd(), m.spinner.Tick)

	case matchKey(msg, keys.Help):
		m.showHelpPopup = true
		m.popupStack.Push(popupHelp, func(m *Model) bool {
			was := m.showHelpPopup
			m.showHelpPopup = false
			return was
		})
		return m, nil

	case matchKey(msg, keys.Exit):
		m.clearStatus()
		return m, nil
	}

	return m, m.updateInput(msg)
}

func (m *Model) closePopup(name string) {
	if m.popupStack.TopName() == name {
		m.popupStack.CloseTop(m)
	}
}

// Presets

func (m *Model) openSavePopup() tea.Cmd {
	m.presetNameInput.SetValue(m.preset)
	m.presetNameInput.CursorEnd()
	m.showSavePopup = true
	m.popupStack.Push(popupSave, func(m *Model) bool {
		was := m.showSavePopup
		m.showSavePopup = false
		m.presetNameInput.Blur()
		return was
	})
	return m.presetNameInput.Focus()
}

func (m Model) handleSaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.presetNameInput, cmd = m.presetNameInput.Update(msg)
		return m, cmd
	}

	name := strings.TrimSpace(m.presetNameInput.Value())
	if name == "" {
		m.errorMsg = "Preset name is required"
		return m, nil
	}
	if err := m.config.SavePreset(config.PresetFromState(name, m.builder.State())); err != nil {
		m.statusMsg, m.errorMsg = "", "Save preset: "+err.Error()
		return m, nil
	}
	m.preset = name
	m.closePopup(popupSave)
	m.statusMsg, m.errorMsg = fmt.Sprintf("Saved preset %q", name), ""
	return m, nil
}

func (m *Model) openPresetPopup() {
	m.presetIdx = 0
	if i := slices.Index(m.config.ListPresets(), m.preset); i >= 0 {
		m.presetIdx = i
	}
	m.showPresetPopup = true
	m.popupStack.Push(popupPresets, func(m *Model) bool {
		was := m.showPresetPopup
		m.showPresetPopup = false
		return was
	})
}

func (m Model) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.config.ListPresets()
	switch msg.String() {
	case "up", "k":
		if m.presetIdx > 0 {
			m.presetIdx--
		}
	case "down", "j":
		if m.presetIdx < len(names)-1 {
			m.presetIdx++
		}
	case "enter":
		if len(names) == 0 {
			return m, nil
		}
		name := names[m.presetIdx]
		p, err := m.config.GetPreset(name)
		if err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.builder.SetState(p.FormState())
		m.loadInputs()
		m.preset = name
		m.closePopup(popupPresets)
		m.statusMsg, m.errorMsg = fmt.Sprintf("Loaded preset %q", name), ""
	case "x", "delete":
		if len(names) == 0 {
			return m, nil
		}
		name := names[m.presetIdx]
		if err := m.config.DeletePreset(name); err != nil {
			m.errorMsg = "Delete preset: " + err.Error()
			return m, nil
		}
		if m.preset == name {
			m.preset = ""
		}
		if m.presetIdx >= len(names)-1 && m.presetIdx > 0 {
			m.presetIdx--
		}
		m.statusMsg, m.errorMsg = fmt.Sprintf("Deleted preset %q", name), ""
	}
	return m, nil
}

// History

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		e := m.historyTable.Selected()
		if e == nil {
			return m, nil
		}
		m.closePopup(popupHistory)
		return m, m.recopyCmd(e.Command)
	case "x", "delete":
		e := m.historyTable.Selected()
		if e == nil {
			return m, nil
		}
		return m, m.deleteHistoryCmd(e.ID)
	}
	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// Introspection

// applyCatalog rewrites the connection to its ADO.NET form, fills the
// provider when empty and opens the picker
func (m *Model) applyCatalog(c *db.Catalog) {
	m.setField(scaffold.ConnectionString, c.ConnectionString)
	s := m.builder.State()
	if strings.TrimSpace(s.Provider) == "" {
		m.setField(scaffold.Provider, c.Provider)
	}

	m.picker = m.picker.Load(c.Schemas, c.Tables, splitList(s.Schemas), splitList(s.Tables))
	m.showPicker = true
	m.popupStack.Push(popupPicker, func(m *Model) bool {
		was := m.showPicker
		m.showPicker = false
		return was
	})
	m.statusMsg = fmt.Sprintf("Found %d schemas, %d tables", len(c.Schemas), len(c.Tables))
}

func splitList(list string) []string {
	var out []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
