package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/ezscaffold/internal/db"
	"github.com/nhath/ezscaffold/internal/history"
	"github.com/nhath/ezscaffold/internal/scaffold"
)

const (
	historyPageSize   = 50
	introspectTimeout = 15 * time.Second
)

// statusNotifier records the outcome of a copy for the status bar
type statusNotifier struct {
	message string
}

func (n *statusNotifier) NotifySuccess(message string) { n.message = message }
func (n *statusNotifier) NotifyError(message string)   { n.message = message }

// copyCmd copies the current command off the update loop and records it
func (m Model) copyCmd() tea.Cmd {
	b := m.builder.Clone()
	copier := m.copier
	store := m.historyStore
	preset := m.preset

	return func() tea.Msg {
		if copier == nil {
			return ClipboardCopiedMsg{Command: b.Command(), Message: scaffold.CopyFailedMessage}
		}

		n := &statusNotifier{}
		ok := b.Copy(copier, n)
		msg := ClipboardCopiedMsg{Command: b.Command(), OK: ok, Message: n.message}

		if ok && store != nil {
			msg.Err = store.Add(&history.Entry{
				Tool:    string(b.State().Tool),
				Command: b.Command(),
				Preset:  preset,
			})
		}
		return msg
	}
}

// recopyCmd copies a command taken from history
func (m Model) recopyCmd(command string) tea.Cmd {
	copier := m.copier
	return func() tea.Msg {
		ok := copier != nil && copier.Copy(command)
		message := scaffold.CopiedMessage
		if !ok {
			message = scaffold.CopyFailedMessage
		}
		return ClipboardCopiedMsg{Command: command, OK: ok, Message: message}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	store := m.historyStore
	return func() tea.Msg {
		if store == nil {
			return HistoryLoadedMsg{}
		}
		entries, err := store.List(historyPageSize, 0)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) deleteHistoryCmd(id int64) tea.Cmd {
	store := m.historyStore
	return func() tea.Msg {
		if store == nil {
			return HistoryDeletedMsg{ID: id}
		}
		return HistoryDeletedMsg{ID: id, Err: store.Delete(id)}
	}
}

func (m Model) introspectCmd() tea.Cmd {
	raw := m.builder.State().ConnectionString
	tunnel := m.tunnel
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), introspectTimeout)
		defer cancel()

		cat, err := db.Introspect(ctx, raw, tunnel)
		if err != nil {
			log.Printf("introspect: %v", err)
		}
		return IntrospectedMsg{Catalog: cat, Err: err}
	}
}
