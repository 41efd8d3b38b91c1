package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stamptrail/stampbook/internal/export"
	"github.com/stamptrail/stampbook/internal/model"
)

// Async results carry the generation they were issued under; stale ones are
// dropped in Update.

type sessionInitializedMsg struct{}

type delayedNavMsg struct {
	generation int
	path       string
}

type authResultMsg struct {
	generation int
	token      string
	signup     bool
	err        error
}

type uploadResultMsg struct {
	generation int
	rows       []model.Entry
	err        error
}

type saveResultMsg struct {
	generation int
	count      int
	err        error
}

type historyResultMsg struct {
	generation int
	entries    []model.Entry
	err        error
}

type mapResultMsg struct {
	generation int
	entries    []model.MapEntry
	err        error
}

type exportResultMsg struct {
	generation int
	path       string
	count      int
	err        error
}

// Init restores the session before the first real screen renders.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.sess.Initialize()
		return sessionInitializedMsg{}
	}
}

// delayedNavCmd fires the navigation scheduled by the login call-to-action
// after the configured exit-transition delay.
func (m Model) delayedNavCmd(path string) tea.Cmd {
	gen := m.generation
	return tea.Tick(m.navDelay(), func(time.Time) tea.Msg {
		return delayedNavMsg{generation: gen, path: path}
	})
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		token, err := m.client.Login(context.Background(), username, password)
		return authResultMsg{generation: gen, token: token, err: err}
	}
}

func (m Model) signupCmd(username, password string) tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		token, err := m.client.Signup(context.Background(), username, password)
		return authResultMsg{generation: gen, token: token, signup: true, err: err}
	}
}

func (m Model) uploadCmd(path string) tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return uploadResultMsg{generation: gen, err: err}
		}
		defer f.Close()

		rows, err := m.client.Upload(context.Background(), path, f)
		return uploadResultMsg{generation: gen, rows: rows, err: err}
	}
}

func (m Model) saveCmd(rows []model.Entry) tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		err := m.client.SaveEntries(context.Background(), rows)
		return saveResultMsg{generation: gen, count: len(rows), err: err}
	}
}

func (m Model) fetchHistoryCmd() tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		entries, err := m.client.History(context.Background())
		return historyResultMsg{generation: gen, entries: entries, err: err}
	}
}

func (m Model) fetchMapCmd() tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		entries, err := m.client.HistoryMap(context.Background())
		return mapResultMsg{generation: gen, entries: entries, err: err}
	}
}

// exportCmd writes the current history view to an xlsx file in the working
// directory.
func (m Model) exportCmd(entries []model.Entry) tea.Cmd {
	gen := m.generation
	return func() tea.Msg {
		const path = "passport_history.xlsx"

		if len(entries) == 0 {
			return exportResultMsg{generation: gen, err: export.ErrNothingToExport}
		}

		f, err := os.Create(path)
		if err != nil {
			return exportResultMsg{generation: gen, err: err}
		}

		if err := export.WriteXLSX(f, entries); err != nil {
			f.Close()
			os.Remove(path)
			return exportResultMsg{generation: gen, err: err}
		}
		if err := f.Close(); err != nil {
			return exportResultMsg{generation: gen, err: err}
		}
		return exportResultMsg{generation: gen, path: path, count: len(entries)}
	}
}
