package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stamptrail/stampbook/internal/export"
	"github.com/stamptrail/stampbook/internal/grid"
	"github.com/stamptrail/stampbook/internal/logger"
	"github.com/stamptrail/stampbook/internal/model"
	"github.com/stamptrail/stampbook/internal/route"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionInitializedMsg:
		m.refreshGuard()
		return m, nil

	case delayedNavMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.navigate(msg.path)
		m.resetAuthInputs()
		return m, textinput.Blink

	case authResultMsg:
		// The request settles regardless of which screen is showing; only
		// the outcome is dropped when the screen changed underneath it.
		m.authBusy = false
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.message = msg.err.Error()
			return m, nil
		}
		if err := m.sess.Login(msg.token); err != nil {
			m.message = fmt.Sprintf("Failed to store session: %v", err)
			return m, nil
		}
		logger.Info("Authenticated", logger.F("signup", msg.signup))
		m.navigate(route.PathHome)
		m.fileInput.Focus()
		if msg.signup {
			m.message = "Account created. Welcome!"
		} else {
			m.message = "Logged in."
		}
		return m, textinput.Blink

	case uploadResultMsg:
		m.uploading = false
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			// Previous table contents survive a failed upload.
			m.message = fmt.Sprintf("Upload failed: %v", msg.err)
			return m, nil
		}
		m.table.LoadOCR(msg.rows)
		m.rowCursor = 0
		m.colCursor = grid.ColCountry
		m.gridFocus = true
		m.fileInput.Blur()
		m.message = fmt.Sprintf("Extracted %d entries. Review and save.", m.table.Len())
		return m, nil

	case saveResultMsg:
		// Release the save slot even for a stale result: the request is
		// settled either way, and holding the slot would block every
		// future save.
		m.table.EndSave()
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			m.message = fmt.Sprintf("Error saving data: %v", msg.err)
			return m, nil
		}
		m.message = fmt.Sprintf("Data saved successfully! (%d entries)", msg.count)
		return m, nil

	case historyResultMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.historyLoading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Failed to fetch passport history: %v", msg.err)
			return m, nil
		}
		skipped := m.historyView.Load(msg.entries)
		m.historyCursor = 0
		if len(skipped) > 0 {
			m.message = fmt.Sprintf("Skipped duplicate dates: %s", strings.Join(skipped, ", "))
		}
		return m, nil

	case mapResultMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.mapLoading = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Failed to fetch map history: %v", msg.err)
			return m, nil
		}
		// The geocoder marks unresolved airports with 0,0; drop them.
		m.locations = nil
		for _, e := range msg.entries {
			if e.Located() {
				m.locations = append(m.locations, e)
			}
		}
		return m, nil

	case exportResultMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, export.ErrNothingToExport) {
				m.message = "No data to export"
			} else {
				m.message = fmt.Sprintf("Export failed: %v", msg.err)
			}
			return m, nil
		}
		m.message = fmt.Sprintf("Exported %d entries to %s", msg.count, msg.path)
		return m, nil

	case tea.KeyMsg:
		// Nothing is interactive until the session restore completes.
		if m.decision.Loading {
			if key.Matches(msg, keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.path {
		case route.PathRoot:
			return m.updateWelcome(msg)
		case route.PathLogin, route.PathSignup:
			return m.updateAuth(msg)
		case route.PathHome:
			return m.updateHome(msg)
		case route.PathHistory:
			return m.updateHistory(msg)
		case route.PathMap:
			return m.updateMap(msg)
		}
	}

	return m, nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Login):
		if !m.decision.ShowLoginCTA {
			return m, nil
		}
		// Hide the decoration immediately, navigate after the fade delay.
		m.ctaPressed = true
		return m, m.delayedNavCmd(route.PathLogin)

	case key.Matches(msg, keys.Signup):
		m.navigate(route.PathSignup)
		m.resetAuthInputs()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		m.navigate(route.PathRoot)
		return m, nil

	case key.Matches(msg, keys.Tab):
		if m.focus == fieldUsername {
			m.focus = fieldPassword
			m.username.Blur()
			m.password.Focus()
		} else {
			m.focus = fieldUsername
			m.password.Blur()
			m.username.Focus()
		}
		return m, textinput.Blink

	case key.Matches(msg, keys.Enter):
		if m.focus == fieldUsername {
			m.focus = fieldPassword
			m.username.Blur()
			m.password.Focus()
			return m, textinput.Blink
		}

		username := strings.TrimSpace(m.username.Value())
		password := m.password.Value()
		if username == "" || password == "" {
			m.message = "Username and password required"
			return m, nil
		}
		if m.authBusy {
			return m, nil
		}
		m.authBusy = true
		m.message = ""
		if m.path == route.PathSignup {
			return m, m.signupCmd(username, password)
		}
		return m, m.loginCmd(username, password)
	}

	var cmd tea.Cmd
	if m.focus == fieldUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateCellEdit(msg)
	}

	if !m.gridFocus {
		return m.updateFileInput(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		m.gridFocus = false
		m.fileInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Up):
		if m.rowCursor > 0 {
			m.rowCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.rowCursor < m.table.Len()-1 {
			m.rowCursor++
		}

	case key.Matches(msg, keys.Left):
		if m.colCursor > grid.ColCountry {
			m.colCursor--
		}

	case key.Matches(msg, keys.Right):
		if m.colCursor < grid.ColDescription {
			m.colCursor++
		}

	case key.Matches(msg, keys.Add):
		m.table.AddRow()
		m.rowCursor = m.table.Len() - 1
		m.message = "Row added"

	case key.Matches(msg, keys.Delete):
		if m.table.Len() > 0 {
			if err := m.table.DeleteRow(m.rowCursor); err == nil {
				if m.rowCursor >= m.table.Len() && m.rowCursor > 0 {
					m.rowCursor--
				}
				m.message = "Row deleted"
			}
		}

	case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
		if row := m.currentRow(); row != nil {
			m.editing = true
			m.editInput.SetValue(cellValue(*row, m.colCursor))
			m.editInput.Placeholder = columnName(m.colCursor)
			m.editInput.Focus()
			m.editInput.CursorEnd()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Save):
		payload, err := m.table.BeginSave()
		if err != nil {
			switch {
			case errors.Is(err, grid.ErrSaveInFlight):
				m.message = "Save already in progress..."
			case errors.Is(err, grid.ErrInvalidDates):
				m.message = "Cannot save: fix the highlighted dates first"
			default:
				m.message = err.Error()
			}
			return m, nil
		}
		m.message = "Saving..."
		return m, m.saveCmd(payload)

	case key.Matches(msg, keys.History):
		m.navigate(route.PathHistory)
		m.historyLoading = true
		return m, m.fetchHistoryCmd()

	case key.Matches(msg, keys.MapView):
		m.navigate(route.PathMap)
		m.mapLoading = true
		return m, m.fetchMapCmd()

	case key.Matches(msg, keys.Logout):
		return m.logout()
	}

	return m, nil
}

func (m Model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.table.Len() > 0 {
			m.gridFocus = true
			m.fileInput.Blur()
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		path := strings.TrimSpace(m.fileInput.Value())
		if path == "" {
			m.message = "Please select a file first."
			return m, nil
		}
		if m.uploading {
			return m, nil
		}
		m.uploading = true
		m.message = "Uploading..."
		return m, m.uploadCmd(path)

	case key.Matches(msg, keys.Escape):
		if m.table.Len() > 0 {
			m.gridFocus = true
			m.fileInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.fileInput, cmd = m.fileInput.Update(msg)
	return m, cmd
}

func (m Model) updateCellEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.editing = false
		return m, nil

	case key.Matches(msg, keys.Enter):
		if err := m.table.SetCell(m.rowCursor, m.colCursor, m.editInput.Value()); err != nil {
			m.message = err.Error()
		} else if m.colCursor == grid.ColDate && !m.table.RowValid(m.rowCursor) {
			m.message = "Invalid date: use DD/MM/YYYY, not in the future"
		} else {
			m.message = ""
		}
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.historyCursor < m.historyView.Len()-1 {
			m.historyCursor++
		}

	case key.Matches(msg, keys.Sort):
		m.historyView.SortByDate()

	case key.Matches(msg, keys.Export):
		return m, m.exportCmd(m.historyView.Entries())

	case key.Matches(msg, keys.Home), key.Matches(msg, keys.Escape):
		m.navigate(route.PathHome)

	case key.Matches(msg, keys.MapView):
		m.navigate(route.PathMap)
		m.mapLoading = true
		return m, m.fetchMapCmd()

	case key.Matches(msg, keys.Logout):
		return m.logout()
	}

	return m, nil
}

func (m Model) updateMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Home), key.Matches(msg, keys.Escape):
		m.navigate(route.PathHome)

	case key.Matches(msg, keys.History):
		m.navigate(route.PathHistory)
		m.historyLoading = true
		return m, m.fetchHistoryCmd()

	case key.Matches(msg, keys.Logout):
		return m.logout()
	}

	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.sess.Logout(); err != nil {
		m.message = fmt.Sprintf("Logout error: %v", err)
		return m, nil
	}
	m.navigate(route.PathRoot)
	m.message = "Logged out"
	return m, nil
}

func cellValue(e model.Entry, col grid.Column) string {
	switch col {
	case grid.ColCountry:
		return e.Country
	case grid.ColAirport:
		return e.AirportName
	case grid.ColArrivalDeparture:
		return e.ArrivalDeparture
	case grid.ColDate:
		return e.Date
	default:
		return e.Description
	}
}

func columnName(col grid.Column) string {
	switch col {
	case grid.ColCountry:
		return "Country"
	case grid.ColAirport:
		return "Airport Name with Location"
	case grid.ColArrivalDeparture:
		return "Arrival / Departure"
	case grid.ColDate:
		return "Date (DD/MM/YYYY)"
	default:
		return "Description"
	}
}
