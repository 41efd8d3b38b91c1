package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stamptrail/stampbook/internal/grid"
	"github.com/stamptrail/stampbook/internal/history"
	"github.com/stamptrail/stampbook/internal/model"
	"github.com/stamptrail/stampbook/internal/route"
)

const stampArt = `
   ________________________
  /  .--------------------. \
  | |  ✈  BORDER CONTROL | |
  | |     ADMITTED       | |
  | '--------------------' |
  \________________________/
`

// View renders the current screen
func (m Model) View() string {
	if m.decision.Loading {
		return m.center(HelpStyle.Render("Restoring session..."))
	}

	var body string
	switch m.path {
	case route.PathRoot:
		body = m.viewWelcome()
	case route.PathLogin:
		body = m.viewAuth("Login")
	case route.PathSignup:
		body = m.viewAuth("Sign Up")
	case route.PathHome:
		body = m.viewHome()
	case route.PathHistory:
		body = m.viewHistory()
	case route.PathMap:
		body = m.viewMap()
	}

	return body + "\n" + m.statusBar()
}

func (m Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Stampbook"))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Turn passport stamps into a travel history."))
	b.WriteString("\n")

	// Decoration and call-to-action disappear together the moment login is
	// triggered, before the delayed navigation completes.
	if m.decision.ShowBackground && !m.ctaPressed {
		b.WriteString(BackgroundStyle.Render(stampArt))
		b.WriteString("\n")
	}
	if m.decision.ShowLoginCTA && !m.ctaPressed {
		b.WriteString(ModalStyle.Render("Press l to log in  ·  s to sign up"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewAuth(title string) string {
	var b strings.Builder

	b.WriteString(m.username.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	if m.authBusy {
		b.WriteString(HelpStyle.Render("Authenticating..."))
	} else {
		b.WriteString(HelpStyle.Render("tab: switch · enter: submit · esc: back"))
	}

	return HeaderStyle.Render(title) + "\n" + ModalStyle.Render(b.String())
}

var gridColumns = []struct {
	col   grid.Column
	title string
	width int
}{
	{grid.ColCountry, "Country", 14},
	{grid.ColAirport, "Airport Name with Location", 28},
	{grid.ColArrivalDeparture, "Arr/Dep", 10},
	{grid.ColDate, "Date", 12},
	{grid.ColDescription, "Description", 20},
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Upload Passport Page"))
	b.WriteString("\n")
	b.WriteString(m.fileInput.View())
	b.WriteString("\n")
	if m.uploading {
		b.WriteString(HelpStyle.Render("Extracting entries..."))
		b.WriteString("\n")
	}

	if m.table.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderGrid())
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(ModalStyle.Render(
			fmt.Sprintf("Edit %s\n%s", columnName(m.colCursor), m.editInput.View())))
	}

	return b.String()
}

func (m Model) renderGrid() string {
	var b strings.Builder

	header := pad("#", 4)
	for _, c := range gridColumns {
		header += pad(c.title, c.width)
	}
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")

	for i, row := range m.table.Rows() {
		line := pad(row.SequenceNumber, 4)
		for _, c := range gridColumns {
			cell := pad(cellValue(row, c.col), c.width)
			if c.col == grid.ColDate && !m.table.RowValid(i) {
				cell = InvalidCellStyle.Render(cell)
			} else if m.gridFocus && i == m.rowCursor && c.col == m.colCursor {
				cell = RowSelectedStyle.Render(cell)
			} else if row.IsManualEntry {
				cell = ManualRowStyle.Render(cell)
			}
			line += cell
		}
		if m.gridFocus && i == m.rowCursor {
			b.WriteString(RowStyle.Bold(true).Render("> " + line))
		} else {
			b.WriteString(RowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.table.Saving() {
		b.WriteString(HelpStyle.Render("Saving..."))
		b.WriteString("\n")
	} else if !m.table.Valid() {
		b.WriteString(ErrorStyle.Render("Fix invalid dates before saving (DD/MM/YYYY, not in the future)"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Travel History"))
	b.WriteString("\n")

	if m.historyLoading {
		b.WriteString(HelpStyle.Render("Loading history..."))
		return b.String()
	}
	if m.historyView.Len() == 0 {
		b.WriteString(HelpStyle.Render("No travel history yet. Upload a passport page to get started."))
		return b.String()
	}

	// Direction shows what the next sort press will do, mirroring the
	// toggle semantics of SortByDate.
	next := "oldest first"
	if m.historyView.Direction() == history.Descending {
		next = "newest first"
	}
	b.WriteString(HelpStyle.Render(fmt.Sprintf("o: sort (%s) · x: export xlsx", next)))
	b.WriteString("\n\n")

	header := pad("#", 4) + pad("Country", 14) + pad("Airport", 28) +
		pad("Arr/Dep", 10) + pad("Date", 12) + pad("Description", 20)
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")

	for i, e := range m.historyView.Entries() {
		line := pad(e.SequenceNumber, 4) + pad(e.Country, 14) + pad(e.AirportName, 28) +
			pad(e.ArrivalDeparture, 10) + pad(model.DisplayDate(e.Date), 12) + pad(e.Description, 20)
		if i == m.historyCursor {
			b.WriteString(RowSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(RowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewMap() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Visited Airports"))
	b.WriteString("\n")

	if m.mapLoading {
		b.WriteString(HelpStyle.Render("Loading locations..."))
		return b.String()
	}
	if len(m.locations) == 0 {
		b.WriteString(HelpStyle.Render("No mappable locations in your history."))
		return b.String()
	}

	for _, loc := range m.locations {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			TitleStyle.Render("⦿"),
			pad(loc.AirportName, 36),
			HelpStyle.Render(fmt.Sprintf("%.4f, %.4f · %s %s",
				loc.Coordinates.Lat, loc.Coordinates.Lng,
				loc.ArrivalDeparture, model.DisplayDate(loc.Date)))))
	}

	return b.String()
}

func (m Model) statusBar() string {
	msg := m.message
	if msg == "" {
		msg = m.helpLine()
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	return StatusBarStyle.Width(width).Render(truncate(msg, width-2))
}

func (m Model) helpLine() string {
	switch m.path {
	case route.PathRoot:
		return "l: login · s: sign up · q: quit"
	case route.PathLogin, route.PathSignup:
		return "tab: switch field · enter: submit · esc: back"
	case route.PathHome:
		if m.editing {
			return "enter: apply · esc: cancel"
		}
		if m.gridFocus {
			return "arrows: move · e: edit · a: add · d: delete · s: save · H: history · M: map · L: logout · q: quit"
		}
		return "enter: upload · tab: grid · H: history · M: map"
	case route.PathHistory:
		return "o: sort · x: export · b: back · M: map · L: logout · q: quit"
	case route.PathMap:
		return "b: back · H: history · L: logout · q: quit"
	}
	return ""
}

func (m Model) center(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
