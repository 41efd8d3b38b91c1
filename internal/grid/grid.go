// Package grid is the editable table sitting between the extraction service
// and persistence: it merges freshly extracted rows with user edits, keeps
// sequence numbers dense, and gates saving on every date being valid.
package grid

import (
	"errors"
	"fmt"
	"time"

	"github.com/stamptrail/stampbook/internal/model"
)

var (
	// ErrNoFile is reported when an upload is requested with no file chosen.
	ErrNoFile = errors.New("no file selected")
	// ErrInvalidDates blocks saving while any row has a bad date.
	ErrInvalidDates = errors.New("one or more rows have an invalid date")
	// ErrSaveInFlight rejects a save issued while another is still pending.
	ErrSaveInFlight = errors.New("a save is already in progress")
	// ErrNoSuchRow is returned for out-of-range row operations.
	ErrNoSuchRow = errors.New("no such row")
)

// Column identifies an editable grid column.
type Column int

const (
	ColCountry Column = iota
	ColAirport
	ColArrivalDeparture
	ColDate
	ColDescription
)

// Grid holds the current editable rows plus per-row date validity. All
// methods are meant for the single UI goroutine; the only cross-cutting
// state is the in-flight save flag.
type Grid struct {
	rows     []model.Entry
	rowValid []bool
	saving   bool

	// now is injectable so date validation is deterministic in tests.
	now func() time.Time
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{now: time.Now}
}

// SetClock overrides the time source used for date validation.
func (g *Grid) SetClock(now func() time.Time) {
	g.now = now
}

// Len returns the current row count.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Rows returns a copy of the current rows in order.
func (g *Grid) Rows() []model.Entry {
	out := make([]model.Entry, len(g.rows))
	copy(out, g.rows)
	return out
}

// Row returns the row at index i.
func (g *Grid) Row(i int) (model.Entry, error) {
	if i < 0 || i >= len(g.rows) {
		return model.Entry{}, ErrNoSuchRow
	}
	return g.rows[i], nil
}

// LoadOCR replaces the whole table with freshly extracted rows, renumbers
// them and revalidates every date. Previous contents are discarded only
// here: a failed upload never reaches this point, so the old table survives
// the failure for retry.
func (g *Grid) LoadOCR(rows []model.Entry) {
	g.rows = model.FromOCR(rows)
	g.revalidateAll()
}

// AddRow appends a blank manual row and renumbers.
func (g *Grid) AddRow() {
	g.rows = append(g.rows, model.NewManualEntry(len(g.rows)+1))
	model.Renumber(g.rows)
	g.revalidateAll()
}

// DeleteRow removes the row at i and renumbers the remainder. Purely local;
// nothing is confirmed with the server until the next save.
func (g *Grid) DeleteRow(i int) error {
	if i < 0 || i >= len(g.rows) {
		return ErrNoSuchRow
	}
	g.rows = append(g.rows[:i], g.rows[i+1:]...)
	model.Renumber(g.rows)
	g.revalidateAll()
	return nil
}

// SetCell updates one cell. Editing a row marks it as a manual entry, the
// value no longer comes straight from the extraction service. Date edits
// revalidate the row and the table-wide flag immediately.
func (g *Grid) SetCell(i int, col Column, value string) error {
	if i < 0 || i >= len(g.rows) {
		return ErrNoSuchRow
	}

	row := &g.rows[i]
	switch col {
	case ColCountry:
		row.Country = value
	case ColAirport:
		row.AirportName = value
	case ColArrivalDeparture:
		row.ArrivalDeparture = value
	case ColDate:
		row.Date = value
	case ColDescription:
		row.Description = value
	default:
		return fmt.Errorf("unknown column %d", col)
	}
	row.IsManualEntry = true

	if col == ColDate {
		g.rowValid[i] = model.ValidDate(row.Date, g.now())
	}
	return nil
}

// RowValid reports whether row i currently passes date validation.
func (g *Grid) RowValid(i int) bool {
	if i < 0 || i >= len(g.rowValid) {
		return false
	}
	return g.rowValid[i]
}

// Valid is the table-wide save gate: the AND over all rows' validity,
// recomputed from current state so a fixed row never leaves a stale flag.
func (g *Grid) Valid() bool {
	for i := range g.rows {
		if !g.rowValid[i] {
			return false
		}
	}
	return true
}

// Payload returns the rows in persistence form: trimmed, canonical dates,
// sequence numbers recomputed from current positions. It refuses to
// serialize an invalid table.
func (g *Grid) Payload() ([]model.Entry, error) {
	if !g.Valid() {
		return nil, ErrInvalidDates
	}
	out := make([]model.Entry, len(g.rows))
	for i, row := range g.rows {
		out[i] = row.Normalized(i + 1)
	}
	return out, nil
}

// BeginSave validates the table and claims the single save slot. At most one
// save may be in flight; a second request is rejected rather than
// interleaved. The caller must call EndSave once the request settles, and
// leave the grid untouched on failure so the user can retry.
func (g *Grid) BeginSave() ([]model.Entry, error) {
	if g.saving {
		return nil, ErrSaveInFlight
	}
	payload, err := g.Payload()
	if err != nil {
		return nil, err
	}
	g.saving = true
	return payload, nil
}

// EndSave releases the save slot.
func (g *Grid) EndSave() {
	g.saving = false
}

// Saving reports whether a save is currently in flight.
func (g *Grid) Saving() bool {
	return g.saving
}

func (g *Grid) revalidateAll() {
	now := g.now()
	g.rowValid = make([]bool, len(g.rows))
	for i, row := range g.rows {
		g.rowValid[i] = model.ValidDate(row.Date, now)
	}
}
