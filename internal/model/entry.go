package model

import (
	"strconv"
	"strings"
)

// Arrival/departure values produced by the extraction service. The field is
// free text on the wire; these are the two values the UI offers.
const (
	Arrival   = "Arrival"
	Departure = "Departure"
)

// Entry is one travel-history record: a single border stamp extracted from a
// passport page, or a row the user typed in by hand. JSON tags follow the
// backend contract exactly.
type Entry struct {
	SequenceNumber   string   `json:"Sl_no"`
	Country          string   `json:"Country"`
	AirportName      string   `json:"Airport_Name_with_location"`
	ArrivalDeparture string   `json:"Arrival_Departure"`
	Date             string   `json:"Date"`
	Description      string   `json:"Description"`
	IsManualEntry    bool     `json:"isManualEntry"`
	Confidence       *float64 `json:"confidence,omitempty"`
	ID               string   `json:"_id,omitempty"`
}

// Coordinates is a geocoded airport location attached to map history rows.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapEntry is a history record with the geocoded location the map screen
// plots.
type MapEntry struct {
	Entry
	Coordinates Coordinates `json:"coordinates"`
}

// Located reports whether the entry carries usable coordinates. The geocoder
// emits 0,0 when it could not resolve the airport name.
func (m MapEntry) Located() bool {
	return m.Coordinates.Lat != 0 || m.Coordinates.Lng != 0
}

// NewManualEntry returns a blank user-added row. position is the 1-based slot
// the row will occupy in the grid.
func NewManualEntry(position int) Entry {
	return Entry{
		SequenceNumber: strconv.Itoa(position),
		IsManualEntry:  true,
	}
}

// FromOCR normalizes rows as they arrive from the extraction service:
// sequence numbers are reassigned densely in arrival order. Everything else
// is kept as sent, including absent confidence values.
func FromOCR(rows []Entry) []Entry {
	out := make([]Entry, len(rows))
	copy(out, rows)
	Renumber(out)
	return out
}

// Renumber reassigns SequenceNumber as a dense 1..N numbering in slice order.
// Called after every add, delete or sort.
func Renumber(rows []Entry) {
	for i := range rows {
		rows[i].SequenceNumber = strconv.Itoa(i + 1)
	}
}

// Normalized returns the row in the form the persistence endpoint expects:
// string fields trimmed, date in canonical YYYY-MM-DD form, and the sequence
// number recomputed from the row's current 1-based position rather than
// whatever it was at ingest time.
func (e Entry) Normalized(position int) Entry {
	return Entry{
		SequenceNumber:   strconv.Itoa(position),
		Country:          strings.TrimSpace(e.Country),
		AirportName:      strings.TrimSpace(e.AirportName),
		ArrivalDeparture: strings.TrimSpace(e.ArrivalDeparture),
		Date:             CanonicalDate(e.Date),
		Description:      strings.TrimSpace(e.Description),
		IsManualEntry:    e.IsManualEntry,
		Confidence:       e.Confidence,
		ID:               e.ID,
	}
}
