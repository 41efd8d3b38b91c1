// Package history prepares persisted travel records for display: duplicate
// calendar dates are dropped with a notice, and the remainder is kept in a
// stably sorted, densely renumbered view.
package history

import (
	"sort"

	"github.com/stamptrail/stampbook/internal/model"
)

// Direction is the current sort direction of a view.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Dedupe removes records whose dates resolve to the same calendar day.
// Policy is first-wins over encounter order: the earlier record is kept and
// each later duplicate is returned in skipped so the user can be told which
// dates were dropped. Records whose dates do not parse never collide and are
// always kept.
func Dedupe(entries []model.Entry) (kept []model.Entry, skipped []string) {
	seen := make(map[string]bool)
	for _, e := range entries {
		t, err := model.ParseDate(e.Date)
		if err != nil {
			kept = append(kept, e)
			continue
		}
		day := t.Format("2006-01-02")
		if seen[day] {
			skipped = append(skipped, e.Date)
			continue
		}
		seen[day] = true
		kept = append(kept, e)
	}
	return kept, skipped
}

// View is the sortable history table. direction is the order the next
// explicit sort request will apply, starting ascending.
type View struct {
	entries   []model.Entry
	direction Direction
}

// Load resets the view from freshly fetched records: duplicates dropped,
// sorted ascending, renumbered. The skipped dates are returned for
// notification. Loading does not consume the first explicit sort request,
// which still sorts ascending.
func (v *View) Load(entries []model.Entry) (skipped []string) {
	kept, skipped := Dedupe(entries)
	v.entries = kept
	v.direction = Ascending
	v.sortBy(Ascending)
	model.Renumber(v.entries)
	return skipped
}

// SortByDate applies the pending direction, then flips it for the next
// request.
func (v *View) SortByDate() {
	v.Sort(v.direction)
}

// Sort orders the view in dir and arms the toggle so the next SortByDate
// request uses the opposite order. The sort is stable, so records sharing a
// date keep their relative order, and sequence numbers are reassigned
// afterwards.
func (v *View) Sort(dir Direction) {
	v.sortBy(dir)
	model.Renumber(v.entries)
	if dir == Ascending {
		v.direction = Descending
	} else {
		v.direction = Ascending
	}
}

// Entries returns a copy of the current rows in view order.
func (v *View) Entries() []model.Entry {
	out := make([]model.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Direction returns the direction the next sort request will use.
func (v *View) Direction() Direction {
	return v.direction
}

// Len returns the number of rows in the view.
func (v *View) Len() int {
	return len(v.entries)
}

func (v *View) sortBy(dir Direction) {
	sort.SliceStable(v.entries, func(i, j int) bool {
		ti, erri := model.ParseDate(v.entries[i].Date)
		tj, errj := model.ParseDate(v.entries[j].Date)
		// Unparseable dates sink to the end regardless of direction.
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		if dir == Ascending {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})
}
