package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stamptrail/stampbook/internal/model"
)

func entry(date, country string) model.Entry {
	return model.Entry{Date: date, Country: country}
}

func dates(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Date
	}
	return out
}

func TestDedupeSameCalendarDate(t *testing.T) {
	// "01/02/2024" and "1/2/2024" are the same day in different formatting.
	kept, skipped := Dedupe([]model.Entry{
		entry("01/02/2024", "Japan"),
		entry("1/2/2024", "France"),
		entry("03/02/2024", "Spain"),
	})

	require.Len(t, kept, 2)
	assert.Equal(t, "Japan", kept[0].Country, "first occurrence wins")
	assert.Equal(t, "Spain", kept[1].Country)
	assert.Equal(t, []string{"1/2/2024"}, skipped)
}

func TestDedupeKeepsUnparseableDates(t *testing.T) {
	kept, skipped := Dedupe([]model.Entry{
		entry("???", "Japan"),
		entry("???", "France"),
		entry("", "Spain"),
	})

	assert.Len(t, kept, 3, "unparseable dates never collide")
	assert.Empty(t, skipped)
}

func TestLoadSortsAscendingAndRenumbers(t *testing.T) {
	v := &View{}
	skipped := v.Load([]model.Entry{
		entry("10/01/2024", "B"),
		entry("01/01/2024", "A"),
		entry("05/01/2024", "C"),
	})

	assert.Empty(t, skipped)
	entries := v.Entries()
	assert.Equal(t, []string{"01/01/2024", "05/01/2024", "10/01/2024"}, dates(entries))
	assert.Equal(t, "1", entries[0].SequenceNumber)
	assert.Equal(t, "3", entries[2].SequenceNumber)
}

func TestSortByDateToggles(t *testing.T) {
	v := &View{}
	v.Load([]model.Entry{
		entry("10/01/2024", "B"),
		entry("01/01/2024", "A"),
	})

	// Loading does not consume the first explicit sort: it is still ascending.
	assert.Equal(t, Ascending, v.Direction())
	v.SortByDate()
	assert.Equal(t, []string{"01/01/2024", "10/01/2024"}, dates(v.Entries()))

	v.SortByDate()
	assert.Equal(t, []string{"10/01/2024", "01/01/2024"}, dates(v.Entries()))
	entries := v.Entries()
	assert.Equal(t, "1", entries[0].SequenceNumber, "renumbered after every sort")

	v.SortByDate()
	assert.Equal(t, []string{"01/01/2024", "10/01/2024"}, dates(v.Entries()))
}

func TestSortIsStableAndSinksUnparseable(t *testing.T) {
	v := &View{}
	v.Load([]model.Entry{
		entry("garbled", "X"),
		entry("05/01/2024", "first"),
		{Date: "5/1/2024", Country: "dup, dropped"},
		entry("01/01/2024", "A"),
	})

	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "01/01/2024", entries[0].Date)
	assert.Equal(t, "05/01/2024", entries[1].Date)
	assert.Equal(t, "garbled", entries[2].Date, "unparseable dates go last")

	v.SortByDate() // ascending again
	v.SortByDate() // descending
	entries = v.Entries()
	assert.Equal(t, "05/01/2024", entries[0].Date)
	assert.Equal(t, "garbled", entries[2].Date, "unparseable stays last in either direction")
}

func TestSortDirect(t *testing.T) {
	v := &View{}
	v.Load([]model.Entry{
		entry("01/01/2024", "A"),
		entry("10/01/2024", "B"),
	})

	v.Sort(Descending)
	assert.Equal(t, []string{"10/01/2024", "01/01/2024"}, dates(v.Entries()))
	assert.Equal(t, Ascending, v.Direction(), "next toggle flips back")

	v.Sort(Ascending)
	assert.Equal(t, []string{"01/01/2024", "10/01/2024"}, dates(v.Entries()))
	assert.Equal(t, Descending, v.Direction())
}

func TestEntriesReturnsCopy(t *testing.T) {
	v := &View{}
	v.Load([]model.Entry{entry("01/01/2024", "A")})

	got := v.Entries()
	got[0].Country = "mutated"
	assert.Equal(t, "A", v.Entries()[0].Country)
}
