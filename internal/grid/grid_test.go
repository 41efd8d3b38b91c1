package grid

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stamptrail/stampbook/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func testGrid(rows ...model.Entry) *Grid {
	g := New()
	g.SetClock(fixedClock)
	if len(rows) > 0 {
		g.LoadOCR(rows)
	}
	return g
}

func TestLoadOCRRenumbersAndValidates(t *testing.T) {
	g := testGrid(
		model.Entry{SequenceNumber: "5", Country: "Japan", Date: "01/02/2024"},
		model.Entry{SequenceNumber: "", Country: "France", Date: "bad date"},
	)

	require.Equal(t, 2, g.Len())
	rows := g.Rows()
	assert.Equal(t, "1", rows[0].SequenceNumber)
	assert.Equal(t, "2", rows[1].SequenceNumber)
	assert.True(t, g.RowValid(0))
	assert.False(t, g.RowValid(1))
	assert.False(t, g.Valid())
}

func TestAddAndDeleteKeepNumberingDense(t *testing.T) {
	g := testGrid(
		model.Entry{Country: "Japan", Date: "01/02/2024"},
		model.Entry{Country: "France", Date: "02/02/2024"},
		model.Entry{Country: "Spain", Date: "03/02/2024"},
	)

	g.AddRow()
	require.Equal(t, 4, g.Len())
	added, err := g.Row(3)
	require.NoError(t, err)
	assert.Equal(t, "4", added.SequenceNumber)
	assert.True(t, added.IsManualEntry)
	assert.True(t, g.RowValid(3), "blank date on a fresh manual row is valid")

	require.NoError(t, g.DeleteRow(1))
	rows := g.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Japan", "Spain", ""}, []string{rows[0].Country, rows[1].Country, rows[2].Country})
	for i, row := range rows {
		assert.Equal(t, strconv.Itoa(i+1), row.SequenceNumber)
	}

	assert.ErrorIs(t, g.DeleteRow(9), ErrNoSuchRow)
	assert.ErrorIs(t, g.DeleteRow(-1), ErrNoSuchRow)
}

func TestSetCellMarksManualAndRevalidates(t *testing.T) {
	g := testGrid(model.Entry{Country: "Japan", Date: "01/02/2024"})

	require.NoError(t, g.SetCell(0, ColCountry, "Italy"))
	row, err := g.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Italy", row.Country)
	assert.True(t, row.IsManualEntry, "any edit makes the row manual")
	assert.True(t, g.RowValid(0))

	// A future date invalidates the row, fixing it restores validity.
	require.NoError(t, g.SetCell(0, ColDate, "16/06/2024"))
	assert.False(t, g.RowValid(0))
	assert.False(t, g.Valid())

	require.NoError(t, g.SetCell(0, ColDate, "15/06/2024"))
	assert.True(t, g.RowValid(0))
	assert.True(t, g.Valid())

	assert.ErrorIs(t, g.SetCell(5, ColCountry, "x"), ErrNoSuchRow)
}

func TestPayloadNormalizes(t *testing.T) {
	g := testGrid(
		model.Entry{Country: " Japan ", Date: "1/2/2024", AirportName: " Narita "},
		model.Entry{Country: "France", Date: "02/02/2024"},
	)

	payload, err := g.Payload()
	require.NoError(t, err)
	require.Len(t, payload, 2)
	assert.Equal(t, "Japan", payload[0].Country)
	assert.Equal(t, "Narita", payload[0].AirportName)
	assert.Equal(t, "2024-02-01", payload[0].Date)
	assert.Equal(t, "1", payload[0].SequenceNumber)
	assert.Equal(t, "2", payload[1].SequenceNumber)
}

func TestPayloadRefusesInvalidTable(t *testing.T) {
	g := testGrid(model.Entry{Country: "Japan", Date: "99/99/9999"})

	_, err := g.Payload()
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestBeginSaveSingleFlight(t *testing.T) {
	g := testGrid(model.Entry{Country: "Japan", Date: "01/02/2024"})

	payload, err := g.BeginSave()
	require.NoError(t, err)
	require.Len(t, payload, 1)
	assert.True(t, g.Saving())

	_, err = g.BeginSave()
	assert.ErrorIs(t, err, ErrSaveInFlight)

	g.EndSave()
	assert.False(t, g.Saving())

	_, err = g.BeginSave()
	assert.NoError(t, err)
}

func TestBeginSaveBlockedByInvalidDates(t *testing.T) {
	g := testGrid(model.Entry{Country: "Japan", Date: "not a date"})

	_, err := g.BeginSave()
	assert.ErrorIs(t, err, ErrInvalidDates)
	assert.False(t, g.Saving(), "a refused save must not hold the slot")
}
