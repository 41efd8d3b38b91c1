package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stamptrail/stampbook/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Zero(t, buf.Len(), "no file content on empty export")
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	entries := []model.Entry{
		{
			SequenceNumber:   "1",
			Country:          "Japan",
			AirportName:      "Narita International Airport, Tokyo",
			ArrivalDeparture: model.Arrival,
			Date:             "01/02/2024",
			Description:      "Tourist visa",
		},
		{
			SequenceNumber:   "2",
			Country:          "France",
			AirportName:      "Charles de Gaulle, Paris",
			ArrivalDeparture: model.Departure,
			Date:             "10/02/2024",
			Description:      "",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList(), "only the history sheet remains")

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two entries")

	assert.Equal(t, []string{
		"Sl No", "Country", "Airport Name with Location",
		"Arrival / Departure", "Date", "Description",
	}, rows[0])

	assert.Equal(t, []string{
		"1", "Japan", "Narita International Airport, Tokyo",
		"Arrival", "01/02/2024", "Tourist visa",
	}, rows[1])
	assert.Equal(t, "France", rows[2][1])
	assert.Equal(t, "Departure", rows[2][3])
}
