package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryWireFormat(t *testing.T) {
	conf := 0.92
	e := Entry{
		SequenceNumber:   "1",
		Country:          "Japan",
		AirportName:      "Narita International Airport, Tokyo",
		ArrivalDeparture: Arrival,
		Date:             "01/02/2024",
		Description:      "Tourist visa",
		IsManualEntry:    false,
		Confidence:       &conf,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	// Field names are the backend contract; a rename here breaks the API.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"Sl_no", "Country", "Airport_Name_with_location", "Arrival_Departure", "Date", "Description", "isManualEntry", "confidence"} {
		assert.Contains(t, raw, field)
	}
	assert.NotContains(t, raw, "_id", "empty id must be omitted")
}

func TestNewManualEntry(t *testing.T) {
	e := NewManualEntry(4)
	assert.Equal(t, "4", e.SequenceNumber)
	assert.True(t, e.IsManualEntry)
	assert.Empty(t, e.Country)
	assert.Nil(t, e.Confidence)
}

func TestFromOCRRenumbers(t *testing.T) {
	rows := []Entry{
		{SequenceNumber: "7", Country: "France"},
		{SequenceNumber: "", Country: "Spain"},
		{SequenceNumber: "2", Country: "Italy"},
	}

	got := FromOCR(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].SequenceNumber)
	assert.Equal(t, "2", got[1].SequenceNumber)
	assert.Equal(t, "3", got[2].SequenceNumber)

	// Input slice is left alone.
	assert.Equal(t, "7", rows[0].SequenceNumber)
}

func TestNormalized(t *testing.T) {
	e := Entry{
		SequenceNumber:   "9",
		Country:          "  Japan ",
		AirportName:      " Narita ",
		ArrivalDeparture: " Arrival ",
		Date:             "1/2/2024",
		Description:      " holiday ",
		IsManualEntry:    true,
	}

	n := e.Normalized(3)
	assert.Equal(t, "3", n.SequenceNumber)
	assert.Equal(t, "Japan", n.Country)
	assert.Equal(t, "Narita", n.AirportName)
	assert.Equal(t, "Arrival", n.ArrivalDeparture)
	assert.Equal(t, "2024-02-01", n.Date)
	assert.Equal(t, "holiday", n.Description)
	assert.True(t, n.IsManualEntry)
}

func TestMapEntryLocated(t *testing.T) {
	assert.False(t, MapEntry{}.Located())
	assert.True(t, MapEntry{Coordinates: Coordinates{Lat: 35.76, Lng: 140.38}}.Located())
	assert.True(t, MapEntry{Coordinates: Coordinates{Lat: 0, Lng: -0.45}}.Located())
}
