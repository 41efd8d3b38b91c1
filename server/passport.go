package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/stamptrail/stampbook/internal/model"
)

// handleUpload accepts a passport page and returns the extracted rows.
// The OCR pipeline lives in a separate service; this reference backend
// validates the multipart contract and answers with a canned extraction.
func (s *Server) handleUpload(c echo.Context) error {
	file, err := c.FormFile("passportPage")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "no passport page uploaded"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "unreadable upload"})
	}
	src.Close()

	c.Logger().Infof("Passport page received: %s (%d bytes)", file.Filename, file.Size)

	return c.JSON(http.StatusOK, sampleExtraction())
}

// sampleExtraction is the stand-in OCR result.
func sampleExtraction() []model.Entry {
	conf := func(v float64) *float64 { return &v }
	rows := []model.Entry{
		{
			Country:          "Germany",
			AirportName:      "Frankfurt Airport, Frankfurt",
			ArrivalDeparture: model.Arrival,
			Date:             "12/03/2023",
			Description:      "Entry stamp",
			Confidence:       conf(0.94),
		},
		{
			Country:          "Germany",
			AirportName:      "Frankfurt Airport, Frankfurt",
			ArrivalDeparture: model.Departure,
			Date:             "27/03/2023",
			Description:      "Exit stamp",
			Confidence:       conf(0.91),
		},
		{
			Country:          "Singapore",
			AirportName:      "Changi Airport, Singapore",
			ArrivalDeparture: model.Arrival,
			Date:             "28/03/2023",
			Description:      "Entry stamp",
			Confidence:       conf(0.88),
		},
	}
	model.Renumber(rows)
	return rows
}

// handleSaveData replaces the caller's stored rows with the submitted grid.
// All-or-nothing: the delete and the inserts share one transaction.
func (s *Server) handleSaveData(c echo.Context) error {
	userID := c.Get("user_id").(string)

	var rows []model.Entry
	if err := c.Bind(&rows); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	tx, err := s.db.Begin()
	if err != nil {
		c.Logger().Error("tx error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM passport_entries WHERE user_id = $1`, userID); err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	for i, row := range rows {
		_, err := tx.Exec(`
			INSERT INTO passport_entries (user_id, position, country, airport_name, arrival_departure, entry_date, description, is_manual, confidence)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			userID, i+1, row.Country, row.AirportName, row.ArrivalDeparture,
			row.Date, row.Description, row.IsManualEntry, row.Confidence,
		)
		if err != nil {
			c.Logger().Error("db error:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
		}
	}

	if err := tx.Commit(); err != nil {
		c.Logger().Error("commit error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "data saved"})
}

// handleHistory returns the caller's stored rows in saved order.
func (s *Server) handleHistory(c echo.Context) error {
	entries, err := s.loadEntries(c.Get("user_id").(string))
	if err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	rows := make([]model.Entry, len(entries))
	for i, e := range entries {
		rows[i] = e.Entry
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": rows})
}

// handleHistoryMap returns the rows with their stored coordinates for the
// map screen. Geocoding happens at save time in the full pipeline; rows the
// geocoder never resolved keep 0,0 and are dropped client-side.
func (s *Server) handleHistoryMap(c echo.Context) error {
	entries, err := s.loadEntries(c.Get("user_id").(string))
	if err != nil {
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": entries})
}

func (s *Server) loadEntries(userID string) ([]model.MapEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, position, country, airport_name, arrival_departure, entry_date, description, is_manual, confidence, lat, lng
		FROM passport_entries WHERE user_id = $1 ORDER BY position`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.MapEntry{}
	for rows.Next() {
		var e model.MapEntry
		var position int
		err := rows.Scan(&e.ID, &position, &e.Country, &e.AirportName,
			&e.ArrivalDeparture, &e.Date, &e.Description, &e.IsManualEntry,
			&e.Confidence, &e.Coordinates.Lat, &e.Coordinates.Lng)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].SequenceNumber = strconv.Itoa(i + 1)
	}
	return entries, nil
}
