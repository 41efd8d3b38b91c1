// Package export writes the travel history as a spreadsheet for download.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/stamptrail/stampbook/internal/model"
	"github.com/xuri/excelize/v2"
)

// ErrNothingToExport is reported instead of producing an empty file.
var ErrNothingToExport = errors.New("no data to export")

// SheetName is the worksheet the history lands on.
const SheetName = "Passport History"

// Column headers, in the fixed export order.
var headers = []string{
	"Sl No",
	"Country",
	"Airport Name with Location",
	"Arrival / Departure",
	"Date",
	"Description",
}

// WriteXLSX writes one row per entry to w in xlsx form. An empty entry set
// writes nothing and returns ErrNothingToExport.
func WriteXLSX(w io.Writer, entries []model.Entry) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := writeRow(f, 1, row); err != nil {
		return err
	}

	for i, e := range entries {
		row := []interface{}{
			e.SequenceNumber,
			e.Country,
			e.AirportName,
			e.ArrivalDeparture,
			e.Date,
			e.Description,
		}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
