// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the only sheet of the report workbook.
const SheetName = "Bookings"

// Columns is the header row of the report.
var Columns = []string{"Date", "Classroom", "Period", "Teacher", "Lesson Plan", "Equipment", "Status"}

var columnWidths = []float64{12, 16, 8, 20, 32, 36, 16}

// FileName returns the report file name for a school day.
func FileName(day string) string {
	return fmt.Sprintf("bookings-report-%s.xlsx", day)
}

// XLSXExporter renders bookings as a one-sheet workbook.
type XLSXExporter struct {
	dir    string
	cal    booking.Calendar
	logger *logger.Logger
}

func NewXLSXExporter(cfg config.ClientExport, cal booking.Calendar, logger *logger.Logger) *XLSXExporter {
	return &XLSXExporter{dir: cfg.Dir, cal: cal, logger: logger}
}

// Export writes bookings to FileName(today) in the export directory and
// returns the path of the file.
func (e *XLSXExporter) Export(bookings []models.Booking) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create export dir: %w", ErrWritingWorkbook, err)
	}

	path := filepath.Join(e.dir, FileName(e.cal.Today()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	if err = e.Write(f, bookings); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	e.logger.Info().Str("path", path).Int("rows", len(bookings)).Msg("report exported")
	return path, nil
}

// Write renders the workbook to w: one bold header row, then one row per
// booking in the given order.
func (e *XLSXExporter) Write(w io.Writer, bookings []models.Booking) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn().Err(err).Msg("closing workbook")
		}
	}()

	if err := e.fill(f, bookings); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingWorkbook, err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}
	return nil
}

func (e *XLSXExporter) fill(f *excelize.File, bookings []models.Booking) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err = f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := e.row(b)
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func (e *XLSXExporter) row(b models.Booking) []any {
	day, ok := e.cal.Day(b.Date)
	if !ok {
		day = b.Date
	}
	return []any{
		day,
		b.Classroom,
		b.Period,
		b.TeacherName,
		b.LessonPlan,
		b.Equipment.String(),
		b.Status.Label(),
	}
}
