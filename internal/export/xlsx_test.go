// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testCalendar() booking.Calendar {
	// 23:30 UTC, а в Бангкоке следующий день
	return booking.MustCalendar(booking.DefaultTimezone).
		WithClock(func() time.Time { return time.Date(2024, 7, 21, 23, 30, 0, 0, time.UTC) })
}

func testBookings() []models.Booking {
	return []models.Booking{
		{
			ID: 2, TeacherName: "Ms Chan", Classroom: "P.2A TP", Period: 3,
			Date: "2024-07-21T17:00:00.000Z", LessonPlan: "Fractions",
			Equipment: models.Equipment{"Projector", "Speaker"}, Status: models.StatusAwaitingReturn,
		},
		{
			ID: 1, TeacherName: "Mr Lee", Classroom: "Hall", Period: 1,
			Date: "2024-07-20", Equipment: models.Equipment{"Microphone"}, Status: models.StatusBooked,
		},
	}
}

func readRows(t *testing.T, raw []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "bookings-report-2024-07-22.xlsx", FileName("2024-07-22"))
}

func TestXLSXExporter_Write(t *testing.T) {
	e := NewXLSXExporter(config.ClientExport{}, testCalendar(), logger.Nop())

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, testBookings()))

	rows := readRows(t, buf.Bytes())
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, []string{"2024-07-22", "P.2A TP", "3", "Ms Chan", "Fractions", "Projector, Speaker", "Awaiting return"}, rows[1])
	assert.Equal(t, []string{"2024-07-20", "Hall", "1", "Mr Lee", "", "Microphone", "Booked"}, rows[2])
}

func TestXLSXExporter_Write_HeaderStyle(t *testing.T) {
	e := NewXLSXExporter(config.ClientExport{}, testCalendar(), logger.Nop())

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, "pattern", style.Fill.Type)

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestXLSXExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	e := NewXLSXExporter(config.ClientExport{Dir: dir}, testCalendar(), logger.Nop())

	path, err := e.Export(testBookings())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bookings-report-2024-07-22.xlsx"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, readRows(t, raw), 3)
}

func TestXLSXExporter_Export_DirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	e := NewXLSXExporter(config.ClientExport{Dir: file}, testCalendar(), logger.Nop())
	_, err := e.Export(testBookings())

	assert.ErrorIs(t, err, ErrWritingWorkbook)
}
