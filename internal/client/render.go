// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const freeSlot = "·"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func renderBookings(w io.Writer, cal booking.Calendar, list []models.Booking) {
	if len(list) == 0 {
		fmt.Fprintln(w, helpStyle.Render("No bookings."))
		return
	}

	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			displayID(b),
			displayDay(cal, b.Date),
			b.Classroom,
			strconv.Itoa(b.Period),
			b.TeacherName,
			b.Equipment.String(),
			b.Kind.Label(),
			b.Status.Label(),
		})
	}

	const statusCol = 7
	t := newTable("ID", "Date", "Classroom", "Period", "Teacher", "Equipment", "Type", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusCol {
				if s, ok := statusStyles[string(list[row].Status)]; ok {
					return s.Padding(0, 1)
				}
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.String())
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, helpStyle.Render("No users."))
		return
	}

	t := newTable("ID", "Name", "Username", "Role").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, u := range users {
		t.Row(strconv.FormatInt(u.ID, 10), u.Name, u.Username, u.Role.Label())
	}
	fmt.Fprintln(w, t.String())
}

// renderSchedule prints one row per classroom and one column per period.
// Occupied cells show the teacher, free cells a dot.
func renderSchedule(w io.Writer, day string, grid booking.Grid, classrooms []string) {
	fmt.Fprintln(w, titleStyle.Render("Schedule for "+day))

	headers := []string{"Classroom"}
	for _, p := range booking.Periods {
		headers = append(headers, "P"+strconv.Itoa(p))
	}

	free := make(map[[2]int]bool)
	t := newTable(headers...)
	for r, classroom := range classrooms {
		row := []string{classroom}
		for c, p := range booking.Periods {
			b, taken := grid.At(classroom, p)
			if !taken {
				row = append(row, freeSlot)
				free[[2]int{r, c + 1}] = true
				continue
			}
			row = append(row, b.TeacherName)
		}
		t.Row(row...)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case free[[2]int{row, col}]:
			return freeStyle
		}
		return cellStyle
	})
	fmt.Fprintln(w, t.String())
}

func displayID(b models.Booking) string {
	if b.IsPlaceholder() {
		return "pending"
	}
	return strconv.FormatInt(b.ID, 10)
}

func displayDay(cal booking.Calendar, raw string) string {
	if day, ok := cal.Day(raw); ok {
		return day
	}
	return raw
}
