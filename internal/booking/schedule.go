// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"strings"

	"github.com/MKhiriev/go-av-booking/models"
)

// Slot addresses one cell of the schedule grid. Classroom is trimmed, the
// same way Check compares classrooms.
type Slot struct {
	Classroom string
	Period    int
}

// Grid is the occupancy of every classroom and period on one school day.
// A slot missing from the grid is available.
type Grid struct {
	Date  string
	slots map[Slot]models.Booking
}

// Project builds the grid for date from the given bookings. Only active
// bookings occupy slots. When two active bookings claim the same slot the
// first one in input order wins; the booking store keeps its cache newest
// first.
func Project(cal Calendar, bookings []models.Booking, date string) Grid {
	day, ok := cal.Day(date)
	grid := Grid{Date: day, slots: make(map[Slot]models.Booking)}
	if !ok {
		grid.Date = date
		return grid
	}

	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		if d, ok := cal.Day(b.Date); !ok || d != day {
			continue
		}
		slot := slotOf(b.Classroom, b.Period)
		if _, taken := grid.slots[slot]; taken {
			continue
		}
		grid.slots[slot] = b.Clone()
	}

	return grid
}

func slotOf(classroom string, period int) Slot {
	return Slot{Classroom: strings.TrimSpace(classroom), Period: period}
}

// At returns the booking occupying a slot.
func (g Grid) At(classroom string, period int) (models.Booking, bool) {
	b, ok := g.slots[slotOf(classroom, period)]
	return b, ok
}

// Available reports whether nobody holds the slot.
func (g Grid) Available(classroom string, period int) bool {
	_, taken := g.slots[slotOf(classroom, period)]
	return !taken
}

// Len returns the number of occupied slots.
func (g Grid) Len() int {
	return len(g.slots)
}

// Slots returns a copy of the occupied slots.
func (g Grid) Slots() map[Slot]models.Booking {
	out := make(map[Slot]models.Booking, len(g.slots))
	for k, v := range g.slots {
		out[k] = v.Clone()
	}
	return out
}
