// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"strings"

	"github.com/MKhiriev/go-av-booking/models"
)

// FilterReport returns the bookings matching every set criterion of f, in
// input order. A From or To that is set but is not a date matches nothing.
func FilterReport(cal Calendar, bookings []models.Booking, f models.ReportFilter) []models.Booking {
	from, hasFrom := cal.Day(f.From)
	to, hasTo := cal.Day(f.To)
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Booking, 0, len(bookings))
	if (strings.TrimSpace(f.From) != "" && !hasFrom) || (strings.TrimSpace(f.To) != "" && !hasTo) {
		return out
	}
	for _, b := range bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}

		if hasFrom || hasTo {
			day, ok := cal.Day(b.Date)
			if !ok {
				continue
			}
			// days are zero padded, so string order is date order
			if hasFrom && day < from {
				continue
			}
			if hasTo && day > to {
				continue
			}
		}

		if query != "" && !matchesQuery(b, query) {
			continue
		}

		out = append(out, b.Clone())
	}

	return out
}

func matchesQuery(b models.Booking, query string) bool {
	fields := []string{b.TeacherName, b.Classroom, b.LessonPlan}
	fields = append(fields, b.Equipment...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
