// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import "github.com/MKhiriev/go-av-booking/models"

var transitions = map[models.Status][]models.Status{
	models.StatusBooked:         {models.StatusInUse, models.StatusCancelled},
	models.StatusInUse:          {models.StatusAwaitingReturn, models.StatusCancelled},
	models.StatusAwaitingReturn: {models.StatusReturned, models.StatusCancelled},
	models.StatusReturned:       {},
	models.StatusCancelled:      {},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to models.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s.
func NextStatuses(s models.Status) []models.Status {
	return append([]models.Status(nil), transitions[s]...)
}

// OwnedBy reports whether b belongs to u. Bookings carry the teacher's
// display name rather than a user id, so a renamed user loses ownership of
// older bookings.
func OwnedBy(b models.Booking, u models.User) bool {
	return b.TeacherName != "" && b.TeacherName == u.Name
}

// CanSetStatus reports whether u may move b to status. Admins may apply any
// valid transition. Teachers may only cancel their own bookings or hand the
// equipment back (In Use -> Awaiting Return).
func CanSetStatus(u models.User, b models.Booking, status models.Status) bool {
	if u.IsAdmin() {
		return true
	}
	if !OwnedBy(b, u) {
		return false
	}
	switch status {
	case models.StatusCancelled:
		return true
	case models.StatusAwaitingReturn:
		return b.Status == models.StatusInUse
	}
	return false
}

// CanDelete reports whether u may hard-delete bookings.
func CanDelete(u models.User) bool {
	return u.IsAdmin()
}

// CanBookFor reports whether u may create a booking in teacher's name.
func CanBookFor(u models.User, teacher string) bool {
	return u.IsAdmin() || teacher == u.Name
}
