// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-av-booking/models"
)

// ConflictKind tells which resource is double-booked.
type ConflictKind string

const (
	// ClassroomConflict means the classroom is taken for that day and period.
	ClassroomConflict ConflictKind = "classroom"

	// EquipmentConflict means at least one equipment item is taken for that
	// day and period.
	EquipmentConflict ConflictKind = "equipment"
)

var (
	// ErrClassroomConflict matches a [*ConflictError] of kind ClassroomConflict.
	ErrClassroomConflict = errors.New("classroom is already booked for this period")

	// ErrEquipmentConflict matches a [*ConflictError] of kind EquipmentConflict.
	ErrEquipmentConflict = errors.New("equipment is already booked for this period")
)

// ConflictError describes why a proposal was rejected.
type ConflictError struct {
	Kind ConflictKind

	// With is the existing booking that holds the resource. For equipment
	// conflicts it is the first booking holding one of Items.
	With models.Booking

	// Items lists the proposed equipment items already taken. Empty for
	// classroom conflicts.
	Items []string
}

func (e *ConflictError) Error() string {
	if e.Kind == ClassroomConflict {
		return fmt.Sprintf("%s: %s, period %d (booking %d)", ErrClassroomConflict, e.With.Classroom, e.With.Period, e.With.ID)
	}
	return fmt.Sprintf("%s: %s", ErrEquipmentConflict, strings.Join(e.Items, ", "))
}

// Is lets errors.Is match the kind sentinels.
func (e *ConflictError) Is(target error) bool {
	switch target {
	case ErrClassroomConflict:
		return e.Kind == ClassroomConflict
	case ErrEquipmentConflict:
		return e.Kind == EquipmentConflict
	}
	return false
}

// Proposal is the part of a new booking that can collide with existing ones.
type Proposal struct {
	Classroom string
	Date      string
	Period    int
	Equipment []string
}

// ProposalFromDraft extracts the conflict-relevant fields of a draft.
func ProposalFromDraft(d models.BookingDraft) Proposal {
	return Proposal{
		Classroom: d.Classroom,
		Date:      d.Date,
		Period:    d.Period,
		Equipment: d.Equipment,
	}
}

// Check reports whether p collides with any active booking on the same
// school day and period. A shared classroom is reported before shared
// equipment. Classroom and equipment names are compared exactly after
// trimming; case matters.
//
// It returns nil when the proposal can be accepted and a *ConflictError
// otherwise.
func Check(cal Calendar, p Proposal, bookings []models.Booking) error {
	matching := sameSlot(cal, p, bookings)
	if len(matching) == 0 {
		return nil
	}

	classroom := strings.TrimSpace(p.Classroom)
	for _, b := range matching {
		if strings.TrimSpace(b.Classroom) == classroom {
			return &ConflictError{Kind: ClassroomConflict, With: b.Clone()}
		}
	}

	taken := make(map[string]models.Booking)
	for _, b := range matching {
		for _, item := range b.Equipment {
			item = strings.TrimSpace(item)
			if _, seen := taken[item]; !seen {
				taken[item] = b
			}
		}
	}

	var (
		items []string
		with  models.Booking
	)
	for _, item := range p.Equipment {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if holder, ok := taken[item]; ok {
			if len(items) == 0 {
				with = holder
			}
			items = append(items, item)
		}
	}
	if len(items) > 0 {
		return &ConflictError{Kind: EquipmentConflict, With: with.Clone(), Items: items}
	}

	return nil
}

// sameSlot returns the active bookings on the proposal's day and period.
func sameSlot(cal Calendar, p Proposal, bookings []models.Booking) []models.Booking {
	day, ok := cal.Day(p.Date)
	if !ok {
		return nil
	}

	var out []models.Booking
	for _, b := range bookings {
		if !b.Status.Active() || b.Period != p.Period {
			continue
		}
		if d, ok := cal.Day(b.Date); ok && d == day {
			out = append(out, b)
		}
	}
	return out
}
