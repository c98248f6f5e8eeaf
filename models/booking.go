// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Program is one of the fixed instructional tracks. Every program owns its
// own classroom list.
type Program string

const (
	ProgramTP      Program = "TP"
	ProgramEP      Program = "EP"
	ProgramSpecial Program = "SR"
)

// Booking is a reservation of a classroom period and a set of equipment.
//
// Bookings are never field-edited after creation; only Status changes.
type Booking struct {
	// ID is assigned by the backend. While a creation is pending the local
	// cache holds the record under a negative placeholder ID.
	ID int64 `json:"id"`

	// TeacherName is free text matched against User.Name, not a foreign key.
	TeacherName string `json:"teacherName"`

	Program   Program `json:"program"`
	Classroom string  `json:"classroom"`

	// Period is the daily time slot, 1 to 6.
	Period int `json:"period"`

	// Date is the usage day. Normally "2006-01-02", but the backend may hand
	// back a full timestamp; use a booking.Calendar to get the school day.
	Date string `json:"date"`

	UnitNumber string `json:"unitNumber"`
	UnitName   string `json:"unitName"`
	LessonPlan string `json:"lessonPlan"`

	Equipment Equipment `json:"equipment"`

	Kind   Kind   `json:"type"`
	Status Status `json:"status"`

	// CreatedAt is zero when the backend cell is empty or unreadable.
	CreatedAt time.Time `json:"createdAt"`
}

// UnmarshalJSON implements json.Unmarshaler. A createdAt in any of
// TimestampLayouts is accepted; anything else leaves CreatedAt zero instead
// of failing the whole record.
func (b *Booking) UnmarshalJSON(data []byte) error {
	type plain Booking
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	b.CreatedAt = time.Time{}
	var raw string
	if err := json.Unmarshal(aux.CreatedAt, &raw); err != nil {
		return nil
	}
	if t, ok := ParseTimestamp(raw, time.UTC); ok {
		b.CreatedAt = t
	} else if t, err := time.Parse("2006-01-02", raw); err == nil {
		b.CreatedAt = t
	}

	return nil
}

// IsPlaceholder reports whether the record is a pending optimistic insert.
func (b Booking) IsPlaceholder() bool {
	return b.ID < 0
}

// Clone returns a deep copy of b.
func (b Booking) Clone() Booking {
	b.Equipment = b.Equipment.Clone()
	return b
}

// CloneBookings deep-copies a booking list.
func CloneBookings(src []Booking) []Booking {
	if src == nil {
		return nil
	}
	out := make([]Booking, len(src))
	for i, b := range src {
		out[i] = b.Clone()
	}
	return out
}

// BookingDraft is the createBooking payload: a booking without id, status
// and creation time.
type BookingDraft struct {
	TeacherName string    `json:"teacherName"`
	Program     Program   `json:"program"`
	Classroom   string    `json:"classroom"`
	Period      int       `json:"period"`
	Date        string    `json:"date"`
	UnitNumber  string    `json:"unitNumber"`
	UnitName    string    `json:"unitName"`
	LessonPlan  string    `json:"lessonPlan"`
	Equipment   Equipment `json:"equipment"`
	Kind        Kind      `json:"type"`
}

// Booking builds the local representation of the draft with the given id,
// status and creation time.
func (d BookingDraft) Booking(id int64, status Status, createdAt time.Time) Booking {
	return Booking{
		ID:          id,
		TeacherName: d.TeacherName,
		Program:     d.Program,
		Classroom:   d.Classroom,
		Period:      d.Period,
		Date:        d.Date,
		UnitNumber:  d.UnitNumber,
		UnitName:    d.UnitName,
		LessonPlan:  d.LessonPlan,
		Equipment:   d.Equipment.Clone(),
		Kind:        d.Kind,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

// StatusUpdate is the updateBookingStatus payload.
type StatusUpdate struct {
	ID     int64  `json:"id"`
	Status Status `json:"status"`
}

// IDRequest is the payload of operations addressing a single record
// (deleteBooking, deleteUser).
type IDRequest struct {
	ID int64 `json:"id"`
}
