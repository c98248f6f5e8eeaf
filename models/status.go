// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is the lifecycle state of a booking.
//
//	Booked -> In Use -> Awaiting Return -> Returned
//
// Cancelled is reachable from every non-terminal state.
type Status string

const (
	StatusBooked         Status = "Booked"
	StatusInUse          Status = "In Use"
	StatusAwaitingReturn Status = "Awaiting Return"
	StatusReturned       Status = "Returned"
	StatusCancelled      Status = "Cancelled"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusBooked,
	StatusInUse,
	StatusAwaitingReturn,
	StatusReturned,
	StatusCancelled,
}

var statusLabels = map[Status]string{
	StatusBooked:         "Booked",
	StatusInUse:          "In use",
	StatusAwaitingReturn: "Awaiting return",
	StatusReturned:       "Returned",
	StatusCancelled:      "Cancelled",
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Active reports whether a booking in this status occupies its slot and
// equipment for conflict and schedule purposes.
func (s Status) Active() bool {
	switch s {
	case StatusBooked, StatusInUse, StatusAwaitingReturn:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusReturned || s == StatusCancelled
}

// Label returns the display label used in listings and exported reports.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Kind distinguishes an advance reservation from immediate use.
type Kind string

const (
	// KindBook is a reservation for a future period.
	KindBook Kind = "book"

	// KindBorrow hands the equipment out immediately.
	KindBorrow Kind = "borrow"
)

var kindLabels = map[Kind]string{
	KindBook:   "Reservation",
	KindBorrow: "Borrow now",
}

// Valid reports whether k is a known booking kind.
func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// Label returns the display label of the kind.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// InitialStatus returns the status a new booking of this kind starts in.
func (k Kind) InitialStatus() Status {
	if k == KindBorrow {
		return StatusInUse
	}
	return StatusBooked
}
