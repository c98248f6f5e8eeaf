// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a signed-in
	// user when there is none.
	ErrNotAuthenticated = errors.New("not signed in")

	// ErrForbidden is returned when the signed-in user's role or ownership
	// does not allow the operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrBookingNotFound is returned when the id is not in the local cache.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition is returned when the requested status cannot
	// follow the booking's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMutationInFlight is returned when the booking already has a pending
	// create, status change or delete.
	ErrMutationInFlight = errors.New("booking has a pending change")

	// ErrLoginRefused is what callers report when Login yields false.
	ErrLoginRefused = errors.New("login refused")
)
