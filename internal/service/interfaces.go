// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's stateful components: the session
// store, the booking store with its optimistic mutations, the admin user
// directory and the background refresh job.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService owns the signed-in identity. It is the only writer of the
// persisted identity.
type SessionService interface {
	// Restore loads the identity persisted by a previous run. A corrupt
	// value is discarded and logged.
	Restore(ctx context.Context)

	// Login authenticates against the remote API. On success the user
	// (without secret) is persisted and becomes current. Any failure clears
	// the persisted identity and yields false; it never returns an error.
	Login(ctx context.Context, username, password string) bool

	// Logout forgets the current user locally. No remote call is made.
	Logout(ctx context.Context)

	// CurrentUser returns the signed-in user.
	CurrentUser() (models.User, bool)
}

// BookingService owns the booking cache. Readers only ever receive copies.
type BookingService interface {
	// Refresh replaces the cache with the remote collection, newest first.
	// On failure the cache is left untouched; a silent refresh logs the
	// error and returns nil.
	Refresh(ctx context.Context, silent bool) error

	// Bookings returns a copy of the cache.
	Bookings() []models.Booking
	// Active returns the bookings whose status is still active.
	Active() []models.Booking
	// Get returns a copy of the booking with id.
	Get(id int64) (models.Booking, bool)
	// Loaded reports whether at least one refresh has succeeded.
	Loaded() bool
	// LastRefresh returns the time of the last successful refresh.
	LastRefresh() time.Time

	// Create validates, authorizes and conflict-checks draft, then inserts
	// it optimistically and sends it. On failure the cache is restored.
	Create(ctx context.Context, draft models.BookingDraft) (models.Booking, error)
	// SetStatus moves a booking to status optimistically.
	SetStatus(ctx context.Context, id int64, status models.Status) (models.Booking, error)
	// Cancel is SetStatus with [models.StatusCancelled].
	Cancel(ctx context.Context, id int64) (models.Booking, error)
	// Delete removes a booking permanently. Admin only.
	Delete(ctx context.Context, id int64) error

	// Check runs the conflict checker for draft against the cache.
	Check(draft models.BookingDraft) error
	// Schedule projects the active bookings of date onto the slot grid.
	Schedule(date string) booking.Grid
	// Report filters the cache for the report view and export.
	Report(filter models.ReportFilter) []models.Booking
}

// UserService manages portal accounts. Every operation requires an admin
// session.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Add(ctx context.Context, user models.NewUser) (models.User, error)
	Update(ctx context.Context, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// RefreshJob periodically refreshes the booking cache in the background.
type RefreshJob interface {
	// Start launches the refresh goroutine. Any previously running job is
	// stopped first. A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}

// CurrentUserProvider exposes the signed-in user to components that
// authorize operations.
type CurrentUserProvider interface {
	CurrentUser() (models.User, bool)
}
