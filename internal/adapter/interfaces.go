// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// spreadsheet-backed booking API.
//
// The remote side exposes a single endpoint. Every operation is a POST whose
// body is the JSON text {"action": ..., "payload": ...}, and every answer is
// an envelope {"status": "success", "data": ...} or
// {"status": <other>, "message": ...}. [Gateway] implements that protocol
// once; [ServerAdapter] layers the typed operations on top of it.
//
// Failures are reported as *[TransportError] (network, non-2xx, undecodable
// answer) or *[RemoteError] (non-success envelope). Both match the sentinels
// [ErrTransport] and [ErrRemote] with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-av-booking/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// Gateway performs a single remote operation.
type Gateway interface {
	// Call sends action with payload and decodes the envelope data into
	// result. A nil result, or a null data field, leaves result untouched.
	// The call is never retried and is cancelled together with ctx.
	Call(ctx context.Context, action string, payload, result any) error
}

// ServerAdapter defines the typed remote operations used by the service
// layer.
type ServerAdapter interface {
	// Login checks credentials. A nil user without error means the
	// credentials were rejected.
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)

	// GetUsers returns the user directory.
	GetUsers(ctx context.Context) ([]models.User, error)

	// AddUser creates an account and returns the stored record.
	AddUser(ctx context.Context, user models.NewUser) (models.User, error)

	// UpdateUser changes the name and role of an account.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id int64) error

	// GetBookings returns every booking known to the backend.
	GetBookings(ctx context.Context) ([]models.Booking, error)

	// CreateBooking stores a draft and returns the record with its
	// server-assigned id, status and creation time.
	CreateBooking(ctx context.Context, draft models.BookingDraft) (models.Booking, error)

	// UpdateBookingStatus moves a booking to status.
	UpdateBookingStatus(ctx context.Context, id int64, status models.Status) (models.Booking, error)

	// DeleteBooking permanently removes a booking.
	DeleteBooking(ctx context.Context, id int64) error
}
