// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/service"
	"github.com/MKhiriev/go-av-booking/internal/workers"
	"github.com/MKhiriev/go-av-booking/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Execute runs the command line args and blocks until it finishes.
	Execute(ctx context.Context, args []string) error
}

// Exporter writes a booking report and returns where it went.
type Exporter interface {
	Export(bookings []models.Booking) (string, error)
}

// Deps is everything a command needs at run time.
type Deps struct {
	Session  service.SessionService
	Bookings service.BookingService
	Users    service.UserService
	Exporter Exporter

	// Workers runs the background refresh while watching.
	Workers         workers.Worker
	RefreshInterval time.Duration

	Calendar booking.Calendar
	Logger   *logger.Logger

	// Close releases local storage. May be nil.
	Close func() error
}

// Bootstrap builds the dependencies from the parsed flag layer.
type Bootstrap func(ctx context.Context, flags *config.StructuredConfig) (*Deps, error)
