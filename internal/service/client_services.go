// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/store"
)

// ClientServices groups the services the CLI works with.
type ClientServices struct {
	SessionService SessionService
	BookingService BookingService
	UserService    UserService
	RefreshJob     RefreshJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cal booking.Calendar, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(storages.LocalState, serverAdapter, logger)
	bookingSvc := NewBookingStore(serverAdapter, sessionSvc, cal, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		BookingService: bookingSvc,
		UserService:    NewUserService(serverAdapter, sessionSvc, logger),
		RefreshJob:     NewRefreshJob(bookingSvc),
	}
}
