// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-av-booking/models"
)

// Remote operation names.
const (
	ActionLogin               = "login"
	ActionGetUsers            = "getUsers"
	ActionAddUser             = "addUser"
	ActionUpdateUser          = "updateUser"
	ActionDeleteUser          = "deleteUser"
	ActionGetBookings         = "getBookings"
	ActionCreateBooking       = "createBooking"
	ActionUpdateBookingStatus = "updateBookingStatus"
	ActionDeleteBooking       = "deleteBooking"
)

type serverAdapter struct {
	gateway Gateway
}

// NewServerAdapter builds the typed operations on top of gateway.
func NewServerAdapter(gateway Gateway) ServerAdapter {
	return &serverAdapter{gateway: gateway}
}

func (s *serverAdapter) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user *models.User
	if err := s.gateway.Call(ctx, ActionLogin, creds, &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	clean := user.WithoutSecret()
	return &clean, nil
}

func (s *serverAdapter) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.gateway.Call(ctx, ActionGetUsers, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *serverAdapter) AddUser(ctx context.Context, user models.NewUser) (models.User, error) {
	var created models.User
	if err := s.gateway.Call(ctx, ActionAddUser, user, &created); err != nil {
		return models.User{}, err
	}
	return created.WithoutSecret(), nil
}

func (s *serverAdapter) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var updated models.User
	if err := s.gateway.Call(ctx, ActionUpdateUser, update, &updated); err != nil {
		return models.User{}, err
	}
	return updated.WithoutSecret(), nil
}

func (s *serverAdapter) DeleteUser(ctx context.Context, id int64) error {
	return s.gateway.Call(ctx, ActionDeleteUser, models.IDRequest{ID: id}, nil)
}

func (s *serverAdapter) GetBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.gateway.Call(ctx, ActionGetBookings, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *serverAdapter) CreateBooking(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	var created models.Booking
	if err := s.gateway.Call(ctx, ActionCreateBooking, draft, &created); err != nil {
		return models.Booking{}, err
	}
	return created, nil
}

func (s *serverAdapter) UpdateBookingStatus(ctx context.Context, id int64, status models.Status) (models.Booking, error) {
	var updated models.Booking
	if err := s.gateway.Call(ctx, ActionUpdateBookingStatus, models.StatusUpdate{ID: id, Status: status}, &updated); err != nil {
		return models.Booking{}, err
	}
	return updated, nil
}

func (s *serverAdapter) DeleteBooking(ctx context.Context, id int64) error {
	return s.gateway.Call(ctx, ActionDeleteBooking, models.IDRequest{ID: id}, nil)
}
