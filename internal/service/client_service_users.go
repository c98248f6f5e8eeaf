// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/validators"
	"github.com/MKhiriev/go-av-booking/models"
)

type userService struct {
	adapter   adapter.ServerAdapter
	session   CurrentUserProvider
	validator validators.Validator
	logger    *logger.Logger
}

// NewUserService returns the admin-only [UserService].
func NewUserService(serverAdapter adapter.ServerAdapter, session CurrentUserProvider, logger *logger.Logger) UserService {
	return &userService{
		adapter:   serverAdapter,
		session:   session,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (s *userService) requireAdmin() (models.User, error) {
	user, ok := s.session.CurrentUser()
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}
	if !user.IsAdmin() {
		return models.User{}, ErrForbidden
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	if _, err := s.requireAdmin(); err != nil {
		return nil, err
	}

	users, err := s.adapter.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].WithoutSecret()
	}
	return users, nil
}

func (s *userService) Add(ctx context.Context, user models.NewUser) (models.User, error) {
	if _, err := s.requireAdmin(); err != nil {
		return models.User{}, err
	}

	user.Name = strings.TrimSpace(user.Name)
	user.Username = strings.TrimSpace(user.Username)
	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	created, err := s.adapter.AddUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user added")
	return created.WithoutSecret(), nil
}

func (s *userService) Update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if _, err := s.requireAdmin(); err != nil {
		return models.User{}, err
	}

	update.Name = strings.TrimSpace(update.Name)
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	updated, err := s.adapter.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().Int64("user_id", update.ID).Msg("user updated")
	return updated.WithoutSecret(), nil
}

// Delete removes an account. Admins cannot delete their own account, which
// would leave the current session dangling.
func (s *userService) Delete(ctx context.Context, id int64) error {
	admin, err := s.requireAdmin()
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, models.UserUpdate{ID: id}, validators.FieldID); err != nil {
		return err
	}
	if id == admin.ID {
		return ErrForbidden
	}

	if err = s.adapter.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
