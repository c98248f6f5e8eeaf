// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/store"
	"github.com/MKhiriev/go-av-booking/internal/validators"
	"github.com/MKhiriev/go-av-booking/models"
)

// CurrentUserKey is the local state key the signed-in identity is
// persisted under.
const CurrentUserKey = "currentUser"

type sessionService struct {
	state     store.LocalStateRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.RWMutex
	current *models.User
}

// NewSessionService returns a [SessionService] persisting into state. Call
// Restore once at startup.
func NewSessionService(state store.LocalStateRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionService {
	return &sessionService{
		state:     state,
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (s *sessionService) Restore(ctx context.Context) {
	raw, err := s.state.Get(ctx, CurrentUserKey)
	if errors.Is(err, store.ErrLocalStateNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.Restore").Msg("could not read persisted session")
		return
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil || user.ID == 0 || user.Username == "" || !user.Role.Valid() {
		s.logger.Warn().Err(err).Str("func", "sessionService.Restore").Msg("discarding corrupt persisted session")
		s.clearPersisted(ctx)
		return
	}

	user = user.WithoutSecret()
	s.setCurrent(&user)
	s.logger.Debug().Str("username", user.Username).Msg("session restored")
}

func (s *sessionService) Login(ctx context.Context, username, password string) bool {
	creds := models.Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := s.validator.Validate(ctx, creds); err != nil {
		s.logger.Info().Err(err).Msg("login rejected locally")
		s.reset(ctx)
		return false
	}

	user, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", creds.Username).Msg("login failed")
		s.reset(ctx)
		return false
	}
	if user == nil {
		s.logger.Info().Str("username", creds.Username).Msg("login refused: bad credentials")
		s.reset(ctx)
		return false
	}

	signedIn := user.WithoutSecret()
	raw, err := json.Marshal(signedIn)
	if err == nil {
		err = s.state.Put(ctx, CurrentUserKey, string(raw))
	}
	if err != nil {
		// still signed in for this run
		s.logger.Warn().Err(err).Msg("could not persist session")
	}

	s.setCurrent(&signedIn)
	s.logger.Info().Str("username", signedIn.Username).Str("role", string(signedIn.Role)).Msg("signed in")
	return true
}

func (s *sessionService) Logout(ctx context.Context) {
	s.reset(ctx)
}

func (s *sessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *sessionService) reset(ctx context.Context) {
	s.clearPersisted(ctx)
	s.setCurrent(nil)
}

func (s *sessionService) clearPersisted(ctx context.Context) {
	if err := s.state.Delete(ctx, CurrentUserKey); err != nil {
		s.logger.Warn().Err(err).Msg("could not clear persisted session")
	}
}

func (s *sessionService) setCurrent(user *models.User) {
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
}
