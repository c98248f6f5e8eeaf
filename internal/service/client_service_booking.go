// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/validators"
	"github.com/MKhiriev/go-av-booking/models"
)

type bookingStore struct {
	adapter   adapter.ServerAdapter
	session   CurrentUserProvider
	validator validators.Validator
	cal       booking.Calendar
	now       func() time.Time
	logger    *logger.Logger

	mu          sync.RWMutex
	bookings    []models.Booking
	loaded      bool
	refreshedAt time.Time
	// generation counts cache rewrites; see optimistic
	generation uint64
	inFlight   map[int64]struct{}

	// placeholders count down from -1 so they never meet a server id
	placeholders atomic.Int64
}

// NewBookingStore returns the [BookingService] backed by serverAdapter.
// session supplies the user operations are authorized for; cal defines the
// school day.
func NewBookingStore(serverAdapter adapter.ServerAdapter, session CurrentUserProvider, cal booking.Calendar, logger *logger.Logger) BookingService {
	return &bookingStore{
		adapter:   serverAdapter,
		session:   session,
		validator: validators.NewBookingValidator(cal),
		cal:       cal,
		now:       time.Now,
		logger:    logger,
		inFlight:  make(map[int64]struct{}),
	}
}

// ── refresh ──

func (s *bookingStore) Refresh(ctx context.Context, silent bool) error {
	fetched, err := s.adapter.GetBookings(ctx)
	if err != nil {
		if silent {
			s.logger.Warn().Err(err).Msg("background refresh failed, keeping cached bookings")
			return nil
		}
		return fmt.Errorf("refresh bookings: %w", err)
	}

	for i := range fetched {
		fetched[i].Equipment = models.NormalizeEquipment(fetched[i].Equipment)
	}
	slices.SortStableFunc(fetched, func(a, b models.Booking) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	s.mu.Lock()
	s.bookings = fetched
	s.loaded = true
	s.refreshedAt = s.now()
	s.generation++
	s.mu.Unlock()

	s.logger.Debug().Int("count", len(fetched)).Bool("silent", silent).Msg("bookings refreshed")
	return nil
}

// ── read side ──

func (s *bookingStore) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CloneBookings(s.bookings)
}

func (s *bookingStore) Active() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.Status.Active() {
			out = append(out, b.Clone())
		}
	}
	return out
}

func (s *bookingStore) Get(id int64) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.bookings, id); i >= 0 {
		return s.bookings[i].Clone(), true
	}
	return models.Booking{}, false
}

func (s *bookingStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *bookingStore) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

func (s *bookingStore) Check(draft models.BookingDraft) error {
	draft = validators.NormalizeDraft(s.cal, draft)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return booking.Check(s.cal, booking.ProposalFromDraft(draft), s.bookings)
}

func (s *bookingStore) Schedule(date string) booking.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return booking.Project(s.cal, s.bookings, date)
}

func (s *bookingStore) Report(filter models.ReportFilter) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return booking.FilterReport(s.cal, s.bookings, filter)
}

// ── mutations ──

func (s *bookingStore) Create(ctx context.Context, draft models.BookingDraft) (models.Booking, error) {
	user, ok := s.session.CurrentUser()
	if !ok {
		return models.Booking{}, ErrNotAuthenticated
	}

	draft = validators.NormalizeDraft(s.cal, draft)
	if !user.IsAdmin() {
		draft.TeacherName = user.Name
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Booking{}, err
	}
	if !booking.CanBookFor(user, draft.TeacherName) {
		return models.Booking{}, ErrForbidden
	}

	placeholderID := s.placeholders.Add(-1)
	placeholder := draft.Booking(placeholderID, draft.Kind.InitialStatus(), s.now())
	var created models.Booking

	err := s.optimistic(ctx, optimisticOp{
		id: placeholderID,
		apply: func(cache []models.Booking) ([]models.Booking, error) {
			if err := booking.Check(s.cal, booking.ProposalFromDraft(draft), cache); err != nil {
				return nil, err
			}
			return append([]models.Booking{placeholder.Clone()}, cache...), nil
		},
		send: func(ctx context.Context) error {
			var err error
			created, err = s.adapter.CreateBooking(ctx, draft)
			return err
		},
		commit: func(cache []models.Booking) []models.Booking {
			created.Equipment = models.NormalizeEquipment(created.Equipment)
			if created.CreatedAt.IsZero() {
				created.CreatedAt = placeholder.CreatedAt
			}
			if i := indexOf(cache, placeholderID); i >= 0 {
				cache[i] = created.Clone()
				return cache
			}
			// a refresh already dropped the placeholder
			if indexOf(cache, created.ID) < 0 {
				return append([]models.Booking{created.Clone()}, cache...)
			}
			return cache
		},
		undo: func(cache []models.Booking) []models.Booking {
			return removeID(cache, placeholderID)
		},
	})
	if err != nil {
		s.logger.Info().Err(err).Str("classroom", draft.Classroom).Int("period", draft.Period).Msg("booking not created")
		return models.Booking{}, err
	}

	s.logger.Info().Int64("booking_id", created.ID).Str("classroom", created.Classroom).Msg("booking created")
	return created.Clone(), nil
}

func (s *bookingStore) SetStatus(ctx context.Context, id int64, status models.Status) (models.Booking, error) {
	user, ok := s.session.CurrentUser()
	if !ok {
		return models.Booking{}, ErrNotAuthenticated
	}

	var (
		previous models.Booking
		updated  models.Booking
	)
	err := s.optimistic(ctx, optimisticOp{
		id: id,
		apply: func(cache []models.Booking) ([]models.Booking, error) {
			i := indexOf(cache, id)
			if i < 0 {
				return nil, ErrBookingNotFound
			}
			previous = cache[i].Clone()
			if !booking.CanTransition(previous.Status, status) {
				return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, previous.Status, status)
			}
			if !booking.CanSetStatus(user, previous, status) {
				return nil, ErrForbidden
			}
			cache[i].Status = status
			return cache, nil
		},
		send: func(ctx context.Context) error {
			var err error
			updated, err = s.adapter.UpdateBookingStatus(ctx, id, status)
			return err
		},
		undo: func(cache []models.Booking) []models.Booking {
			if i := indexOf(cache, id); i >= 0 {
				cache[i] = previous
			}
			return cache
		},
	})
	if err != nil {
		s.logger.Info().Err(err).Int64("booking_id", id).Str("status", string(status)).Msg("status not changed")
		return models.Booking{}, err
	}

	_ = s.Refresh(ctx, true)
	s.logger.Info().Int64("booking_id", id).Str("status", string(status)).Msg("booking status changed")

	if b, ok := s.Get(id); ok {
		return b, nil
	}
	if updated.ID == id {
		updated.Equipment = models.NormalizeEquipment(updated.Equipment)
		return updated, nil
	}
	previous.Status = status
	return previous, nil
}

func (s *bookingStore) Cancel(ctx context.Context, id int64) (models.Booking, error) {
	return s.SetStatus(ctx, id, models.StatusCancelled)
}

func (s *bookingStore) Delete(ctx context.Context, id int64) error {
	user, ok := s.session.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}
	if !booking.CanDelete(user) {
		return ErrForbidden
	}

	var (
		removed models.Booking
		at      int
	)
	err := s.optimistic(ctx, optimisticOp{
		id: id,
		apply: func(cache []models.Booking) ([]models.Booking, error) {
			at = indexOf(cache, id)
			if at < 0 {
				return nil, ErrBookingNotFound
			}
			removed = cache[at].Clone()
			return slices.Delete(cache, at, at+1), nil
		},
		send: func(ctx context.Context) error {
			return s.adapter.DeleteBooking(ctx, id)
		},
		undo: func(cache []models.Booking) []models.Booking {
			if indexOf(cache, id) >= 0 {
				return cache
			}
			return slices.Insert(cache, min(at, len(cache)), removed)
		},
	})
	if err != nil {
		s.logger.Info().Err(err).Int64("booking_id", id).Msg("booking not deleted")
		return err
	}

	_ = s.Refresh(ctx, true)
	s.logger.Info().Int64("booking_id", id).Msg("booking deleted")
	return nil
}

func indexOf(bookings []models.Booking, id int64) int {
	return slices.IndexFunc(bookings, func(b models.Booking) bool { return b.ID == id })
}

func removeID(bookings []models.Booking, id int64) []models.Booking {
	return slices.DeleteFunc(bookings, func(b models.Booking) bool { return b.ID == id })
}
