// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-av-booking/models"
)

// optimisticOp describes one cache mutation that is shown before the
// remote side confirms it.
type optimisticOp struct {
	// id is the booking the operation is serialized on.
	id int64

	// apply checks preconditions and returns the new cache. It runs under
	// the write lock and may reject the operation; nothing is changed then.
	apply func(cache []models.Booking) ([]models.Booking, error)

	// send performs the remote call without holding the lock.
	send func(ctx context.Context) error

	// commit, if set, folds the remote answer into the cache on success.
	commit func(cache []models.Booking) []models.Booking

	// undo reverts the operation on a cache that was replaced by a refresh
	// while send was running, where the snapshot is stale.
	undo func(cache []models.Booking) []models.Booking
}

// optimistic runs op: snapshot, apply, send, then commit or restore.
//
// On failure the snapshot is restored verbatim unless a refresh rewrote the
// cache in the meantime; then only op's own change is reverted.
func (s *bookingStore) optimistic(ctx context.Context, op optimisticOp) error {
	s.mu.Lock()
	if _, busy := s.inFlight[op.id]; busy {
		s.mu.Unlock()
		return ErrMutationInFlight
	}

	snapshot := models.CloneBookings(s.bookings)
	next, err := op.apply(s.bookings)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.bookings = next
	s.generation++
	applied := s.generation
	s.inFlight[op.id] = struct{}{}
	s.mu.Unlock()

	err = op.send(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, op.id)

	if err != nil {
		if s.generation == applied {
			s.bookings = snapshot
		} else if op.undo != nil {
			s.bookings = op.undo(s.bookings)
		}
		s.generation++
		return err
	}

	if op.commit != nil {
		s.bookings = op.commit(s.bookings)
		s.generation++
	}
	return nil
}
