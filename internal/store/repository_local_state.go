// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/logger"
)

type localStateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStateRepository returns the SQLite implementation of
// [LocalStateRepository].
func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *localStateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalStateNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "localStateRepository.Get").
			Str("key", key).
			Msg("failed to read local state")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *localStateRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := buildPutStateQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localStateRepository.Put").
			Str("key", key).
			Msg("failed to write local state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *localStateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localStateRepository.Delete").
			Str("key", key).
			Msg("failed to delete local state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
