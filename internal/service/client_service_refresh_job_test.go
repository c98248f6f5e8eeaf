// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyBookingService считает вызовы Refresh; остальные методы не нужны.
type spyBookingService struct {
	BookingService
	calls  atomic.Int64
	silent atomic.Bool
}

func (s *spyBookingService) Refresh(_ context.Context, silent bool) error {
	s.calls.Add(1)
	s.silent.Store(silent)
	return nil
}

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewRefreshJob(&spyBookingService{})
	require.NotNil(t, job)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_RefreshesSilently(t *testing.T) {
	spy := &spyBookingService{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh должен быть вызван несколько раз, вызвано: %d", got)
	assert.True(t, spy.silent.Load())
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyBookingService{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestRefreshJob_Stop_Idempotent(t *testing.T) {
	job := NewRefreshJob(&spyBookingService{})

	assert.NotPanics(t, func() { job.Stop() })

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyBookingService{}
		job := NewRefreshJob(spy)

		// дефолт: минута, за 20ms вызовов быть не должно
		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load())
	}
}

func TestRefreshJob_Restart_ReplacesRunningJob(t *testing.T) {
	spy := &spyBookingService{}
	job := NewRefreshJob(spy)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

func TestRefreshJob_StopsWithParentContext(t *testing.T) {
	spy := &spyBookingService{}
	job := NewRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	cancel()
	time.Sleep(5 * time.Millisecond)
	before := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, before, spy.calls.Load())
	job.Stop()
}
