// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-av-booking/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger

	mu      sync.Mutex
	started bool
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Start starts every worker in order. A second Start without Stop is a
// no-op.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.started = true
	w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.started = false
	w.logger.Debug().Msg("workers stopped")
}

type periodic struct {
	job      Job
	interval time.Duration
}

// Periodic adapts a [Job] to a [Worker] running every interval.
func Periodic(job Job, interval time.Duration) Worker {
	return &periodic{job: job, interval: interval}
}

func (p *periodic) Start(ctx context.Context) {
	p.job.Start(ctx, p.interval)
}

func (p *periodic) Stop() {
	p.job.Stop()
}
