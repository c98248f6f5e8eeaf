// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers manages the client's background jobs.
// It defines the Worker interface and a Workers aggregate that starts and
// stops a set of workers as one unit.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; implementations spawn their own goroutines and
// tie them to ctx. Stop blocks until the worker has exited and is safe to
// call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Job is a periodic job that takes its interval at start time, such as
// the booking refresh job.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
