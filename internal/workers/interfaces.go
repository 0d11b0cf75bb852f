// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the periodic background passes of the daemon.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is a restartable background job.
//
// Start launches the job and returns immediately; calling Start on a running
// worker restarts it. Stop blocks until the job goroutine has exited and is
// a no-op when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Task is one unit of periodic work.
type Task func(ctx context.Context) error
