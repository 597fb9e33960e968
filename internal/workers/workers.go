// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package workers

import (
	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/service"
)

// Workers aggregates the application's background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the worker set from the configuration. A worker with a
// zero interval is disabled; an empty set is valid.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.RotationInterval > 0 {
		w.workers = append(w.workers, newRotationWorker(services.Rotation, cfg.RotationInterval, logger))
	}

	return w
}

// Run starts every configured worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every configured worker.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
