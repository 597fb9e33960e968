// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/service"
)

// rotationWorker triggers a key rotation on a fixed schedule. A tick that
// lands while a rotation is already running is skipped, not queued.
type rotationWorker struct {
	rotation service.RotationCoordinator
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
	done     chan struct{}
}

func newRotationWorker(rotation service.RotationCoordinator, interval time.Duration, log *logger.Logger) *rotationWorker {
	return &rotationWorker{
		rotation: rotation,
		interval: interval,
		logger:   &logger.Logger{Logger: log.With().Str("worker", "rotation").Logger()},
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *rotationWorker) Run() {
	go w.loop()
}

func (w *rotationWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *rotationWorker) loop() {
	defer close(w.done)

	w.logger.Info().Dur("interval", w.interval).Msg("rotation worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			w.logger.Info().Msg("rotation worker stopped")
			return
		case <-ticker.C:
			w.rotate()
		}
	}
}

func (w *rotationWorker) rotate() {
	report, err := w.rotation.Rotate(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrRotationInProgress) {
			w.logger.Warn().Msg("scheduled rotation skipped: rotation already in progress")
			return
		}
		w.logger.Error().Err(err).Msg("scheduled rotation failed")
		return
	}

	w.logger.Info().
		Str("rotation_run_id", report.RunID).
		Int64("new_key_version", report.NewKeyVersion).
		Int("records_migrated", report.RecordsMigrated).
		Msg("scheduled rotation completed")
}
