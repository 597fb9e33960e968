// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"

	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/logger"
)

// Storages aggregates all repositories over one database connection.
type Storages struct {
	KeyRepository      KeyRepository
	SettingsRepository SettingsRepository
	RecordStorage      RecordStorage

	// DB is exposed for migrations at startup.
	DB *DB
}

// NewStorages opens the configured database and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		KeyRepository:      NewKeyRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
		RecordStorage:      NewRecordRepository(db, log),
		DB:                 db,
	}, nil
}
