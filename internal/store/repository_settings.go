// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkotelnikov/fieldvault/internal/logger"
)

// Settings row names used by the encryption configuration service.
const (
	// SettingEncryptionModels holds the JSON map of per-type encryption
	// policies.
	SettingEncryptionModels = "encryption_models"

	// SettingEncryptionEnabled holds the JSON boolean global toggle.
	SettingEncryptionEnabled = "encryption_enabled"
)

// settingsRepository is the SQL-backed implementation of
// [SettingsRepository] over the "app_settings" table.
type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get implements [SettingsRepository].
func (r *settingsRepository) Get(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Select("value").
		From(tableSettings).
		Where("name = ?", name).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Get").Str("setting", name).Msg("failed to load setting")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// Upsert implements [SettingsRepository].
func (r *settingsRepository) Upsert(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Insert(tableSettings).
		Columns(settingColumns...).
		Values(name, value, time.Now().UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Upsert").Str("setting", name).Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// SeedDefault implements [SettingsRepository].
func (r *settingsRepository) SeedDefault(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Insert(tableSettings).
		Columns(settingColumns...).
		Values(name, value, time.Now().UTC()).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.SeedDefault").Str("setting", name).Msg("failed to seed setting")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
