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
	"github.com/dkotelnikov/fieldvault/models"
	"github.com/jackc/pgerrcode"
)

// keyRepository is the SQL-backed implementation of [KeyRepository].
// It manages the append-only "encryption_keys" table.
//
// Key bytes pass through this type only as hex strings bound to query
// parameters; they are never written to the logger.
type keyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewKeyRepository constructs a [KeyRepository] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: logger,
	}
}

// GetActive implements [KeyRepository].
func (r *keyRepository) GetActive(ctx context.Context) (models.KeyMaterial, error) {
	return r.getWhereActive(ctx, true)
}

// GetPrevious implements [KeyRepository].
func (r *keyRepository) GetPrevious(ctx context.Context) (models.KeyMaterial, error) {
	material, err := r.getWhereActive(ctx, false)
	if errors.Is(err, ErrNoActiveKey) {
		return models.KeyMaterial{}, ErrNoPreviousKey
	}
	return material, err
}

func (r *keyRepository) getWhereActive(ctx context.Context, active bool) (models.KeyMaterial, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Select(keyColumns...).
		From(tableKeys).
		Where("active = ?", active).
		OrderBy("version DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	material, err := r.scanMaterial(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.KeyMaterial{}, ErrNoActiveKey
	}
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.getWhereActive").Msg("failed to load key material")
		return models.KeyMaterial{}, err
	}

	return material, nil
}

// InsertInitial implements [KeyRepository]. The fixed version-1 primary
// key turns a duplicate-insert race into a unique violation (or a zero
// rows-affected insert with ON CONFLICT DO NOTHING), after which the
// winner's row is re-read.
func (r *keyRepository) InsertInitial(ctx context.Context, material models.KeyMaterial) (models.KeyMaterial, error) {
	log := logger.FromContext(ctx)

	if err := material.Validate(); err != nil {
		return models.KeyMaterial{}, err
	}

	material.Version = 1
	if material.CreatedAt.IsZero() {
		material.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.sq.
		Insert(tableKeys).
		Columns(keyColumns...).
		Values(material.Version, material.KeyHex(), material.IVSeedHex(), true, material.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && postgresError(err) != pgerrcode.UniqueViolation {
		log.Err(err).Str("func", "*keyRepository.InsertInitial").Msg("failed to insert initial key material")
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err == nil {
		if affected, affErr := result.RowsAffected(); affErr == nil && affected > 0 {
			return material, nil
		}
	}

	// Another process inserted first; use its key.
	log.Debug().Str("func", "*keyRepository.InsertInitial").Msg("initial key already present, loading winner")
	return r.GetActive(ctx)
}

// Activate implements [KeyRepository].
func (r *keyRepository) Activate(ctx context.Context, material models.KeyMaterial) (models.KeyMaterial, error) {
	log := logger.FromContext(ctx)

	if err := material.Validate(); err != nil {
		return models.KeyMaterial{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	nextQuery, nextArgs, err := r.db.sq.
		Select("COALESCE(MAX(version), 0) + 1").
		From(tableKeys).
		ToSql()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.QueryRowContext(ctx, nextQuery, nextArgs...).Scan(&material.Version); err != nil {
		log.Err(err).Str("func", "*keyRepository.Activate").Msg("failed to assign next key version")
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	deactivateQuery, deactivateArgs, err := r.db.sq.
		Update(tableKeys).
		Set("active", false).
		Where("active = ?", true).
		ToSql()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deactivateQuery, deactivateArgs...); err != nil {
		log.Err(err).Str("func", "*keyRepository.Activate").Msg("failed to deactivate current key")
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if material.CreatedAt.IsZero() {
		material.CreatedAt = time.Now().UTC()
	}

	insertQuery, insertArgs, err := r.db.sq.
		Insert(tableKeys).
		Columns(keyColumns...).
		Values(material.Version, material.KeyHex(), material.IVSeedHex(), true, material.CreatedAt).
		ToSql()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*keyRepository.Activate").Msg("failed to insert new key material")
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "*keyRepository.Activate").
		Int64("key_version", material.Version).
		Msg("new key material activated")

	return material, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *keyRepository) scanMaterial(row rowScanner) (models.KeyMaterial, error) {
	var (
		version   int64
		keyHex    string
		ivSeedHex string
		active    bool
		createdAt time.Time
	)

	if err := row.Scan(&version, &keyHex, &ivSeedHex, &active, &createdAt); err != nil {
		return models.KeyMaterial{}, err
	}

	return models.KeyMaterialFromHex(version, keyHex, ivSeedHex, createdAt)
}
