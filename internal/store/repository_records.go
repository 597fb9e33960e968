// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/models"
	"github.com/google/uuid"
)

// recordRepository is the SQL-backed implementation of [RecordStorage].
// Record documents are stored as JSON text in the "records" table, one
// row per record, keyed by a server-assigned UUID.
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordStorage] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordStorage {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// Insert implements [RecordStorage].
func (r *recordRepository) Insert(ctx context.Context, recordType string, doc models.Record) (models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("marshal record doc: %w", err)
	}

	now := time.Now().UTC()
	stored := models.StoredRecord{
		ID:        uuid.NewString(),
		Type:      recordType,
		Doc:       doc,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args, err := r.db.sq.
		Insert(tableRecords).
		Columns(recordColumns...).
		Values(stored.ID, stored.Type, string(docJSON), stored.CreatedAt, stored.UpdatedAt).
		ToSql()
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*recordRepository.Insert").
			Str("record_type", recordType).
			Msg("failed to insert record")
		return models.StoredRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// Get implements [RecordStorage].
func (r *recordRepository) Get(ctx context.Context, recordType, id string) (models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Select(recordColumns...).
		From(tableRecords).
		Where("record_type = ?", recordType).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.StoredRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stored, err := scanStoredRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.Get").
			Str("record_type", recordType).
			Str("record_id", id).
			Msg("failed to load record")
		return models.StoredRecord{}, err
	}

	return stored, nil
}

// GetAll implements [RecordStorage]. This is a full table scan over the
// type; the rotation sweep relies on it to visit every persisted record.
func (r *recordRepository) GetAll(ctx context.Context, recordType string) ([]models.StoredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Select(recordColumns...).
		From(tableRecords).
		Where("record_type = ?", recordType).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.GetAll").
			Str("record_type", recordType).
			Msg("failed to execute query for getting records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.StoredRecord, 0, 50)

	for rows.Next() {
		stored, scanErr := scanStoredRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*recordRepository.GetAll").
				Str("record_type", recordType).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, stored)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*recordRepository.GetAll").
			Str("record_type", recordType).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update implements [RecordStorage].
func (r *recordRepository) Update(ctx context.Context, recordType, id string, doc models.Record) error {
	log := logger.FromContext(ctx)

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal record doc: %w", err)
	}

	query, args, err := r.db.sq.
		Update(tableRecords).
		Set("doc", string(docJSON)).
		Set("updated_at", time.Now().UTC()).
		Where("record_type = ?", recordType).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.Update").
			Str("record_type", recordType).
			Str("record_id", id).
			Msg("failed to update record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil && affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanStoredRecord(row rowScanner) (models.StoredRecord, error) {
	var (
		stored  models.StoredRecord
		docJSON string
	)

	if err := row.Scan(&stored.ID, &stored.Type, &docJSON, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
		return models.StoredRecord{}, err
	}

	if err := json.Unmarshal([]byte(docJSON), &stored.Doc); err != nil {
		return models.StoredRecord{}, fmt.Errorf("unmarshal record doc: %w", err)
	}

	return stored, nil
}
