// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	db := &DB{
		DB:     mockDB,
		sq:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger: l,
	}
	return db, mock, mockDB
}

func testKeyMaterial(t *testing.T, version int64) models.KeyMaterial {
	t.Helper()

	material := models.KeyMaterial{
		Version:   version,
		Key:       []byte(strings.Repeat("k", 32)),
		IVSeed:    []byte(strings.Repeat("s", 16)),
		CreatedAt: time.Now().UTC(),
	}
	return material
}

func keyRows(material models.KeyMaterial, active bool) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"version", "key_hex", "iv_seed_hex", "active", "created_at"}).
		AddRow(material.Version, material.KeyHex(), material.IVSeedHex(), active, material.CreatedAt)
}

func TestGetActive_Success(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}
	material := testKeyMaterial(t, 3)

	mock.ExpectQuery("SELECT version, key_hex, iv_seed_hex, active, created_at FROM encryption_keys").
		WithArgs(true).
		WillReturnRows(keyRows(material, true))

	got, err := repo.GetActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Version != 3 {
		t.Errorf("expected version 3, got %d", got.Version)
	}
	if hex.EncodeToString(got.Key) != material.KeyHex() {
		t.Errorf("key bytes mismatch after round trip")
	}
}

func TestGetActive_NoRows(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT version, key_hex, iv_seed_hex, active, created_at FROM encryption_keys").
		WithArgs(true).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActive(context.Background())
	if !errors.Is(err, ErrNoActiveKey) {
		t.Fatalf("expected ErrNoActiveKey, got %v", err)
	}
}

func TestGetPrevious_NoRows(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT version, key_hex, iv_seed_hex, active, created_at FROM encryption_keys").
		WithArgs(false).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPrevious(context.Background())
	if !errors.Is(err, ErrNoPreviousKey) {
		t.Fatalf("expected ErrNoPreviousKey, got %v", err)
	}
}

func TestInsertInitial_Success(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}
	material := testKeyMaterial(t, 0)

	mock.ExpectExec("INSERT INTO encryption_keys").
		WithArgs(int64(1), material.KeyHex(), material.IVSeedHex(), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.InsertInitial(context.Background(), material)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Version != 1 {
		t.Errorf("expected version 1, got %d", created.Version)
	}
}

func TestInsertInitial_LostRaceLoadsWinner(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}
	material := testKeyMaterial(t, 0)
	winner := testKeyMaterial(t, 1)

	// Insert affects zero rows because the winner's row already exists.
	mock.ExpectExec("INSERT INTO encryption_keys").
		WithArgs(int64(1), material.KeyHex(), material.IVSeedHex(), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version, key_hex, iv_seed_hex, active, created_at FROM encryption_keys").
		WithArgs(true).
		WillReturnRows(keyRows(winner, true))

	created, err := repo.InsertInitial(context.Background(), material)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Version != 1 {
		t.Errorf("expected winner version 1, got %d", created.Version)
	}
}

func TestInsertInitial_InvalidMaterial(t *testing.T) {
	db, _, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}

	_, err := repo.InsertInitial(context.Background(), models.KeyMaterial{Key: []byte("short")})
	if err == nil {
		t.Fatalf("expected validation error for short key")
	}
}

func TestActivate_AssignsNextVersion(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}
	material := testKeyMaterial(t, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) \+ 1 FROM encryption_keys`).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(4)))
	mock.ExpectExec("UPDATE encryption_keys SET active").
		WithArgs(false, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO encryption_keys").
		WithArgs(int64(4), material.KeyHex(), material.IVSeedHex(), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	activated, err := repo.Activate(context.Background(), material)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activated.Version != 4 {
		t.Errorf("expected assigned version 4, got %d", activated.Version)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestActivate_RollsBackOnInsertFailure(t *testing.T) {
	db, mock, mockDB := newTestDB(t)
	defer mockDB.Close()

	repo := &keyRepository{db: db, logger: logger.Nop()}
	material := testKeyMaterial(t, 0)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) \+ 1 FROM encryption_keys`).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(2)))
	mock.ExpectExec("UPDATE encryption_keys SET active").
		WithArgs(false, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO encryption_keys").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := repo.Activate(context.Background(), material); err == nil {
		t.Fatalf("expected error when insert fails")
	}
}
