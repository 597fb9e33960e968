// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"

	"github.com/dkotelnikov/fieldvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// KeyRepository persists encryption key material. Rows are append-only:
// activation deactivates the prior epoch but never deletes it, so data
// stranded under an old key by a partially-successful rotation stays
// recoverable.
//
// The repository serializes key bytes to its backing table only; it never
// exposes them through any other surface and never logs them.
type KeyRepository interface {
	// GetActive returns the single active key epoch, or [ErrNoActiveKey]
	// when none exists yet.
	GetActive(ctx context.Context) (models.KeyMaterial, error)

	// GetPrevious returns the most recently deactivated key epoch, or
	// [ErrNoPreviousKey].
	GetPrevious(ctx context.Context) (models.KeyMaterial, error)

	// InsertInitial persists the first key epoch as version 1. The
	// insert is guarded against duplicate-insert races: when another
	// process won the race, the winner's row is returned instead.
	InsertInitial(ctx context.Context, material models.KeyMaterial) (models.KeyMaterial, error)

	// Activate assigns the next version to material, deactivates the
	// current epoch, and inserts the new one as active, all in one
	// transaction. Returns the material with its assigned version.
	Activate(ctx context.Context, material models.KeyMaterial) (models.KeyMaterial, error)
}

// SettingsRepository persists named settings rows holding JSON payloads:
// the per-type encryption configuration map and the global toggle.
type SettingsRepository interface {
	// Get returns the raw value of a settings row, or [ErrSettingNotFound].
	Get(ctx context.Context, name string) (string, error)

	// Upsert writes a settings row, inserting or replacing it.
	Upsert(ctx context.Context, name, value string) error

	// SeedDefault inserts a settings row only when it does not exist
	// yet, so first-boot defaults never clobber operator changes.
	SeedDefault(ctx context.Context, name, value string) error
}

// RecordStorage is the per-type CRUD collaborator used by the encryption
// gate's surrounding handlers and by the rotation sweep (read-all,
// write-one).
type RecordStorage interface {
	// Insert persists a new record document under the given type and
	// returns it with server-assigned ID and timestamps.
	Insert(ctx context.Context, recordType string, doc models.Record) (models.StoredRecord, error)

	// Get returns one record, or [ErrRecordNotFound].
	Get(ctx context.Context, recordType, id string) (models.StoredRecord, error)

	// GetAll returns every persisted record of the given type.
	GetAll(ctx context.Context, recordType string) ([]models.StoredRecord, error)

	// Update replaces the document of an existing record.
	Update(ctx context.Context, recordType, id string, doc models.Record) error
}
