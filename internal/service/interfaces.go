// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"

	"github.com/dkotelnikov/fieldvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// Keyring is the in-memory key material holder. It loads or creates the
// active key epoch at startup and publishes it through an atomic snapshot,
// so per-request key lookups never touch the database.
//
// The previous epoch is kept alongside the active one as a grace window:
// a request that fetched a record just before a rotation activated the
// new key can still decrypt it.
type Keyring interface {
	// Load fetches the active key epoch and, when no key exists yet,
	// generates and persists the first one. Safe to call from multiple
	// instances racing at first boot.
	Load(ctx context.Context) error

	// Active returns the current key epoch, or
	// [crypto.ErrKeyNotInitialized] when Load has not succeeded yet.
	Active() (models.KeyMaterial, error)

	// Previous returns the most recently retired key epoch, when one
	// exists.
	Previous() (models.KeyMaterial, bool)

	// Replace persists material as the next key epoch, deactivates the
	// current one, and swaps the in-memory snapshot. Returns the
	// material with its assigned version.
	Replace(ctx context.Context, material models.KeyMaterial) (models.KeyMaterial, error)
}

// EncryptionConfigService manages the per-type encryption policies and the
// global toggle. Reads are served from an immutable cached snapshot;
// updates persist first, then replace the snapshot wholesale, so new
// requests observe the change without restart.
type EncryptionConfigService interface {
	// Load seeds the default configuration on first boot and populates
	// the snapshot cache from storage.
	Load(ctx context.Context) error

	// Settings returns the current configuration snapshot. The returned
	// value is a copy; callers may not affect the cache through it.
	Settings() models.EncryptionSettings

	// Get returns the policy for one record type.
	Get(recordType string) (models.ModelConfig, bool)

	// SetGlobalEnabled persists and publishes the global toggle.
	SetGlobalEnabled(ctx context.Context, enabled bool) error

	// Update persists and publishes the policy for one record type.
	Update(ctx context.Context, recordType string, mc models.ModelConfig) error

	// ReplaceAll persists and publishes a full per-type policy map.
	ReplaceAll(ctx context.Context, policies map[string]models.ModelConfig) error
}

// EncryptionGate intercepts record traffic between handlers and storage.
// Writes are fail-closed: an encryption error aborts the write. Reads are
// fail-open: a value that cannot be decrypted is returned as stored,
// because serving ciphertext is recoverable and serving an error for the
// whole record is not.
type EncryptionGate interface {
	// EncryptOnWrite returns a new record with the configured fields of
	// recordType encrypted. The input record is never mutated. When
	// encryption is off for the type the record is returned as-is
	// (cloned).
	EncryptOnWrite(ctx context.Context, recordType string, record models.Record) (models.Record, error)

	// DecryptOnRead returns a new record with every envelope-shaped
	// value among the configured fields decrypted. Toggles are ignored:
	// decryption is attempted whenever a value looks like ciphertext.
	DecryptOnRead(ctx context.Context, recordType string, record models.Record) models.Record

	// DecryptOnReadAll applies DecryptOnRead to each record of a result
	// set.
	DecryptOnReadAll(ctx context.Context, recordType string, records []models.Record) []models.Record
}

// RotationCoordinator performs online key rotation: generate a fresh key,
// re-encrypt all stored ciphertext from the old key to the new one, then
// activate the new key. Only one rotation runs at a time.
type RotationCoordinator interface {
	// Rotate runs one full rotation and returns its report. Returns
	// [ErrRotationInProgress] when a run is already active.
	Rotate(ctx context.Context) (models.RotationReport, error)

	// State returns where the coordinator currently is in its state
	// machine.
	State() models.RotationState
}

// RecordService is the handler-facing CRUD surface. It routes every
// document through the encryption gate so handlers and storage never see
// the other side's representation.
type RecordService interface {
	// Create encrypts and persists a new record, returning it with
	// plaintext fields.
	Create(ctx context.Context, recordType string, doc models.Record) (models.StoredRecord, error)

	// Get returns one decrypted record.
	Get(ctx context.Context, recordType, id string) (models.StoredRecord, error)

	// List returns all decrypted records of a type.
	List(ctx context.Context, recordType string) ([]models.StoredRecord, error)

	// Update encrypts and replaces the document of an existing record.
	Update(ctx context.Context, recordType, id string, doc models.Record) (models.StoredRecord, error)
}

// AuthService authenticates the administrator and issues bearer tokens
// for the admin API.
type AuthService interface {
	// Login verifies the admin password and returns a signed JWT token.
	Login(ctx context.Context, password string) (models.Token, error)

	// ValidateToken parses and verifies a bearer token string.
	ValidateToken(tokenString string) (models.Token, error)
}
