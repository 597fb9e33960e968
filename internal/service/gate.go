// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkotelnikov/fieldvault/internal/crypto"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/models"
)

// GateService implements [EncryptionGate].
//
// The rotation lock is shared with the [RotationCoordinator]: every write
// holds it for reading, a rotation sweep holds it exclusively. This keeps
// a write from landing a fresh envelope under the old key between the
// sweep of its type and the activation of the new key. Reads do not take
// the lock; a read racing a rotation is covered by the previous-key
// decrypt fallback instead.
type GateService struct {
	cipher       crypto.CipherService
	keyring      Keyring
	configs      EncryptionConfigService
	rotationLock *sync.RWMutex
	logger       *logger.Logger
}

// NewGateService constructs an [EncryptionGate]. rotationLock must be the
// same mutex handed to the rotation coordinator.
func NewGateService(
	cipher crypto.CipherService,
	keyring Keyring,
	configs EncryptionConfigService,
	rotationLock *sync.RWMutex,
	logger *logger.Logger,
) *GateService {
	return &GateService{
		cipher:       cipher,
		keyring:      keyring,
		configs:      configs,
		rotationLock: rotationLock,
		logger:       logger,
	}
}

// EncryptOnWrite implements [EncryptionGate]. Fail-closed: any error
// aborts the write, plaintext never reaches storage for a field that is
// configured for encryption.
func (s *GateService) EncryptOnWrite(ctx context.Context, recordType string, record models.Record) (models.Record, error) {
	if record == nil {
		return nil, nil
	}

	s.rotationLock.RLock()
	defer s.rotationLock.RUnlock()

	out := record.Clone()

	settings := s.configs.Settings()
	mc, ok := settings.Models[recordType]
	if !ok || !settings.GlobalEnabled || !mc.Enabled {
		return out, nil
	}

	material, err := s.keyring.Active()
	if err != nil {
		s.logger.Error().Err(err).Str("record_type", recordType).Msg("encrypt on write: no active key")
		return nil, fmt.Errorf("%w: %w", ErrEncryptionWriteFailed, err)
	}

	desc := models.DescriptorFor(recordType, mc.Fields)
	for _, field := range mc.Fields {
		value, present := out[field]
		if !present {
			continue
		}
		encrypted, encErr := s.cipher.SafeEncrypt(value, material.Key, material.IVSeed)
		if encErr != nil {
			s.logger.Error().Err(encErr).
				Str("record_type", recordType).
				Str("field", field).
				Msg("encrypt on write failed")
			return nil, fmt.Errorf("%w: field %q: %w", ErrEncryptionWriteFailed, field, encErr)
		}
		out[field] = encrypted
	}

	for _, nested := range desc.Nested {
		transformed, nestErr := s.transformNested(out[nested.Field], nested, func(value any) (any, error) {
			return s.cipher.SafeEncrypt(value, material.Key, material.IVSeed)
		})
		if nestErr != nil {
			s.logger.Error().Err(nestErr).
				Str("record_type", recordType).
				Str("field", nested.Field).
				Msg("encrypt on write failed in nested list")
			return nil, fmt.Errorf("%w: nested field %q: %w", ErrEncryptionWriteFailed, nested.Field, nestErr)
		}
		if transformed != nil {
			out[nested.Field] = transformed
		}
	}

	return out, nil
}

// DecryptOnRead implements [EncryptionGate]. Fail-open: a value that does
// not decrypt is logged and returned as stored. Toggles are deliberately
// ignored so ciphertext written while encryption was on stays readable
// after it is turned off.
func (s *GateService) DecryptOnRead(ctx context.Context, recordType string, record models.Record) models.Record {
	if record == nil {
		return nil
	}

	out := record.Clone()

	// A type dropped from config still decrypts through its built-in
	// descriptor: existing envelopes must stay readable no matter what
	// happens to the policy map.
	fields, known := s.readFields(recordType)
	if !known {
		return out
	}

	for _, field := range fields {
		value, present := out[field]
		if !present || !s.cipher.IsEnvelope(value) {
			continue
		}
		out[field] = s.decryptValue(recordType, field, value)
	}

	desc := models.DescriptorFor(recordType, fields)
	for _, nested := range desc.Nested {
		transformed, err := s.transformNested(out[nested.Field], nested, func(value any) (any, error) {
			if !s.cipher.IsEnvelope(value) {
				return value, nil
			}
			return s.decryptValue(recordType, nested.Field, value), nil
		})
		if err == nil && transformed != nil {
			out[nested.Field] = transformed
		}
	}

	return out
}

// DecryptOnReadAll implements [EncryptionGate].
func (s *GateService) DecryptOnReadAll(ctx context.Context, recordType string, records []models.Record) []models.Record {
	if records == nil {
		return nil
	}
	out := make([]models.Record, len(records))
	for i, record := range records {
		out[i] = s.DecryptOnRead(ctx, recordType, record)
	}
	return out
}

// readFields resolves the field list for the read path: the live config
// when the type is present, the built-in descriptor when it is not. Only
// a type unknown to both has nothing to decrypt.
func (s *GateService) readFields(recordType string) ([]string, bool) {
	if mc, ok := s.configs.Get(recordType); ok {
		return mc.Fields, true
	}
	if desc, ok := models.BuiltinDescriptors[recordType]; ok {
		return desc.Fields, true
	}
	return nil, false
}

// decryptValue tries the active key first and falls back to the previous
// epoch, covering reads that race a rotation. On failure the stored value
// is returned unchanged.
func (s *GateService) decryptValue(recordType, field string, value any) any {
	material, err := s.keyring.Active()
	if err != nil {
		s.logger.Error().Err(err).
			Str("record_type", recordType).
			Str("field", field).
			Msg("decrypt on read: no active key, returning stored value")
		return value
	}

	plain, err := s.cipher.SafeDecrypt(value, material.Key, material.IVSeed)
	if err == nil {
		return plain
	}

	if previous, ok := s.keyring.Previous(); ok {
		if plain, prevErr := s.cipher.SafeDecrypt(value, previous.Key, previous.IVSeed); prevErr == nil {
			return plain
		}
	}

	s.logger.Error().Err(err).
		Str("record_type", recordType).
		Str("field", field).
		Msg("decrypt on read failed, returning stored value")
	return value
}

// transformNested applies transform to the configured entry fields of an
// array-of-object value. Returns a fully rebuilt slice so the caller's
// input is never mutated. A nil or non-slice value yields (nil, nil):
// nested lists are optional on any given record.
func (s *GateService) transformNested(value any, nested models.NestedList, transform func(any) (any, error)) (any, error) {
	entries, ok := value.([]any)
	if !ok {
		return nil, nil
	}

	out := make([]any, len(entries))
	for i, entry := range entries {
		entryMap, isMap := entry.(map[string]any)
		if !isMap {
			out[i] = entry
			continue
		}

		entryCopy := make(map[string]any, len(entryMap))
		for k, v := range entryMap {
			entryCopy[k] = v
		}
		for _, field := range nested.Fields {
			fieldValue, present := entryCopy[field]
			if !present {
				continue
			}
			transformed, err := transform(fieldValue)
			if err != nil {
				return nil, err
			}
			entryCopy[field] = transformed
		}
		out[i] = entryCopy
	}

	return out, nil
}
