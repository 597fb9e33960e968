// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dkotelnikov/fieldvault/internal/crypto"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/models"
)

// RotationService implements [RotationCoordinator].
//
// A run walks the state machine idle -> generating_key -> sweeping_models
// -> activating_key -> idle. The sweep re-encrypts every envelope from
// the old key to the new one and persists each record after every field,
// so a crash mid-sweep leaves only complete envelopes behind; the
// unswept remainder still decrypts under the key that stays active until
// the final step.
//
// The rotation lock is shared with the [EncryptionGate]: the sweep and
// activation hold it exclusively so no write can land an old-key envelope
// into a type that was already swept.
type RotationService struct {
	cipher       crypto.CipherService
	keyring      Keyring
	configs      EncryptionConfigService
	records      store.RecordStorage
	rotationLock *sync.RWMutex
	logger       *logger.Logger

	state atomic.Int32
}

// NewRotationService constructs a [RotationCoordinator]. rotationLock
// must be the same mutex handed to the encryption gate.
func NewRotationService(
	cipher crypto.CipherService,
	keyring Keyring,
	configs EncryptionConfigService,
	records store.RecordStorage,
	rotationLock *sync.RWMutex,
	logger *logger.Logger,
) *RotationService {
	return &RotationService{
		cipher:       cipher,
		keyring:      keyring,
		configs:      configs,
		records:      records,
		rotationLock: rotationLock,
		logger:       logger,
	}
}

// State implements [RotationCoordinator].
func (s *RotationService) State() models.RotationState {
	return models.RotationState(s.state.Load())
}

// Rotate implements [RotationCoordinator].
func (s *RotationService) Rotate(ctx context.Context) (models.RotationReport, error) {
	if !s.state.CompareAndSwap(int32(models.RotationIdle), int32(models.RotationGeneratingKey)) {
		return models.RotationReport{}, ErrRotationInProgress
	}
	defer s.state.Store(int32(models.RotationIdle))

	report := models.RotationReport{
		RunID:          uuid.NewString(),
		TypesProcessed: []string{},
		TypesSkipped:   map[string]string{},
		StartedAt:      time.Now(),
	}
	log := &logger.Logger{Logger: s.logger.With().Str("rotation_run_id", report.RunID).Logger()}

	oldMaterial, err := s.keyring.Active()
	if err != nil {
		log.Error().Err(err).Msg("rotation aborted: no active key")
		return report, err
	}

	key, ivSeed, err := s.cipher.GenerateMaterial()
	if err != nil {
		log.Error().Err(err).Msg("rotation aborted: key generation failed")
		return report, err
	}
	newMaterial := models.KeyMaterial{Key: key, IVSeed: ivSeed, CreatedAt: time.Now()}

	s.rotationLock.Lock()
	defer s.rotationLock.Unlock()

	// Read the policy snapshot only once the lock is held, so an admin
	// update landing just before the sweep is either fully in or fully
	// out of this run.
	settings := s.configs.Settings()
	report.GlobalEnabled = settings.GlobalEnabled

	if settings.GlobalEnabled {
		s.state.Store(int32(models.RotationSweepingModels))
		s.sweep(ctx, log, settings, oldMaterial, newMaterial, &report)
	} else {
		log.Info().Msg("global toggle off, skipping sweep")
	}

	s.state.Store(int32(models.RotationActivatingKey))
	activated, err := s.keyring.Replace(ctx, newMaterial)
	if err != nil {
		log.Error().Err(err).Msg("rotation failed: could not activate new key")
		return report, err
	}

	report.NewKeyVersion = activated.Version
	report.FinishedAt = time.Now()
	log.Info().
		Int64("new_key_version", report.NewKeyVersion).
		Int("records_migrated", report.RecordsMigrated).
		Int("fields_rotated", report.FieldsRotated).
		Int("fields_failed", report.FieldsFailed).
		Strs("types_processed", report.TypesProcessed).
		Int("types_skipped", len(report.TypesSkipped)).
		Msg("key rotation finished")
	return report, nil
}

// sweep re-encrypts all configured types in deterministic order. A type
// whose records cannot be listed is recorded as skipped; the sweep
// continues with the remaining types and the new key still activates, so
// a retry only has to cover the skipped types.
func (s *RotationService) sweep(
	ctx context.Context,
	log *logger.Logger,
	settings models.EncryptionSettings,
	oldMaterial, newMaterial models.KeyMaterial,
	report *models.RotationReport,
) {
	types := make([]string, 0, len(settings.Models))
	for name := range settings.Models {
		types = append(types, name)
	}
	sort.Strings(types)

	for _, recordType := range types {
		mc := settings.Models[recordType]
		if !mc.Enabled || len(mc.Fields) == 0 {
			continue
		}

		if err := s.sweepType(ctx, log, recordType, mc, oldMaterial, newMaterial, report); err != nil {
			log.Error().Err(err).Str("record_type", recordType).Msg("type sweep aborted")
			report.TypesSkipped[recordType] = err.Error()
			continue
		}
		report.TypesProcessed = append(report.TypesProcessed, recordType)
	}
}

func (s *RotationService) sweepType(
	ctx context.Context,
	log *logger.Logger,
	recordType string,
	mc models.ModelConfig,
	oldMaterial, newMaterial models.KeyMaterial,
	report *models.RotationReport,
) error {
	stored, err := s.records.GetAll(ctx, recordType)
	if err != nil {
		return err
	}

	desc := models.DescriptorFor(recordType, mc.Fields)
	for _, record := range stored {
		migrated := s.rotateRecord(ctx, log, record, mc, desc, oldMaterial, newMaterial, report)
		if migrated {
			report.RecordsMigrated++
		}
	}
	return nil
}

// rotateRecord re-encrypts one record field by field, persisting after
// every successful field so each write replaces a complete old-key
// envelope with a complete new-key one. The first field failure stops
// work on this record; fields already rewritten stay rewritten, the rest
// stay under the old key and remain readable through the grace window.
func (s *RotationService) rotateRecord(
	ctx context.Context,
	log *logger.Logger,
	record models.StoredRecord,
	mc models.ModelConfig,
	desc models.Descriptor,
	oldMaterial, newMaterial models.KeyMaterial,
	report *models.RotationReport,
) bool {
	doc := record.Doc.Clone()
	migrated := false

	for _, field := range mc.Fields {
		value, present := doc[field]
		if !present || !s.cipher.IsEnvelope(value) {
			continue
		}

		rotated, err := s.rotateValue(value.(string), oldMaterial, newMaterial)
		if err != nil {
			report.FieldsFailed++
			log.Error().Err(err).
				Str("record_type", record.Type).
				Str("record_id", record.ID).
				Str("field", field).
				Msg("field rotation failed, record left on previous key")
			return migrated
		}

		doc[field] = rotated
		if err = s.records.Update(ctx, record.Type, record.ID, doc); err != nil {
			report.FieldsFailed++
			log.Error().Err(err).
				Str("record_type", record.Type).
				Str("record_id", record.ID).
				Str("field", field).
				Msg("field rotation write failed")
			return migrated
		}
		report.FieldsRotated++
		migrated = true
	}

	for _, nested := range desc.Nested {
		entries, ok := doc[nested.Field].([]any)
		if !ok {
			continue
		}

		// The document clone is shallow; rebuild the slice and copy each
		// entry map so the caller's record is never written through.
		copied := make([]any, len(entries))
		for i, entry := range entries {
			entryMap, isMap := entry.(map[string]any)
			if !isMap {
				copied[i] = entry
				continue
			}
			entryCopy := make(map[string]any, len(entryMap))
			for k, v := range entryMap {
				entryCopy[k] = v
			}
			copied[i] = entryCopy
		}
		doc[nested.Field] = copied

		for i, entry := range copied {
			entryMap, isMap := entry.(map[string]any)
			if !isMap {
				continue
			}
			for _, field := range nested.Fields {
				value, present := entryMap[field]
				if !present || !s.cipher.IsEnvelope(value) {
					continue
				}

				rotated, err := s.rotateValue(value.(string), oldMaterial, newMaterial)
				if err != nil {
					report.FieldsFailed++
					log.Error().Err(err).
						Str("record_type", record.Type).
						Str("record_id", record.ID).
						Str("field", nested.Field).
						Int("entry", i).
						Msg("nested field rotation failed, record left on previous key")
					return migrated
				}

				entryMap[field] = rotated
				if err = s.records.Update(ctx, record.Type, record.ID, doc); err != nil {
					report.FieldsFailed++
					log.Error().Err(err).
						Str("record_type", record.Type).
						Str("record_id", record.ID).
						Str("field", nested.Field).
						Int("entry", i).
						Msg("nested field rotation write failed")
					return migrated
				}
				report.FieldsRotated++
				migrated = true
			}
		}
	}

	return migrated
}

// rotateValue decrypts an envelope under the old key and re-encrypts the
// plaintext under the new one. Raw Decrypt/Encrypt are used instead of
// the Safe pair: the value is already known to be an envelope, and the
// re-encrypted plaintext must not be skipped by the idempotence guard.
func (s *RotationService) rotateValue(envelope string, oldMaterial, newMaterial models.KeyMaterial) (string, error) {
	plain, err := s.cipher.Decrypt(envelope, oldMaterial.Key, oldMaterial.IVSeed)
	if err != nil {
		return "", err
	}
	return s.cipher.Encrypt(plain, newMaterial.Key, newMaterial.IVSeed)
}
