// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/internal/validators"
	"github.com/dkotelnikov/fieldvault/models"
)

// RecordCRUDService implements [RecordService]. Every document passes
// through the encryption gate in both directions: storage only ever sees
// the encrypted form, callers only ever see plaintext.
type RecordCRUDService struct {
	records   store.RecordStorage
	gate      EncryptionGate
	validator validators.Validator
	logger    *logger.Logger
}

// NewRecordCRUDService constructs a [RecordService].
func NewRecordCRUDService(records store.RecordStorage, gate EncryptionGate, logger *logger.Logger) *RecordCRUDService {
	return &RecordCRUDService{
		records:   records,
		gate:      gate,
		validator: validators.NewRecordValidator(),
		logger:    logger,
	}
}

// Create implements [RecordService].
func (s *RecordCRUDService) Create(ctx context.Context, recordType string, doc models.Record) (models.StoredRecord, error) {
	if recordType == "" {
		return models.StoredRecord{}, validators.ErrEmptyRecordType
	}
	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.StoredRecord{}, err
	}

	encrypted, err := s.gate.EncryptOnWrite(ctx, recordType, doc)
	if err != nil {
		return models.StoredRecord{}, err
	}

	stored, err := s.records.Insert(ctx, recordType, encrypted)
	if err != nil {
		return models.StoredRecord{}, err
	}

	stored.Doc = s.gate.DecryptOnRead(ctx, recordType, stored.Doc)
	return stored, nil
}

// Get implements [RecordService].
func (s *RecordCRUDService) Get(ctx context.Context, recordType, id string) (models.StoredRecord, error) {
	stored, err := s.records.Get(ctx, recordType, id)
	if err != nil {
		return models.StoredRecord{}, err
	}

	stored.Doc = s.gate.DecryptOnRead(ctx, recordType, stored.Doc)
	return stored, nil
}

// List implements [RecordService].
func (s *RecordCRUDService) List(ctx context.Context, recordType string) ([]models.StoredRecord, error) {
	stored, err := s.records.GetAll(ctx, recordType)
	if err != nil {
		return nil, err
	}

	docs := make([]models.Record, len(stored))
	for i, record := range stored {
		docs[i] = record.Doc
	}
	for i, doc := range s.gate.DecryptOnReadAll(ctx, recordType, docs) {
		stored[i].Doc = doc
	}
	return stored, nil
}

// Update implements [RecordService].
func (s *RecordCRUDService) Update(ctx context.Context, recordType, id string, doc models.Record) (models.StoredRecord, error) {
	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.StoredRecord{}, err
	}

	encrypted, err := s.gate.EncryptOnWrite(ctx, recordType, doc)
	if err != nil {
		return models.StoredRecord{}, err
	}

	if err = s.records.Update(ctx, recordType, id, encrypted); err != nil {
		return models.StoredRecord{}, err
	}

	return s.Get(ctx, recordType, id)
}
