// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package validators

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/fieldvault/models"
)

// RecordValidator validates inbound record documents before they reach
// the encryption gate and storage.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value)
	case *models.Record:
		if value == nil {
			return ErrEmptyDocument
		}
		return v.validateRecord(ctx, *value)

	case models.StoredRecord:
		return v.validateStoredRecord(ctx, value)
	case *models.StoredRecord:
		return v.validateStoredRecord(ctx, *value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, doc models.Record) error {
	if len(doc) == 0 {
		return ErrEmptyDocument
	}

	return nil
}

func (v *RecordValidator) validateStoredRecord(ctx context.Context, stored models.StoredRecord) error {
	if stored.Type == "" {
		return ErrEmptyRecordType
	}

	return v.validateRecord(ctx, stored.Doc)
}
