// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package validators

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/fieldvault/models"
)

const (
	FieldRecordType = "record_type"
	FieldFields     = "fields"
)

// PolicyValidator validates per-type encryption policies before they are
// persisted: a policy with a blank or duplicated field name would silently
// encrypt nothing, so it is rejected up front.
type PolicyValidator struct {
}

func NewPolicyValidator() Validator {
	return &PolicyValidator{}
}

func (v *PolicyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ModelConfig:
		return v.validateModelConfig(ctx, value, fields...)
	case *models.ModelConfig:
		return v.validateModelConfig(ctx, *value, fields...)

	case models.EncryptionSettings:
		return v.validatePolicies(ctx, value.Models)
	case *models.EncryptionSettings:
		return v.validatePolicies(ctx, value.Models)

	case map[string]models.ModelConfig:
		return v.validatePolicies(ctx, value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PolicyValidator) validateModelConfig(_ context.Context, mc models.ModelConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFields}
	}

	for _, field := range fields {
		switch field {
		case FieldFields:
			if err := validateFieldNames(mc.Fields); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *PolicyValidator) validatePolicies(ctx context.Context, policies map[string]models.ModelConfig) error {
	for recordType, mc := range policies {
		if recordType == "" {
			return ErrEmptyRecordType
		}
		if err := v.validateModelConfig(ctx, mc); err != nil {
			return fmt.Errorf("policy for %q: %w", recordType, err)
		}
	}

	return nil
}

// An empty field list is valid: a type may protect nested fields only, or
// exist as a disabled placeholder.
func validateFieldNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return ErrEmptyFieldName
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}
