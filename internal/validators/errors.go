// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecordType = errors.New("record type is required")
	ErrEmptyFieldName  = errors.New("field name cannot be empty")
	ErrDuplicateField  = errors.New("duplicate field name in policy")
	ErrEmptyDocument   = errors.New("record document cannot be empty")
)
