// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package models

import "time"

// Record is an arbitrary application record as seen by the encryption
// layer: a JSON object whose field values may be scalars, objects, or
// arrays. The encryption gate never mutates a Record in place; transforms
// return fresh copies.
type Record map[string]any

// Clone returns a shallow copy of the record. Field values are shared,
// which is safe because the gate replaces transformed values rather than
// mutating them.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// StoredRecord is a persisted record row: the document plus its storage
// identity.
type StoredRecord struct {
	// ID is the server-assigned record identifier (UUID).
	ID string `json:"id"`

	// Type is the record-type name the record belongs to.
	Type string `json:"type"`

	// Doc is the record document itself.
	Doc Record `json:"doc"`

	// CreatedAt and UpdatedAt are server-assigned timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
