// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package models

import "time"

// RotationState tracks where the rotation coordinator is in its
// state machine. Exposed on the status endpoint for operators.
type RotationState int32

const (
	RotationIdle RotationState = iota
	RotationGeneratingKey
	RotationSweepingModels
	RotationActivatingKey
)

// String implements [fmt.Stringer] for log and API output.
func (s RotationState) String() string {
	switch s {
	case RotationIdle:
		return "idle"
	case RotationGeneratingKey:
		return "generating_key"
	case RotationSweepingModels:
		return "sweeping_models"
	case RotationActivatingKey:
		return "activating_key"
	default:
		return "unknown"
	}
}

// RotationReport summarizes one rotation run. Rotation is a
// partial-success operation: a type that fails to sweep is recorded in
// TypesSkipped with its reason while the remaining types still complete
// and the new key is still activated, so operators need the full picture
// rather than a single pass/fail flag.
type RotationReport struct {
	// RunID identifies this rotation run in logs.
	RunID string `json:"run_id"`

	// NewKeyVersion is the version of the key activated by this run.
	NewKeyVersion int64 `json:"new_key_version"`

	// GlobalEnabled records whether the sweep ran at all. When the
	// global toggle is off nothing is encrypted, so rotation installs
	// the fresh key without sweeping.
	GlobalEnabled bool `json:"global_enabled"`

	// TypesProcessed lists record types whose sweep completed.
	TypesProcessed []string `json:"types_processed"`

	// TypesSkipped maps record types whose sweep aborted to the reason.
	// Data of a skipped type may remain under the previous key and the
	// rotation must be retried for it.
	TypesSkipped map[string]string `json:"types_skipped"`

	// RecordsMigrated counts records with at least one re-encrypted field.
	RecordsMigrated int `json:"records_migrated"`

	// FieldsRotated counts individual field values re-encrypted.
	FieldsRotated int `json:"fields_rotated"`

	// FieldsFailed counts field values that could not be re-encrypted
	// and were left untouched under the previous key.
	FieldsFailed int `json:"fields_failed"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
