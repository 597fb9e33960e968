// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import "errors"

var (
	// ErrExecutingQuery wraps driver-level failures when a query cannot
	// be executed.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow wraps failures while scanning a single result row.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows wraps iteration errors detected after the result
	// set is exhausted.
	ErrScanningRows = errors.New("error scanning rows")

	// ErrNoActiveKey is returned when no active key material row exists
	// yet. The keyring generates and persists one exactly once at boot.
	ErrNoActiveKey = errors.New("no active key material found")

	// ErrNoPreviousKey is returned when no deactivated key epoch exists.
	ErrNoPreviousKey = errors.New("no previous key material found")

	// ErrSettingNotFound is returned when a settings row is absent.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrRecordNotFound is returned when a record lookup matches nothing.
	ErrRecordNotFound = errors.New("record not found")
)
