// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

// Table and column names shared by the repositories and kept in one place
// so queries and migrations stay in sync.
const (
	tableKeys     = "encryption_keys"
	tableSettings = "app_settings"
	tableRecords  = "records"
)

var (
	keyColumns     = []string{"version", "key_hex", "iv_seed_hex", "active", "created_at"}
	settingColumns = []string{"name", "value", "updated_at"}
	recordColumns  = []string{"id", "record_type", "doc", "created_at", "updated_at"}
)
