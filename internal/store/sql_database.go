// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

// Package store implements the persistence layer: database connections
// for PostgreSQL and SQLite, and repositories for key material, encryption
// settings, and application records.
package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/logger"
)

// DB wraps the sql.DB connection with the statement builder configured
// for the active driver's placeholder format and a fallback logger.
type DB struct {
	*sql.DB

	// sq builds queries with the driver-appropriate placeholder format
	// ($1 for pgx, ? for sqlite3).
	sq sq.StatementBuilderType

	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers are "pgx" and "sqlite3".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
