// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-admin-password-hash hex argon2id digest of the admin password
//	-admin-password-salt hex salt for the admin password digest
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rotation-interval scheduled key rotation interval (0 disables)
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ContinueOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var adminPasswordHash string
	var adminPasswordSalt string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var rotationInterval time.Duration

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Admin password argon2id digest (hex)")
	fs.StringVar(&adminPasswordSalt, "admin-password-salt", "", "Admin password salt (hex)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&rotationInterval, "rotation-interval", 0, "Scheduled key rotation interval (0 disables)")

	// ContinueOnError keeps unknown flags from killing the process during
	// tests; the error is intentionally ignored, env vars still apply.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			AdminPasswordHash: adminPasswordHash,
			AdminPasswordSalt: adminPasswordSalt,
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RotationInterval: rotationInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
