// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/fieldvault")
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("WORKERS_ROTATION_INTERVAL", "720h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://localhost/fieldvault", cfg.Storage.DB.DSN)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 720*time.Hour, cfg.Workers.RotationInterval)
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := parseFlags(fs, []string{
		"-a", ":8088",
		"-d", "file:test.db",
		"-driver", "sqlite3",
		"-token-sign-key", "k",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-rotation-interval", "24h",
	})

	assert.Equal(t, ":8088", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.Workers.RotationInterval)
}

func TestParseJSON_FileRoundTrip(t *testing.T) {
	jsonCfg := map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-key",
			"token_duration": "45m",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite3", "dsn": "file:vault.db"},
		},
		"server": map[string]any{
			"http_address":    ":7070",
			"request_timeout": "10s",
		},
	}

	data, err := json.Marshal(jsonCfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestValidate_RequiresDSNAndSignKey(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost/db"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg.App.TokenSignKey = "k"
	assert.NoError(t, cfg.validate())
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.DB.DSN = "dsn"
	cfg.Storage.DB.Driver = "oracle"
	cfg.App.TokenSignKey = "k"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "fieldvault", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
