// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/internal/validators"
	"github.com/dkotelnikov/fieldvault/models"
)

// ConfigService implements [EncryptionConfigService] over a
// [store.SettingsRepository].
//
// The per-type map and the global toggle live in two settings rows so the
// frequently-flipped toggle never rewrites the whole policy map. Both are
// combined into one immutable snapshot behind an atomic pointer; request
// paths read the snapshot without locking, while the writer mutex only
// serializes concurrent admin updates against each other.
type ConfigService struct {
	settings  store.SettingsRepository
	validator validators.Validator
	logger    *logger.Logger

	snapshot atomic.Pointer[models.EncryptionSettings]
	writeMu  sync.Mutex
}

// NewConfigService constructs an [EncryptionConfigService]. Call Load
// before serving traffic.
func NewConfigService(settings store.SettingsRepository, logger *logger.Logger) *ConfigService {
	return &ConfigService{
		settings:  settings,
		validator: validators.NewPolicyValidator(),
		logger:    logger,
	}
}

// Load implements [EncryptionConfigService]. Defaults are seeded with
// insert-if-absent semantics, so a restart never clobbers operator
// changes.
func (s *ConfigService) Load(ctx context.Context) error {
	defaults := models.DefaultEncryptionSettings()

	modelsJSON, err := json.Marshal(defaults.Models)
	if err != nil {
		return fmt.Errorf("error marshaling default encryption models: %w", err)
	}
	if err = s.settings.SeedDefault(ctx, store.SettingEncryptionModels, string(modelsJSON)); err != nil {
		return err
	}
	if err = s.settings.SeedDefault(ctx, store.SettingEncryptionEnabled, strconv.FormatBool(defaults.GlobalEnabled)); err != nil {
		return err
	}

	loaded, err := s.read(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "ConfigService.Load").Msg("failed to load encryption settings")
		return err
	}

	s.snapshot.Store(&loaded)
	s.logger.Info().
		Int("model_count", len(loaded.Models)).
		Bool("global_enabled", loaded.GlobalEnabled).
		Msg("encryption settings loaded")
	return nil
}

func (s *ConfigService) read(ctx context.Context) (models.EncryptionSettings, error) {
	out := models.EncryptionSettings{Models: map[string]models.ModelConfig{}}

	rawModels, err := s.settings.Get(ctx, store.SettingEncryptionModels)
	if err != nil {
		return models.EncryptionSettings{}, err
	}
	if err = json.Unmarshal([]byte(rawModels), &out.Models); err != nil {
		return models.EncryptionSettings{}, fmt.Errorf("error unmarshaling encryption models setting: %w", err)
	}

	rawEnabled, err := s.settings.Get(ctx, store.SettingEncryptionEnabled)
	if err != nil {
		return models.EncryptionSettings{}, err
	}
	if out.GlobalEnabled, err = strconv.ParseBool(rawEnabled); err != nil {
		return models.EncryptionSettings{}, fmt.Errorf("error parsing encryption enabled setting: %w", err)
	}

	return out, nil
}

// Settings implements [EncryptionConfigService].
func (s *ConfigService) Settings() models.EncryptionSettings {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return models.EncryptionSettings{Models: map[string]models.ModelConfig{}}
	}
	return snapshot.Clone()
}

// Get implements [EncryptionConfigService].
func (s *ConfigService) Get(recordType string) (models.ModelConfig, bool) {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return models.ModelConfig{}, false
	}
	mc, ok := snapshot.Models[recordType]
	return mc, ok
}

// SetGlobalEnabled implements [EncryptionConfigService]. The toggle is
// persisted first; the snapshot is only republished after the write
// succeeds, so the cache never gets ahead of storage.
func (s *ConfigService) SetGlobalEnabled(ctx context.Context, enabled bool) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.settings.Upsert(ctx, store.SettingEncryptionEnabled, strconv.FormatBool(enabled)); err != nil {
		s.logger.Error().Err(err).Str("func", "ConfigService.SetGlobalEnabled").Msg("failed to persist global toggle")
		return err
	}

	next := s.Settings()
	next.GlobalEnabled = enabled
	s.snapshot.Store(&next)
	s.logger.Info().Bool("global_enabled", enabled).Msg("encryption global toggle updated")
	return nil
}

// Update implements [EncryptionConfigService].
func (s *ConfigService) Update(ctx context.Context, recordType string, mc models.ModelConfig) error {
	if recordType == "" {
		return validators.ErrEmptyRecordType
	}
	if err := s.validator.Validate(ctx, mc); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Settings()
	next.Models[recordType] = mc
	return s.publishModels(ctx, next)
}

// ReplaceAll implements [EncryptionConfigService].
func (s *ConfigService) ReplaceAll(ctx context.Context, policies map[string]models.ModelConfig) error {
	if err := s.validator.Validate(ctx, policies); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Settings()
	next.Models = make(map[string]models.ModelConfig, len(policies))
	for name, mc := range policies {
		next.Models[name] = mc
	}
	return s.publishModels(ctx, next)
}

func (s *ConfigService) publishModels(ctx context.Context, next models.EncryptionSettings) error {
	modelsJSON, err := json.Marshal(next.Models)
	if err != nil {
		return fmt.Errorf("error marshaling encryption models: %w", err)
	}
	if err = s.settings.Upsert(ctx, store.SettingEncryptionModels, string(modelsJSON)); err != nil {
		s.logger.Error().Err(err).Str("func", "ConfigService.publishModels").Msg("failed to persist encryption models")
		return err
	}

	s.snapshot.Store(&next)
	s.logger.Info().Int("model_count", len(next.Models)).Msg("encryption models updated")
	return nil
}
