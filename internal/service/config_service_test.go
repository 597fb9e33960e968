// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/mock"
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/models"
)

func newTestConfigService(t *testing.T, ctrl *gomock.Controller) (*ConfigService, *mock.MockSettingsRepository) {
	t.Helper()
	mockSettings := mock.NewMockSettingsRepository(ctrl)
	return NewConfigService(mockSettings, logger.Nop()), mockSettings
}

// loadTestConfig primes the service with a stored configuration.
func loadTestConfig(t *testing.T, svc *ConfigService, mockSettings *mock.MockSettingsRepository, stored models.EncryptionSettings) {
	t.Helper()
	ctx := context.Background()

	modelsJSON, err := json.Marshal(stored.Models)
	require.NoError(t, err)

	mockSettings.EXPECT().SeedDefault(ctx, store.SettingEncryptionModels, gomock.Any()).Return(nil)
	mockSettings.EXPECT().SeedDefault(ctx, store.SettingEncryptionEnabled, gomock.Any()).Return(nil)
	mockSettings.EXPECT().Get(ctx, store.SettingEncryptionModels).Return(string(modelsJSON), nil)
	if stored.GlobalEnabled {
		mockSettings.EXPECT().Get(ctx, store.SettingEncryptionEnabled).Return("true", nil)
	} else {
		mockSettings.EXPECT().Get(ctx, store.SettingEncryptionEnabled).Return("false", nil)
	}

	require.NoError(t, svc.Load(ctx))
}

func TestConfigService_Load_SeedsAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())

	settings := svc.Settings()
	assert.True(t, settings.GlobalEnabled)
	assert.Contains(t, settings.Models, "profiles")
	assert.Contains(t, settings.Models, "resumes")

	mc, ok := svc.Get("profiles")
	require.True(t, ok)
	assert.True(t, mc.Enabled)
	assert.Equal(t, []string{"email", "phone", "address"}, mc.Fields)
}

func TestConfigService_Settings_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())

	settings := svc.Settings()
	settings.Models["profiles"] = models.ModelConfig{Fields: []string{"hacked"}, Enabled: false}
	settings.GlobalEnabled = false

	fresh := svc.Settings()
	assert.True(t, fresh.GlobalEnabled)
	assert.Equal(t, []string{"email", "phone", "address"}, fresh.Models["profiles"].Fields)
}

func TestConfigService_SetGlobalEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())
	ctx := context.Background()

	mockSettings.EXPECT().Upsert(ctx, store.SettingEncryptionEnabled, "false").Return(nil)

	require.NoError(t, svc.SetGlobalEnabled(ctx, false))
	assert.False(t, svc.Settings().GlobalEnabled)
}

func TestConfigService_SetGlobalEnabled_PersistErrorKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())
	ctx := context.Background()

	wantErr := errors.New("db down")
	mockSettings.EXPECT().Upsert(ctx, store.SettingEncryptionEnabled, "false").Return(wantErr)

	assert.ErrorIs(t, svc.SetGlobalEnabled(ctx, false), wantErr)
	assert.True(t, svc.Settings().GlobalEnabled, "snapshot must not get ahead of storage")
}

func TestConfigService_Update_AddsType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())
	ctx := context.Background()

	mockSettings.EXPECT().Upsert(ctx, store.SettingEncryptionModels, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value string) error {
			var persisted map[string]models.ModelConfig
			require.NoError(t, json.Unmarshal([]byte(value), &persisted))
			assert.Equal(t, []string{"serial"}, persisted["widgets"].Fields)
			return nil
		},
	)

	require.NoError(t, svc.Update(ctx, "widgets", models.ModelConfig{Fields: []string{"serial"}, Enabled: true}))

	mc, ok := svc.Get("widgets")
	require.True(t, ok)
	assert.True(t, mc.Enabled)
	assert.Equal(t, []string{"serial"}, mc.Fields)
}

func TestConfigService_Update_EmptyTypeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())

	assert.Error(t, svc.Update(context.Background(), "", models.ModelConfig{}))
}

func TestConfigService_ReplaceAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())
	ctx := context.Background()

	policies := map[string]models.ModelConfig{
		"profiles": {Fields: []string{"email"}, Enabled: false},
	}
	mockSettings.EXPECT().Upsert(ctx, store.SettingEncryptionModels, gomock.Any()).Return(nil)

	require.NoError(t, svc.ReplaceAll(ctx, policies))

	settings := svc.Settings()
	assert.Len(t, settings.Models, 1)
	assert.Equal(t, []string{"email"}, settings.Models["profiles"].Fields)
	assert.False(t, settings.Models["profiles"].Enabled)
}

func TestConfigService_Get_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings := newTestConfigService(t, ctrl)
	loadTestConfig(t, svc, mockSettings, models.DefaultEncryptionSettings())

	_, ok := svc.Get("unknown")
	assert.False(t, ok)
}
