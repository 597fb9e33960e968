// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkotelnikov/fieldvault/internal/crypto"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/mock"
	"github.com/dkotelnikov/fieldvault/models"
)

type gateFixture struct {
	gate    *GateService
	cipher  crypto.CipherService
	keyring *mock.MockKeyring
	configs *mock.MockEncryptionConfigService
	active  models.KeyMaterial
}

func newGateFixture(t *testing.T, ctrl *gomock.Controller) *gateFixture {
	t.Helper()
	cipher := crypto.NewCipherService()
	mockKeyring := mock.NewMockKeyring(ctrl)
	mockConfigs := mock.NewMockEncryptionConfigService(ctrl)

	gate := NewGateService(cipher, mockKeyring, mockConfigs, &sync.RWMutex{}, logger.Nop())
	return &gateFixture{
		gate:    gate,
		cipher:  cipher,
		keyring: mockKeyring,
		configs: mockConfigs,
		active:  testMaterial(t, 1),
	}
}

func (f *gateFixture) expectActive() {
	f.keyring.EXPECT().Active().Return(f.active, nil).AnyTimes()
}

func (f *gateFixture) expectSettings(settings models.EncryptionSettings) {
	f.configs.EXPECT().Settings().Return(settings).AnyTimes()
	f.configs.EXPECT().Get(gomock.Any()).DoAndReturn(
		func(recordType string) (models.ModelConfig, bool) {
			mc, ok := settings.Models[recordType]
			return mc, ok
		},
	).AnyTimes()
}

func profilesOnlySettings(globalEnabled, typeEnabled bool) models.EncryptionSettings {
	return models.EncryptionSettings{
		Models: map[string]models.ModelConfig{
			"profiles": {Fields: []string{"email", "phone", "address"}, Enabled: typeEnabled},
		},
		GlobalEnabled: globalEnabled,
	}
}

func TestGateService_EncryptOnWrite_EncryptsConfiguredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	record := models.Record{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "+44 20 7946 0000",
	}

	encrypted, err := f.gate.EncryptOnWrite(ctx, "profiles", record)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", encrypted["name"], "unconfigured field must pass through")
	assert.True(t, f.cipher.IsEnvelope(encrypted["email"]))
	assert.True(t, f.cipher.IsEnvelope(encrypted["phone"]))

	// the caller's record is never mutated
	assert.Equal(t, "ada@example.com", record["email"])
}

func TestGateService_EncryptOnWrite_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	record := models.Record{"email": "ada@example.com"}

	encrypted, err := f.gate.EncryptOnWrite(ctx, "profiles", record)
	require.NoError(t, err)

	decrypted := f.gate.DecryptOnRead(ctx, "profiles", encrypted)
	assert.Equal(t, "ada@example.com", decrypted["email"])
}

func TestGateService_EncryptOnWrite_GlobalToggleOff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectSettings(profilesOnlySettings(false, true))
	ctx := context.Background()

	record := models.Record{"email": "ada@example.com"}

	out, err := f.gate.EncryptOnWrite(ctx, "profiles", record)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out["email"], "global off: plaintext passes through")
}

func TestGateService_EncryptOnWrite_TypeDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectSettings(profilesOnlySettings(true, false))
	ctx := context.Background()

	out, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out["email"])
}

func TestGateService_EncryptOnWrite_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	out, err := f.gate.EncryptOnWrite(ctx, "gadgets", models.Record{"secret": "plain"})
	require.NoError(t, err)
	assert.Equal(t, "plain", out["secret"])
}

func TestGateService_EncryptOnWrite_FailClosedWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectSettings(profilesOnlySettings(true, true))
	f.keyring.EXPECT().Active().Return(models.KeyMaterial{}, crypto.ErrKeyNotInitialized)
	ctx := context.Background()

	_, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "ada@example.com"})
	assert.ErrorIs(t, err, ErrEncryptionWriteFailed)
	assert.ErrorIs(t, err, crypto.ErrKeyNotInitialized)
}

func TestGateService_EncryptOnWrite_IdempotentOnEnvelopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	first, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "ada@example.com"})
	require.NoError(t, err)

	second, err := f.gate.EncryptOnWrite(ctx, "profiles", first)
	require.NoError(t, err)
	assert.Equal(t, first["email"], second["email"], "double encryption must be a no-op")
}

func TestGateService_EncryptOnWrite_SkipsEmptyAndMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	out, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "", "phone": nil})
	require.NoError(t, err)
	assert.Equal(t, "", out["email"])
	assert.Nil(t, out["phone"])
	assert.NotContains(t, out, "address")
}

func TestGateService_NestedListRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	f.expectSettings(models.EncryptionSettings{
		Models: map[string]models.ModelConfig{
			"resumes": {Fields: []string{"summary", "objective"}, Enabled: true},
		},
		GlobalEnabled: true,
	})
	ctx := context.Background()

	record := models.Record{
		"summary": "Systems engineer",
		"experience": []any{
			map[string]any{
				"company":     "Acme",
				"description": "Built the fulfillment pipeline",
			},
			map[string]any{
				"company":      "Initech",
				"description":  "TPS report automation",
				"achievements": "Employee of the month",
			},
		},
	}

	encrypted, err := f.gate.EncryptOnWrite(ctx, "resumes", record)
	require.NoError(t, err)

	assert.True(t, f.cipher.IsEnvelope(encrypted["summary"]))
	entries := encrypted["experience"].([]any)
	first := entries[0].(map[string]any)
	second := entries[1].(map[string]any)
	assert.Equal(t, "Acme", first["company"], "unconfigured nested field must pass through")
	assert.True(t, f.cipher.IsEnvelope(first["description"]))
	assert.True(t, f.cipher.IsEnvelope(second["description"]))
	assert.True(t, f.cipher.IsEnvelope(second["achievements"]))

	// input record is untouched, including nested entries
	originalEntries := record["experience"].([]any)
	assert.Equal(t, "Built the fulfillment pipeline", originalEntries[0].(map[string]any)["description"])

	decrypted := f.gate.DecryptOnRead(ctx, "resumes", encrypted)
	decryptedEntries := decrypted["experience"].([]any)
	assert.Equal(t, "Built the fulfillment pipeline", decryptedEntries[0].(map[string]any)["description"])
	assert.Equal(t, "Employee of the month", decryptedEntries[1].(map[string]any)["achievements"])
}

func TestGateService_DecryptOnRead_IgnoresToggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	ctx := context.Background()

	// encrypt while everything is on
	f.configs.EXPECT().Settings().Return(profilesOnlySettings(true, true))
	encrypted, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "ada@example.com"})
	require.NoError(t, err)

	// read back with the type disabled and the global toggle off
	f.configs.EXPECT().Get("profiles").Return(models.ModelConfig{
		Fields:  []string{"email", "phone", "address"},
		Enabled: false,
	}, true)

	decrypted := f.gate.DecryptOnRead(ctx, "profiles", encrypted)
	assert.Equal(t, "ada@example.com", decrypted["email"], "old ciphertext must stay readable after disabling")
}

func TestGateService_DecryptOnRead_TypeRemovedFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	ctx := context.Background()

	// encrypt while the type is still configured
	f.configs.EXPECT().Settings().Return(profilesOnlySettings(true, true))
	encrypted, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "ada@example.com"})
	require.NoError(t, err)

	// the type has since been dropped from the policy map entirely
	f.configs.EXPECT().Get("profiles").Return(models.ModelConfig{}, false)

	decrypted := f.gate.DecryptOnRead(ctx, "profiles", encrypted)
	assert.Equal(t, "ada@example.com", decrypted["email"],
		"a known type must keep decrypting through its built-in descriptor")

	// a type unknown to config and registry alike passes through as stored
	f.configs.EXPECT().Get("widgets").Return(models.ModelConfig{}, false)
	stored := models.Record{"serial": encrypted["email"]}
	assert.Equal(t, stored, f.gate.DecryptOnRead(ctx, "widgets", stored))
}

func TestGateService_DecryptOnRead_FailOpenOnTamper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	encrypted, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "ada@example.com"})
	require.NoError(t, err)

	// flip a ciphertext character, keeping the envelope shape valid
	envelope := encrypted["email"].(string)
	tampered := envelope[:len(envelope)-1]
	if strings.HasSuffix(envelope, "0") {
		tampered += "1"
	} else {
		tampered += "0"
	}
	encrypted["email"] = tampered

	decrypted := f.gate.DecryptOnRead(ctx, "profiles", encrypted)
	assert.Equal(t, tampered, decrypted["email"], "undecryptable value must be returned as stored")
}

func TestGateService_DecryptOnRead_PreviousKeyFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	oldMaterial := testMaterial(t, 1)
	newMaterial := testMaterial(t, 2)

	envelope, err := f.cipher.Encrypt("ada@example.com", oldMaterial.Key, oldMaterial.IVSeed)
	require.NoError(t, err)

	// active key rotated away; previous epoch still decrypts
	f.keyring.EXPECT().Active().Return(newMaterial, nil).AnyTimes()
	f.keyring.EXPECT().Previous().Return(oldMaterial, true).AnyTimes()

	decrypted := f.gate.DecryptOnRead(ctx, "profiles", models.Record{"email": envelope})
	assert.Equal(t, "ada@example.com", decrypted["email"])
}

func TestGateService_DecryptOnRead_NonStringValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	f.expectSettings(models.EncryptionSettings{
		Models: map[string]models.ModelConfig{
			"widgets": {Fields: []string{"dimensions"}, Enabled: true},
		},
		GlobalEnabled: true,
	})
	ctx := context.Background()

	encrypted, err := f.gate.EncryptOnWrite(ctx, "widgets", models.Record{
		"dimensions": map[string]any{"w": float64(3), "h": float64(4)},
	})
	require.NoError(t, err)
	assert.True(t, f.cipher.IsEnvelope(encrypted["dimensions"]))

	decrypted := f.gate.DecryptOnRead(ctx, "widgets", encrypted)
	assert.Equal(t, map[string]any{"w": float64(3), "h": float64(4)}, decrypted["dimensions"])
}

func TestGateService_DecryptOnReadAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGateFixture(t, ctrl)
	f.expectActive()
	f.keyring.EXPECT().Previous().Return(models.KeyMaterial{}, false).AnyTimes()
	f.expectSettings(profilesOnlySettings(true, true))
	ctx := context.Background()

	first, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "a@example.com"})
	require.NoError(t, err)
	second, err := f.gate.EncryptOnWrite(ctx, "profiles", models.Record{"email": "b@example.com"})
	require.NoError(t, err)

	decrypted := f.gate.DecryptOnReadAll(ctx, "profiles", []models.Record{first, second})
	require.Len(t, decrypted, 2)
	assert.Equal(t, "a@example.com", decrypted[0]["email"])
	assert.Equal(t, "b@example.com", decrypted[1]["email"])
}
