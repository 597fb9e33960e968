// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"sync"

	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/crypto"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/store"
)

// Services aggregates all business-logic services behind their
// interfaces, ready to be handed to the transport layer and workers.
type Services struct {
	Auth     AuthService
	Keyring  Keyring
	Configs  EncryptionConfigService
	Gate     EncryptionGate
	Rotation RotationCoordinator
	Records  RecordService
}

// NewServices wires every service over the given storages. The gate and
// the rotation coordinator share one RWMutex so rotation sweeps exclude
// concurrent writes.
//
// Load must be called before serving traffic.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	cipher := crypto.NewCipherService()
	rotationLock := &sync.RWMutex{}

	keyring := NewKeyringService(storages.KeyRepository, cipher, log)
	configs := NewConfigService(storages.SettingsRepository, log)
	gate := NewGateService(cipher, keyring, configs, rotationLock, log)
	rotation := NewRotationService(cipher, keyring, configs, storages.RecordStorage, rotationLock, log)

	return &Services{
		Auth:     NewAdminAuthService(cfg.App, log),
		Keyring:  keyring,
		Configs:  configs,
		Gate:     gate,
		Rotation: rotation,
		Records:  NewRecordCRUDService(storages.RecordStorage, gate, log),
	}
}

// Load initializes stateful services: key material and encryption
// configuration.
func (s *Services) Load(ctx context.Context) error {
	if err := s.Keyring.Load(ctx); err != nil {
		return err
	}
	return s.Configs.Load(ctx)
}
