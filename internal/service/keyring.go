// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dkotelnikov/fieldvault/internal/crypto"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/models"
)

// keyringEpochs is the immutable snapshot published by the keyring. The
// whole pair is swapped atomically so a reader never observes an active
// key from one epoch and a previous key from another.
type keyringEpochs struct {
	active   models.KeyMaterial
	previous *models.KeyMaterial
}

// KeyringService implements [Keyring] over a [store.KeyRepository].
type KeyringService struct {
	keys   store.KeyRepository
	cipher crypto.CipherService
	logger *logger.Logger

	epochs atomic.Pointer[keyringEpochs]
}

// NewKeyringService constructs a [Keyring]. Call Load before serving
// traffic.
func NewKeyringService(keys store.KeyRepository, cipher crypto.CipherService, logger *logger.Logger) *KeyringService {
	return &KeyringService{keys: keys, cipher: cipher, logger: logger}
}

// Load implements [Keyring]. When no active key row exists it generates
// fresh material and inserts it as version 1; the insert tolerates a
// concurrent instance winning the race, in which case the winner's
// material is adopted.
func (s *KeyringService) Load(ctx context.Context) error {
	active, err := s.keys.GetActive(ctx)
	if errors.Is(err, store.ErrNoActiveKey) {
		active, err = s.generateInitial(ctx)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("func", "KeyringService.Load").Msg("failed to load key material")
		return err
	}

	snapshot := &keyringEpochs{active: active}
	if previous, prevErr := s.keys.GetPrevious(ctx); prevErr == nil {
		snapshot.previous = &previous
	} else if !errors.Is(prevErr, store.ErrNoPreviousKey) {
		s.logger.Error().Err(prevErr).Str("func", "KeyringService.Load").Msg("failed to load previous key material")
		return prevErr
	}

	s.epochs.Store(snapshot)
	s.logger.Info().
		Int64("key_version", active.Version).
		Bool("has_previous", snapshot.previous != nil).
		Msg("key material loaded")
	return nil
}

func (s *KeyringService) generateInitial(ctx context.Context) (models.KeyMaterial, error) {
	key, ivSeed, err := s.cipher.GenerateMaterial()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("error generating initial key material: %w", err)
	}

	material := models.KeyMaterial{Key: key, IVSeed: ivSeed, CreatedAt: time.Now()}
	inserted, err := s.keys.InsertInitial(ctx, material)
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("error persisting initial key material: %w", err)
	}

	s.logger.Info().Int64("key_version", inserted.Version).Msg("initial key material generated")
	return inserted, nil
}

// Active implements [Keyring].
func (s *KeyringService) Active() (models.KeyMaterial, error) {
	snapshot := s.epochs.Load()
	if snapshot == nil {
		return models.KeyMaterial{}, crypto.ErrKeyNotInitialized
	}
	return snapshot.active, nil
}

// Previous implements [Keyring].
func (s *KeyringService) Previous() (models.KeyMaterial, bool) {
	snapshot := s.epochs.Load()
	if snapshot == nil || snapshot.previous == nil {
		return models.KeyMaterial{}, false
	}
	return *snapshot.previous, true
}

// Replace implements [Keyring]. The in-memory snapshot is swapped only
// after the database transaction commits, so a failed activation leaves
// the current epoch in place.
func (s *KeyringService) Replace(ctx context.Context, material models.KeyMaterial) (models.KeyMaterial, error) {
	current := s.epochs.Load()
	if current == nil {
		return models.KeyMaterial{}, crypto.ErrKeyNotInitialized
	}

	activated, err := s.keys.Activate(ctx, material)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "KeyringService.Replace").Msg("failed to activate key material")
		return models.KeyMaterial{}, err
	}

	retired := current.active
	s.epochs.Store(&keyringEpochs{active: activated, previous: &retired})
	s.logger.Info().
		Int64("key_version", activated.Version).
		Int64("previous_version", retired.Version).
		Msg("key material replaced")
	return activated, nil
}
