// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package models

import (
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// KeySize is the length of the AES-256 key in bytes.
	KeySize = 32

	// IVSeedSize is the length of the nonce-derivation seed in bytes.
	IVSeedSize = 16
)

// KeyMaterial is a single immutable key epoch: the secret key, the seed
// used for per-call nonce derivation, and a monotonically increasing
// version. Exactly one KeyMaterial is active at a time; rotation produces
// a brand-new value and swaps an atomic reference, it never mutates an
// existing one.
//
// KeyMaterial is owned by the keyring; cipher operations only borrow it
// per call. The raw bytes must never appear in logs or API responses.
type KeyMaterial struct {
	// Version identifies the key epoch. Assigned by the key repository
	// as previous version + 1.
	Version int64

	// Key is the 256-bit AES secret.
	Key []byte

	// IVSeed is the 128-bit value whose fixed prefix is combined with a
	// random per-call salt to derive the GCM nonce.
	IVSeed []byte

	// CreatedAt is when this key epoch was generated.
	CreatedAt time.Time
}

// Validate checks that the key and seed have the expected sizes.
func (k KeyMaterial) Validate() error {
	if len(k.Key) != KeySize {
		return fmt.Errorf("key material: key length = %d, want %d", len(k.Key), KeySize)
	}
	if len(k.IVSeed) != IVSeedSize {
		return fmt.Errorf("key material: iv seed length = %d, want %d", len(k.IVSeed), IVSeedSize)
	}
	return nil
}

// KeyHex returns the hex encoding of the key for persistence.
// Only the store layer should call this; the value is as sensitive as the
// key itself.
func (k KeyMaterial) KeyHex() string {
	return hex.EncodeToString(k.Key)
}

// IVSeedHex returns the hex encoding of the IV seed for persistence.
func (k KeyMaterial) IVSeedHex() string {
	return hex.EncodeToString(k.IVSeed)
}

// KeyMaterialFromHex reconstructs KeyMaterial from its persisted hex form.
func KeyMaterialFromHex(version int64, keyHex, ivSeedHex string, createdAt time.Time) (KeyMaterial, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("key material: decode key: %w", err)
	}

	ivSeed, err := hex.DecodeString(ivSeedHex)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("key material: decode iv seed: %w", err)
	}

	material := KeyMaterial{
		Version:   version,
		Key:       key,
		IVSeed:    ivSeed,
		CreatedAt: createdAt,
	}

	return material, material.Validate()
}
