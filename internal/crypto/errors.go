// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package crypto

import "errors"

var (
	// ErrKeyNotInitialized is returned when a cipher operation is called
	// with key material of the wrong size or no material at all. This is
	// fatal at startup: the system must not serve requests without a key.
	ErrKeyNotInitialized = errors.New("encryption key material is not initialized")

	// ErrMalformedEnvelope is returned when a value passed the structural
	// classifier but its segments cannot be decoded. Treated as data
	// corruption by callers: logged, original value preserved.
	ErrMalformedEnvelope = errors.New("malformed cipher envelope")

	// ErrAuthenticationFailed is returned on an AEAD tag mismatch, which
	// means either the wrong key epoch or tampering.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrEmptyPlaintext is returned when Encrypt is called with a value
	// that serializes to nothing. Empty values are skipped by the safe
	// wrappers and must never produce an envelope.
	ErrEmptyPlaintext = errors.New("refusing to encrypt empty plaintext")
)
