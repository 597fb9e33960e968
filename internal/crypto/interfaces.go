// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_service_mock.go -package=mock

// CipherService is the cipher engine contract. All methods are pure
// functions of (value, key material) with no shared mutable state, so a
// single instance is safe for concurrent use from any number of request
// handlers.
//
// SafeEncrypt and SafeDecrypt are the only entry points used by the
// higher layers in production paths; the raw Encrypt/Decrypt pair is for
// callers that have already applied the IsEnvelope guard themselves
// (e.g. the rotation sweep).
type CipherService interface {
	// Encrypt serializes plain (strings as-is, anything else to its
	// canonical JSON text) and encrypts it under key with AES-256-GCM,
	// deriving a unique nonce from the IV seed prefix and a fresh random
	// salt. Returns the three-segment hex envelope.
	Encrypt(plain any, key, ivSeed []byte) (string, error)

	// Decrypt parses the envelope, reconstructs the nonce from the
	// stored salt, verifies the authentication tag, and returns the
	// recovered value: the JSON-parsed form when the plaintext is valid
	// JSON, otherwise the raw string.
	Decrypt(envelopeValue string, key, ivSeed []byte) (any, error)

	// IsEnvelope reports whether value is a string matching the exact
	// envelope shape. Deterministic and side-effect free, safe to call
	// speculatively on every field of every record.
	IsEnvelope(value any) bool

	// SafeEncrypt is a no-op when value already is an envelope,
	// otherwise it encrypts. Skips empty strings and nil.
	SafeEncrypt(value any, key, ivSeed []byte) (any, error)

	// SafeDecrypt is a no-op when value is not an envelope, otherwise it
	// decrypts.
	SafeDecrypt(value any, key, ivSeed []byte) (any, error)

	// GenerateMaterial produces a fresh random 256-bit key and 128-bit
	// IV seed from the OS CSPRNG.
	GenerateMaterial() (key, ivSeed []byte, err error)
}
