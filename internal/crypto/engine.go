// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
)

const (
	keySize    = 32
	ivSeedSize = 16
)

// cipherService is the private implementation of [CipherService].
type cipherService struct{}

// NewCipherService constructs the AES-256-GCM cipher engine.
func NewCipherService() CipherService {
	return &cipherService{}
}

// Encrypt implements [CipherService]. The nonce is the fixed 4-byte
// prefix of the IV seed followed by the fresh 8-byte salt, which makes it
// unique per call under the same key as long as salts do not collide.
func (c *cipherService) Encrypt(plain any, key, ivSeed []byte) (string, error) {
	if len(key) != keySize || len(ivSeed) != ivSeedSize {
		return "", ErrKeyNotInitialized
	}

	plaintext, err := serializePlain(plain)
	if err != nil {
		return "", err
	}
	if len(plaintext) == 0 {
		return "", ErrEmptyPlaintext
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	nonce := deriveNonce(ivSeed, salt)

	// Seal with nil destination returns ciphertext || auth tag; the tag
	// occupies the trailing tagSize bytes.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - tagSize

	env := envelope{
		salt:       salt,
		authTag:    sealed[split:],
		cipherText: sealed[:split],
	}

	return env.String(), nil
}

// Decrypt implements [CipherService].
func (c *cipherService) Decrypt(envelopeValue string, key, ivSeed []byte) (any, error) {
	if len(key) != keySize || len(ivSeed) != ivSeedSize {
		return nil, ErrKeyNotInitialized
	}

	env, err := parseEnvelope(envelopeValue)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := deriveNonce(ivSeed, env.salt)

	// Open expects ciphertext || auth tag concatenated.
	sealed := make([]byte, 0, len(env.cipherText)+len(env.authTag))
	sealed = append(sealed, env.cipherText...)
	sealed = append(sealed, env.authTag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return deserializePlain(plaintext), nil
}

// IsEnvelope implements [CipherService].
func (c *cipherService) IsEnvelope(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return envelopePattern.MatchString(s)
}

// SafeEncrypt implements [CipherService]. Empty strings, nil, and values
// that already are envelopes pass through unchanged: encryption is
// skipped, never applied to placeholders, and never applied twice.
func (c *cipherService) SafeEncrypt(value any, key, ivSeed []byte) (any, error) {
	if value == nil {
		return nil, nil
	}
	if s, ok := value.(string); ok {
		if s == "" {
			return value, nil
		}
		if envelopePattern.MatchString(s) {
			return value, nil
		}
	}
	return c.Encrypt(value, key, ivSeed)
}

// SafeDecrypt implements [CipherService]. Values that do not look like
// envelopes are returned unchanged.
func (c *cipherService) SafeDecrypt(value any, key, ivSeed []byte) (any, error) {
	if !c.IsEnvelope(value) {
		return value, nil
	}
	return c.Decrypt(value.(string), key, ivSeed)
}

// GenerateMaterial implements [CipherService].
func (c *cipherService) GenerateMaterial() ([]byte, []byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, nil, fmt.Errorf("generate key: %w", err)
	}

	ivSeed := make([]byte, ivSeedSize)
	if _, err := io.ReadFull(rand.Reader, ivSeed); err != nil {
		return nil, nil, fmt.Errorf("generate iv seed: %w", err)
	}

	return key, ivSeed, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// deriveNonce builds the 12-byte GCM nonce from the fixed IV seed prefix
// and the per-call salt.
func deriveNonce(ivSeed, salt []byte) []byte {
	nonce := make([]byte, 0, nonceSize)
	nonce = append(nonce, ivSeed[:seedPrefixSize]...)
	nonce = append(nonce, salt...)
	return nonce
}

// serializePlain turns the value into the byte form that gets encrypted:
// strings as-is, everything else as canonical JSON text.
func serializePlain(plain any) ([]byte, error) {
	if s, ok := plain.(string); ok {
		return []byte(s), nil
	}

	data, err := json.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("marshal plaintext: %w", err)
	}

	return data, nil
}

// deserializePlain attempts a JSON parse of the recovered bytes and falls
// back to the raw string, preserving non-JSON plaintext fidelity.
func deserializePlain(plaintext []byte) any {
	var value any
	if err := json.Unmarshal(plaintext, &value); err != nil {
		return string(plaintext)
	}
	return value
}
