// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package crypto

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

const (
	// saltSize is the length of the random per-call salt in bytes.
	saltSize = 8

	// tagSize is the length of the GCM authentication tag in bytes.
	tagSize = 16

	// nonceSize is the AES-GCM nonce length in bytes.
	nonceSize = 12

	// seedPrefixSize is how many leading bytes of the IV seed are
	// combined with the salt to form the nonce.
	seedPrefixSize = nonceSize - saltSize

	segmentCount = 3
)

// envelopePattern is the sole signal used to classify a string as already
// encrypted: exactly three colon-delimited lowercase-hex segments with a
// 16-char salt, a 32-char auth tag, and a nonempty even-length ciphertext.
// The fixed-length prefixes keep the false-positive rate against real
// plaintext negligible.
var envelopePattern = regexp.MustCompile(`^[0-9a-f]{16}:[0-9a-f]{32}:(?:[0-9a-f]{2})+$`)

// envelope is the parsed form of an encrypted field value.
type envelope struct {
	salt       []byte
	authTag    []byte
	cipherText []byte
}

// String serializes the envelope to its wire form
// hex(salt):hex(authTag):hex(cipherText).
func (e envelope) String() string {
	return hex.EncodeToString(e.salt) + ":" + hex.EncodeToString(e.authTag) + ":" + hex.EncodeToString(e.cipherText)
}

// parseEnvelope splits and decodes the three-segment wire form. Callers
// are expected to have checked the structural classifier first; a failure
// here means the value is corrupted.
func parseEnvelope(value string) (envelope, error) {
	parts := strings.Split(value, ":")
	if len(parts) != segmentCount {
		return envelope{}, fmt.Errorf("%w: %d segments, want %d", ErrMalformedEnvelope, len(parts), segmentCount)
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) != saltSize {
		return envelope{}, fmt.Errorf("%w: bad salt segment", ErrMalformedEnvelope)
	}

	authTag, err := hex.DecodeString(parts[1])
	if err != nil || len(authTag) != tagSize {
		return envelope{}, fmt.Errorf("%w: bad auth tag segment", ErrMalformedEnvelope)
	}

	cipherText, err := hex.DecodeString(parts[2])
	if err != nil || len(cipherText) == 0 {
		return envelope{}, fmt.Errorf("%w: bad ciphertext segment", ErrMalformedEnvelope)
	}

	return envelope{salt: salt, authTag: authTag, cipherText: cipherText}, nil
}
