// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

// Package crypto implements the cipher engine: authenticated encryption
// and decryption of field values under borrowed key material, and the
// structural classifier that decides whether a value is already
// ciphertext.
//
// The package is stateless. Every call takes the key and IV seed as
// explicit parameters, so the same functions serve both key epochs during
// a rotation and are safe from any number of goroutines.
package crypto
