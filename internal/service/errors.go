// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrEncryptionWriteFailed is returned when a record cannot be
	// encrypted before persistence. Writes never proceed with plaintext
	// in fields that are configured for encryption.
	ErrEncryptionWriteFailed = errors.New("encryption failed, record not persisted")

	// ErrRotationInProgress is returned when a rotation is requested
	// while another run has not finished yet.
	ErrRotationInProgress = errors.New("key rotation already in progress")

	// ErrInvalidCredentials is returned on a failed admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is returned when a bearer token fails validation.
	ErrTokenInvalid = errors.New("token is invalid or expired")
)
