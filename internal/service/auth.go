// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package service

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/utils"
	"github.com/dkotelnikov/fieldvault/models"
)

// Argon2id parameters for the admin password digest.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// adminSubject is the "sub" claim of every issued token. The admin
// surface has a single principal.
const adminSubject = "admin"

// AdminAuthService implements [AuthService] against the configured admin
// credential digest. The plaintext admin password is never stored or
// logged anywhere; only its argon2id digest lives in configuration.
type AdminAuthService struct {
	cfg    config.App
	logger *logger.Logger
}

// NewAdminAuthService constructs an [AuthService].
func NewAdminAuthService(cfg config.App, logger *logger.Logger) *AdminAuthService {
	return &AdminAuthService{cfg: cfg, logger: logger}
}

// Login implements [AuthService].
func (s *AdminAuthService) Login(ctx context.Context, password string) (models.Token, error) {
	expected, err := hex.DecodeString(s.cfg.AdminPasswordHash)
	if err != nil {
		return models.Token{}, fmt.Errorf("error decoding admin password hash: %w", err)
	}
	salt, err := hex.DecodeString(s.cfg.AdminPasswordSalt)
	if err != nil {
		return models.Token{}, fmt.Errorf("error decoding admin password salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	if subtle.ConstantTimeCompare(digest, expected) != 1 {
		s.logger.Warn().Str("func", "AdminAuthService.Login").Msg("failed admin login attempt")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, adminSubject, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "AdminAuthService.Login").Msg("failed to issue token")
		return models.Token{}, err
	}
	return token, nil
}

// ValidateToken implements [AuthService].
func (s *AdminAuthService) ValidateToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	return token, nil
}
