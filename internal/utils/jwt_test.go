// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("fieldvault", "admin", time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "fieldvault")
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", "admin", time.Hour, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("fieldvault", "", time.Hour, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("fieldvault", "admin", 0, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("fieldvault", "admin", time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("fieldvault", "admin", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-secret", "fieldvault")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("fieldvault", "admin", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "someone-else")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("fieldvault", "admin", -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "fieldvault")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}
