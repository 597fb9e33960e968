// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestIsEnvelope_Classifier(t *testing.T) {
	svc := NewCipherService()

	valid := strings.Repeat("ab", 8) + ":" + strings.Repeat("cd", 16) + ":" + "deadbeef"

	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"valid envelope", valid, true},
		{"plain text", "hello world", false},
		{"empty string", "", false},
		{"two segments", "abcdef:abcdef", false},
		{"four segments", valid + ":ff", false},
		{"short salt", "abcd:" + strings.Repeat("cd", 16) + ":deadbeef", false},
		{"short tag", strings.Repeat("ab", 8) + ":cdcd:deadbeef", false},
		{"empty ciphertext", strings.Repeat("ab", 8) + ":" + strings.Repeat("cd", 16) + ":", false},
		{"odd length ciphertext", strings.Repeat("ab", 8) + ":" + strings.Repeat("cd", 16) + ":abc", false},
		{"uppercase hex", strings.ToUpper(valid), false},
		{"non hex salt", strings.Repeat("zz", 8) + ":" + strings.Repeat("cd", 16) + ":deadbeef", false},
		{"not a string", 42, false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.IsEnvelope(tc.value); got != tc.want {
				t.Fatalf("IsEnvelope(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestParseEnvelope_RoundTrip(t *testing.T) {
	env := envelope{
		salt:       []byte{1, 2, 3, 4, 5, 6, 7, 8},
		authTag:    []byte{9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
		cipherText: []byte{0xde, 0xad, 0xbe, 0xef},
	}

	parsed, err := parseEnvelope(env.String())
	if err != nil {
		t.Fatalf("parseEnvelope error: %v", err)
	}
	if parsed.String() != env.String() {
		t.Fatalf("round trip mismatch: %q != %q", parsed.String(), env.String())
	}
}

func TestParseEnvelope_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"abc",
		"ab:cd",
		"ab:cd:ef:01",
		"abcd:" + strings.Repeat("cd", 16) + ":deadbeef", // short salt
		strings.Repeat("ab", 8) + ":cd:deadbeef",         // short tag
		strings.Repeat("ab", 8) + ":" + strings.Repeat("cd", 16) + ":", // no ciphertext
	}

	for _, value := range malformed {
		if _, err := parseEnvelope(value); !errors.Is(err, ErrMalformedEnvelope) {
			t.Fatalf("parseEnvelope(%q): expected ErrMalformedEnvelope, got %v", value, err)
		}
	}
}
