// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

// Package utils holds small shared helpers: JWT token handling and
// context keys used by the HTTP transport layer.
package utils

// ContextKey is the private type for request-context keys so they never
// collide with keys from other packages.
type ContextKey string

const (
	// SubjectCtxKey stores the authenticated principal extracted from the
	// bearer token.
	SubjectCtxKey ContextKey = "subject"

	// TraceIDCtxKey stores the per-request trace identifier.
	TraceIDCtxKey ContextKey = "trace_id"
)
