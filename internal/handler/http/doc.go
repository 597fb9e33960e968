// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// REST API: the record CRUD surface that feeds the encryption gate and
// the admin surface for encryption configuration and key rotation.
// Cross-cutting concerns such as authentication, request tracing, access
// logging, and response compression are handled in this package before
// requests are delegated to the service layer.
package http
