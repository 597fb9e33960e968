// SPDX-License-Identifier: Apache-2.0

// Package service contains the application business logic: key material
// lifecycle, per-type encryption configuration, the read/write encryption
// gate, online key rotation and admin authentication.
package service
