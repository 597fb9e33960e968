// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package models

// ModelConfig describes the encryption policy for one record type:
// which top-level field names are encryptable and whether new encryption
// is currently enabled for the type.
//
// The Enabled flag gates only *new* encryption. Decryption is always
// attempted on values that look like ciphertext, so data encrypted while
// a type was enabled stays readable after the type is disabled.
type ModelConfig struct {
	// Fields is the ordered list of encryptable top-level field names.
	Fields []string `json:"fields"`

	// Enabled controls whether writes for this type encrypt its fields.
	Enabled bool `json:"enabled"`
}

// EncryptionSettings is the full encryption configuration snapshot:
// the per-type policies plus the global toggle that gates all new
// encryption regardless of per-type settings.
//
// Snapshots are immutable once published. Updates build a fresh snapshot
// and replace the cached one wholesale, never mutate it in place.
type EncryptionSettings struct {
	// Models maps record-type name to its encryption policy.
	Models map[string]ModelConfig `json:"models"`

	// GlobalEnabled gates all new encryption. When false, writes pass
	// through untouched; reads still decrypt existing ciphertext.
	GlobalEnabled bool `json:"global_enabled"`
}

// Clone returns a deep copy of the settings so callers can build a new
// snapshot without touching the published one.
func (s EncryptionSettings) Clone() EncryptionSettings {
	out := EncryptionSettings{
		Models:        make(map[string]ModelConfig, len(s.Models)),
		GlobalEnabled: s.GlobalEnabled,
	}
	for name, mc := range s.Models {
		fields := make([]string, len(mc.Fields))
		copy(fields, mc.Fields)
		out.Models[name] = ModelConfig{Fields: fields, Enabled: mc.Enabled}
	}
	return out
}

// DefaultEncryptionSettings returns the configuration seeded at first
// boot: every built-in record type enabled with its descriptor's field
// list, global toggle on.
func DefaultEncryptionSettings() EncryptionSettings {
	settings := EncryptionSettings{
		Models:        make(map[string]ModelConfig, len(BuiltinDescriptors)),
		GlobalEnabled: true,
	}
	for name, desc := range BuiltinDescriptors {
		fields := make([]string, len(desc.Fields))
		copy(fields, desc.Fields)
		settings.Models[name] = ModelConfig{Fields: fields, Enabled: true}
	}
	return settings
}
