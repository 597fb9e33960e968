// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package models

// NestedList describes an array-of-object sub-structure of a record whose
// entries carry their own encryptable fields, e.g. the "experience" list
// of a resume where each entry has a free-text description.
type NestedList struct {
	// Field is the name of the record field holding the array.
	Field string

	// Fields are the encryptable field names inside each array entry.
	Fields []string
}

// Descriptor is the typed traversal plan for one record type. The flat
// Fields list mirrors the per-type configuration; Nested lists require a
// dedicated traversal both on the write/read path and during key
// rotation, because the generic flat-field loop cannot reach them.
type Descriptor struct {
	// Type is the record-type name the descriptor applies to.
	Type string

	// Fields are the encryptable top-level field names.
	Fields []string

	// Nested are array-of-object sub-structures with encryptable entry
	// fields. Empty for flat record types.
	Nested []NestedList
}

// BuiltinDescriptors is the fixed table of known record types and their
// sensitive fields, used to seed the configuration at first boot and to
// drive nested traversal at runtime. Types added later through the admin
// surface get a flat descriptor derived from their configured field list.
var BuiltinDescriptors = map[string]Descriptor{
	"profiles": {
		Type:   "profiles",
		Fields: []string{"email", "phone", "address"},
	},
	"resumes": {
		Type:   "resumes",
		Fields: []string{"summary", "objective"},
		Nested: []NestedList{
			{Field: "experience", Fields: []string{"description", "achievements"}},
		},
	},
	"payment_methods": {
		Type:   "payment_methods",
		Fields: []string{"card_last4", "holder_name"},
	},
	"applications": {
		Type:   "applications",
		Fields: []string{"cover_letter"},
	},
}

// DescriptorFor returns the traversal plan for a record type. Known types
// get their built-in descriptor; unknown types fall back to a flat
// descriptor over the provided configured field list.
func DescriptorFor(recordType string, configuredFields []string) Descriptor {
	if desc, ok := BuiltinDescriptors[recordType]; ok {
		return desc
	}
	return Descriptor{Type: recordType, Fields: configuredFields}
}
