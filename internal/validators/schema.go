// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "regexp"

// Schema maps a field name to the rule the field's value must satisfy.
//
// A Schema is declared once (usually as a package-level variable next to the
// handlers that use it) and must not be mutated afterwards. Fields that are
// present in the validated value but absent from the Schema are ignored.
type Schema map[string]Rule

// Rule is the closed set of per-field constraints understood by [Validate].
//
// The set of implementations is sealed: only [String], [Number], [Boolean],
// [Array] and [Object] satisfy it.
type Rule interface {
	// IsRequired reports whether the field must be present and truthy.
	IsRequired() bool

	rule()
}

// String constrains a string value.
type String struct {
	Required bool

	// MinLength and MaxLength bound the number of characters (runes).
	MinLength *int
	MaxLength *int

	// Pattern must match somewhere in the value. Anchor it explicitly when the
	// whole value has to match.
	Pattern *regexp.Regexp

	// Enum lists the accepted values. Empty means any value.
	Enum []string
}

// Number constrains a numeric value.
type Number struct {
	Required bool

	Min *float64
	Max *float64

	// Integer rejects values with a fractional part.
	Integer bool

	// Positive rejects values lower than 1.
	Positive bool
}

// Boolean constrains a boolean value. Only the type is checked.
type Boolean struct {
	Required bool
}

// Array constrains a sequence value.
type Array struct {
	Required bool

	MinItems *int
	MaxItems *int

	// Items, when set, is applied to every element of the sequence.
	Items Rule
}

// Object constrains a keyed value.
type Object struct {
	Required bool

	// Properties, when set, is validated recursively against the value.
	Properties Schema
}

func (r String) IsRequired() bool  { return r.Required }
func (r Number) IsRequired() bool  { return r.Required }
func (r Boolean) IsRequired() bool { return r.Required }
func (r Array) IsRequired() bool   { return r.Required }
func (r Object) IsRequired() bool  { return r.Required }

func (String) rule()  {}
func (Number) rule()  {}
func (Boolean) rule() {}
func (Array) rule()   {}
func (Object) rule()  {}

// Ptr returns a pointer to v. It keeps optional bounds readable in schema
// literals:
//
//	validators.String{MinLength: validators.Ptr(4)}
func Ptr[T any](v T) *T {
	return &v
}
