// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements declarative, recursive validation of decoded
// JSON values against a [Schema].
//
// A Schema maps field names to rules (string, number, boolean, array and
// object constraints). [Validate] walks the value, accumulates every
// violation and reports them as a [Result]; it never fails on its own.
//
// Usage patterns:
//  1. Declare a Schema next to the handlers that accept the payload.
//  2. Attach it to a route through the router validation adapters, or
//  3. inject a [Validator] built with [NewSchemaValidator] into a service that
//     has to re-check its input.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SchemaValidator adapts a [Schema] to the [Validator] interface.
type SchemaValidator struct {
	schema Schema
}

// NewSchemaValidator returns a Validator that checks values against schema.
func NewSchemaValidator(schema Schema) Validator {
	return &SchemaValidator{schema: schema}
}

// Validate runs [Validate] and converts the result with [Result.Err]. When
// fields are given only the matching schema entries are checked; unknown
// field names are ignored.
func (v *SchemaValidator) Validate(_ context.Context, value any, fields ...string) error {
	schema := v.schema
	if len(fields) > 0 {
		schema = make(Schema, len(fields))
		for _, f := range fields {
			if rule, ok := v.schema[f]; ok {
				schema[f] = rule
			}
		}
	}

	return Validate(value, schema).Err()
}
