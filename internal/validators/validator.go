// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

// Validate checks value against schema and returns every violation found.
//
// value is expected to be the output of encoding/json decoding into any
// (map[string]any, []any, string, float64, bool, nil) or a flat
// map[string]string such as parsed query or route parameters. A nil value is
// treated as "nothing supplied": one "Required field" error is reported per
// required field and nothing else is checked.
//
// Values that are nil, false, zero or empty strings count as absent. Optional
// absent fields are skipped, required ones are reported. Validate never
// panics and never stops at the first error.
func Validate(value any, schema Schema) Result {
	result := Result{Valid: true}

	if value == nil {
		for _, name := range fieldNames(schema) {
			if schema[name].IsRequired() {
				result.add(ValidationError{Field: name, Message: msgRequired})
			}
		}
		return result
	}

	fields, _ := asObject(value)
	for _, name := range fieldNames(schema) {
		result.add(validateField(name, fields[name], schema[name])...)
	}

	return result
}

// fieldNames returns schema keys in a stable order so that error lists are
// reproducible.
func fieldNames(schema Schema) []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func validateField(field string, value any, rule Rule) []ValidationError {
	if isFalsy(value) {
		if rule.IsRequired() {
			return []ValidationError{{Field: field, Message: msgRequired}}
		}
		return nil
	}

	return validateValue(field, value, rule)
}

// validateValue applies the check of rule to value. Unlike validateField it
// has no notion of absence, so array items such as null or 0 are checked too.
func validateValue(field string, value any, rule Rule) []ValidationError {
	switch r := rule.(type) {
	case String:
		return validateString(field, value, r)
	case Number:
		return validateNumber(field, value, r)
	case Boolean:
		return validateBoolean(field, value)
	case Array:
		return validateArray(field, value, r)
	case Object:
		return validateObject(field, value, r)
	}

	return nil
}

func validateString(field string, value any, r String) []ValidationError {
	s, ok := value.(string)
	if !ok {
		return []ValidationError{{Field: field, Message: msgNotString}}
	}

	var errs []ValidationError
	length := utf8.RuneCountInString(s)

	if r.MinLength != nil && length < *r.MinLength {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgMinLength, *r.MinLength)})
	}
	if r.MaxLength != nil && length > *r.MaxLength {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgMaxLength, *r.MaxLength)})
	}
	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		errs = append(errs, ValidationError{Field: field, Message: msgPattern})
	}
	if len(r.Enum) > 0 && !slices.Contains(r.Enum, s) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgEnum, strings.Join(r.Enum, ", "))})
	}

	return errs
}

func validateNumber(field string, value any, r Number) []ValidationError {
	n, ok := asNumber(value)
	if !ok {
		return []ValidationError{{Field: field, Message: msgNotNumber}}
	}

	var errs []ValidationError

	if r.Integer && n != math.Trunc(n) {
		errs = append(errs, ValidationError{Field: field, Message: msgNotInteger})
	}
	if r.Positive && n < 1 {
		errs = append(errs, ValidationError{Field: field, Message: msgNotPositive})
	}
	if r.Min != nil && n < *r.Min {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgMin, *r.Min)})
	}
	if r.Max != nil && n > *r.Max {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgMax, *r.Max)})
	}

	return errs
}

func validateBoolean(field string, value any) []ValidationError {
	if _, ok := value.(bool); !ok {
		return []ValidationError{{Field: field, Message: msgNotBoolean}}
	}
	return nil
}

func validateArray(field string, value any, r Array) []ValidationError {
	items, ok := value.([]any)
	if !ok {
		return []ValidationError{{Field: field, Message: msgNotArray}}
	}

	var errs []ValidationError

	if r.MinItems != nil && len(items) < *r.MinItems {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgMinItems, *r.MinItems)})
	}
	if r.MaxItems != nil && len(items) > *r.MaxItems {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(msgMaxItems, *r.MaxItems)})
	}
	if r.Items != nil {
		for i, item := range items {
			errs = append(errs, validateValue(fmt.Sprintf("%s[%d]", field, i), item, r.Items)...)
		}
	}

	return errs
}

func validateObject(field string, value any, r Object) []ValidationError {
	fields, ok := asObject(value)
	if !ok {
		return []ValidationError{{Field: field, Message: msgNotObject}}
	}
	if r.Properties == nil {
		return nil
	}

	nested := Validate(fields, r.Properties)
	errs := make([]ValidationError, 0, len(nested.Errors))
	for _, e := range nested.Errors {
		errs = append(errs, ValidationError{Field: field + "." + e.Field, Message: e.Message})
	}

	return errs
}

// isFalsy reports whether value counts as "not supplied".
func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	}

	if n, ok := asNumber(value); ok {
		return n == 0 || math.IsNaN(n)
	}

	return false
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, v != nil
	case map[string]string:
		if v == nil {
			return nil, false
		}
		fields := make(map[string]any, len(v))
		for k, s := range v {
			fields[k] = s
		}
		return fields, true
	}
	return nil, false
}
