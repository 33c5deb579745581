package validators

import (
	"fmt"
	"strings"
)

// ValidationError describes a single rule violation.
//
// Field is the path of the offending value: nested object fields are joined
// with a dot and array elements carry their zero-based index in brackets,
// e.g. "items[0].name".
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface as "field: message".
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the outcome of [Validate]. Valid is true iff Errors is empty.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// Err returns nil for a valid result and an error listing every violation
// otherwise. The returned error matches [ErrValidationFailed].
func (r Result) Err() error {
	if r.Valid {
		return nil
	}

	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(msgs, "; "))
}

func (r *Result) add(errs ...ValidationError) {
	if len(errs) == 0 {
		return
	}
	r.Errors = append(r.Errors, errs...)
	r.Valid = false
}
