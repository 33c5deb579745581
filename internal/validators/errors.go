package validators

import "errors"

// ErrValidationFailed is wrapped by [Result.Err] when at least one rule was
// violated.
var ErrValidationFailed = errors.New("validation failed")

// Messages attached to [ValidationError] values. They are part of the HTTP
// contract and are matched verbatim by clients.
const (
	msgRequired    = "Required field"
	msgNotString   = "Must be a string"
	msgMinLength   = "Must have at least %d characters"
	msgMaxLength   = "Must have maximum %d characters"
	msgPattern     = "Doesn't match the specified format"
	msgEnum        = "Must be one of: %s"
	msgNotNumber   = "Must be a number"
	msgNotInteger  = "Must be an integer number"
	msgNotPositive = "Must be a positive number"
	msgMin         = "Must be greater or equal than %v"
	msgMax         = "Must be lesser or equal than %v"
	msgNotBoolean  = "Must be boolean"
	msgNotArray    = "Must be an array"
	msgMinItems    = "Must have at least %d items"
	msgMaxItems    = "Must have maximum %d items"
	msgNotObject   = "Must be an object"
)
