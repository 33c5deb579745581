package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/validators"
)

// Envelope messages returned by the validation middlewares.
const (
	MsgInvalidJSON   = "Invalid JSON"
	MsgWrongInput    = "Wrong input data"
	MsgInvalidQuery  = "Invalid query params"
	MsgInvalidParams = "Invalid route params"
)

// ValidateBody returns a middleware that decodes the JSON request body and
// validates it against schema. On success the decoded value is stored in
// Context.Body and the raw payload stays available to Context.Bind.
func ValidateBody(schema validators.Schema) Handler {
	return func(c *Context) (*Response, error) {
		raw, err := c.readBody()
		if err != nil {
			return Error(http.StatusBadRequest, MsgInvalidJSON, err), nil
		}

		var body any
		if err = json.Unmarshal(raw, &body); err != nil {
			c.Logger().Debug().Err(err).Msg("request body is not valid JSON")
			return Error(http.StatusBadRequest, MsgInvalidJSON, fmt.Errorf("decoding request body: %w", err)), nil
		}

		if result := validators.Validate(body, schema); !result.Valid {
			return Invalid(MsgWrongInput, result.Errors), nil
		}

		c.rawBody = raw
		c.Body = body
		return nil, nil
	}
}

// ValidateQuery returns a middleware that validates the query string pairs
// against schema. Values are validated as strings.
func ValidateQuery(schema validators.Schema) Handler {
	return func(c *Context) (*Response, error) {
		if result := validators.Validate(c.Query, schema); !result.Valid {
			return Invalid(MsgInvalidQuery, result.Errors), nil
		}
		return nil, nil
	}
}

// ValidateParams returns a middleware that validates route parameters
// against schema. Values are validated as strings.
func ValidateParams(schema validators.Schema) Handler {
	return func(c *Context) (*Response, error) {
		if result := validators.Validate(c.Params, schema); !result.Valid {
			return Invalid(MsgInvalidParams, result.Errors), nil
		}
		return nil, nil
	}
}
