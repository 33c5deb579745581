package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

// Context carries per-request state through the middleware chain. It is
// created fresh for each matched request and is never shared between
// requests.
type Context struct {
	Request *http.Request
	URL     *url.URL

	// Params holds the values of ":name" segments of the matched route.
	Params map[string]string

	// Query holds the query string pairs. When a key repeats the last value
	// wins. QueryKeys lists the keys in order of first appearance.
	Query     map[string]string
	QueryKeys []string

	// Body is set by ValidateBody to the decoded JSON payload.
	Body any

	rawBody []byte
}

func newContext(r *http.Request, params map[string]string) *Context {
	query, keys := parseQuery(r.URL.RawQuery)
	return &Context{
		Request:   r,
		URL:       r.URL,
		Params:    params,
		Query:     query,
		QueryKeys: keys,
	}
}

// Context returns the request's context.
func (c *Context) Context() context.Context {
	return c.Request.Context()
}

// WithContext replaces the request's context. Middlewares use it to hand
// derived values (e.g. the authenticated user) to later handlers.
func (c *Context) WithContext(ctx context.Context) {
	c.Request = c.Request.WithContext(ctx)
}

// Logger returns the request scoped logger.
func (c *Context) Logger() *logger.Logger {
	return logger.FromContext(c.Context())
}

// Bind decodes the JSON request body into dst. When ValidateBody already
// consumed the body the captured bytes are decoded again.
func (c *Context) Bind(dst any) error {
	if c.rawBody == nil {
		raw, err := c.readBody()
		if err != nil {
			return err
		}
		c.rawBody = raw
	}

	if err := json.Unmarshal(c.rawBody, dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

func (c *Context) readBody() ([]byte, error) {
	if c.Request.Body == nil {
		return []byte{}, nil
	}
	defer c.Request.Body.Close()

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	return raw, nil
}

// parseQuery splits a raw query string into a last-value-wins map and the
// list of distinct keys in first-appearance order. Malformed escapes are kept
// as literal text.
func parseQuery(raw string) (map[string]string, []string) {
	query := make(map[string]string)
	keys := make([]string, 0)

	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}

		k, v, _ := strings.Cut(pair, "=")
		key, value := unescapeQuery(k), unescapeQuery(v)

		if _, seen := query[key]; !seen {
			keys = append(keys, key)
		}
		query[key] = value
	}

	return query, keys
}

// unescapeQuery decodes s, keeping malformed escapes such as a lone "%" as
// literal text.
func unescapeQuery(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
