// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

const paramSegment = `([^/]+)`

// CompiledRoute is a route template turned into an anchored regular
// expression, together with the handlers registered for it.
//
// Invariant: len(ParamNames) equals the number of capture groups in Pattern.
type CompiledRoute struct {
	Pattern    *regexp.Regexp
	ParamNames []string

	// Middlewares run in order before Handler.
	Middlewares []Handler
	Handler     Handler
}

// Compile turns a path template such as "/users/:id/posts" into a
// CompiledRoute without handlers.
//
// Segments starting with ':' become a single-segment capture group named by
// the rest of the segment, and a name may appear only once. Every other
// segment is copied into the pattern as is, so regex metacharacters in literal
// segments keep their regex meaning ("/v1.0" also matches "/v1x0").
func Compile(template string) (*CompiledRoute, error) {
	segments := strings.Split(template, "/")
	paramNames := make([]string, 0)

	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			if slices.Contains(paramNames, name) {
				return nil, fmt.Errorf("%w %q: duplicate parameter %q", ErrInvalidTemplate, template, name)
			}
			paramNames = append(paramNames, name)
			segments[i] = paramSegment
		}
	}

	pattern, err := regexp.Compile("^" + strings.Join(segments, "/") + "$")
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTemplate, template, err)
	}

	if pattern.NumSubexp() != len(paramNames) {
		return nil, fmt.Errorf("%w %q: literal segments must not contain capture groups", ErrInvalidTemplate, template)
	}

	return &CompiledRoute{
		Pattern:    pattern,
		ParamNames: paramNames,
	}, nil
}

// Match reports whether path matches the route and returns the extracted
// parameters keyed by name.
func (cr *CompiledRoute) Match(path string) (map[string]string, bool) {
	match := cr.Pattern.FindStringSubmatch(path)
	if match == nil {
		return nil, false
	}

	params := make(map[string]string, len(cr.ParamNames))
	for i, name := range cr.ParamNames {
		params[name] = match[i+1]
	}

	return params, true
}
