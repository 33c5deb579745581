// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnauthenticated is put into the envelope when the token cannot be
	// verified. The cause is logged, not returned.
	ErrUnauthenticated = errors.New("token is missing, expired or invalid")

	// ErrEmptyUpdate is returned for PATCH requests that change nothing.
	ErrEmptyUpdate = errors.New("no fields to update")
)

// Envelope messages of the resource handlers.
const (
	msgUnauthorized   = "Unauthorized"
	msgCategoryGone   = "Category deleted"
	msgDepartmentGone = "Department deleted"
	msgCityGone       = "City deleted"
)
