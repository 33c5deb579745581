// Package router implements a small path-template router with an ordered,
// short-circuiting middleware chain.
//
// Routes are registered per HTTP method with templates like
// "/locations/departments/:id/cities". Each template is compiled into an
// anchored regular expression; ":name" segments capture one path segment.
// For every request the routes of its method are tried in registration order
// and the first match runs
//
//	global middlewares -> route middlewares -> terminal handler
//
// until one of them returns a non-nil [Response]. Errors and panics raised by
// handlers are reported as 500 responses; unknown methods get 405 and
// unmatched paths 404. All responses share the JSON [Envelope].
//
// [ValidateBody], [ValidateQuery] and [ValidateParams] adapt a
// validators.Schema to a middleware.
package router
