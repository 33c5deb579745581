package router

import "errors"

var (
	// ErrNoHandlers is returned by Router.Handle when a route is registered
	// without any handler.
	ErrNoHandlers = errors.New("route must have at least one handler")

	// ErrUnsupportedMethod is returned by Router.Handle for methods other than
	// GET, POST, PUT, PATCH and DELETE.
	ErrUnsupportedMethod = errors.New("unsupported http method")

	// ErrInvalidTemplate is returned when a route template does not compile.
	ErrInvalidTemplate = errors.New("invalid route template")

	// ErrHandlerPanic wraps a value recovered from a panicking handler.
	ErrHandlerPanic = errors.New("handler panicked")
)
