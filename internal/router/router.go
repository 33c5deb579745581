// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"slices"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/rs/zerolog"
)

var methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Router matches requests against compiled route templates and runs the
// matching route's middleware chain.
//
// Routes are tried in registration order and the first structural match
// wins: "/users/me" registered after "/users/:id" is never reached for GET.
// All registration must happen before the router starts serving; after that
// the route table is only read and can be shared between goroutines.
type Router struct {
	routes      map[string][]*CompiledRoute
	middlewares []Handler

	logger *logger.Logger
}

// New returns an empty Router.
func New(log *logger.Logger) *Router {
	routes := make(map[string][]*CompiledRoute, len(methods))
	for _, m := range methods {
		routes[m] = nil
	}

	return &Router{
		routes: routes,
		logger: log,
	}
}

// Use appends global middlewares. They run, in order, before the
// middlewares of every matched route.
func (rt *Router) Use(middlewares ...Handler) *Router {
	rt.middlewares = append(rt.middlewares, middlewares...)
	return rt
}

// Handle registers a route. The last handler is the terminal handler, any
// preceding ones are route middlewares.
func (rt *Router) Handle(method, template string, handlers ...Handler) error {
	if len(handlers) == 0 {
		return fmt.Errorf("%s %s: %w", method, template, ErrNoHandlers)
	}
	if _, ok := rt.routes[method]; !ok {
		return fmt.Errorf("%s %s: %w", method, template, ErrUnsupportedMethod)
	}

	route, err := Compile(template)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, template, err)
	}

	last := len(handlers) - 1
	route.Middlewares = slices.Clone(handlers[:last])
	route.Handler = handlers[last]

	rt.routes[method] = append(rt.routes[method], route)
	rt.logger.Debug().
		Str("method", method).
		Str("template", template).
		Str("pattern", route.Pattern.String()).
		Msg("route registered")

	return nil
}

// Get registers a GET route. It panics if the route cannot be registered.
func (rt *Router) Get(template string, handlers ...Handler) *Router {
	return rt.mustHandle(http.MethodGet, template, handlers)
}

// Post registers a POST route. It panics if the route cannot be registered.
func (rt *Router) Post(template string, handlers ...Handler) *Router {
	return rt.mustHandle(http.MethodPost, template, handlers)
}

// Put registers a PUT route. It panics if the route cannot be registered.
func (rt *Router) Put(template string, handlers ...Handler) *Router {
	return rt.mustHandle(http.MethodPut, template, handlers)
}

// Patch registers a PATCH route. It panics if the route cannot be registered.
func (rt *Router) Patch(template string, handlers ...Handler) *Router {
	return rt.mustHandle(http.MethodPatch, template, handlers)
}

// Delete registers a DELETE route. It panics if the route cannot be registered.
func (rt *Router) Delete(template string, handlers ...Handler) *Router {
	return rt.mustHandle(http.MethodDelete, template, handlers)
}

func (rt *Router) mustHandle(method, template string, handlers []Handler) *Router {
	if err := rt.Handle(method, template, handlers...); err != nil {
		panic(err)
	}
	return rt
}

// Dispatch finds the route for r and runs its chain: global middlewares,
// route middlewares, then the terminal handler. Handler errors and panics
// are turned into a 500 response. Dispatch always returns a response.
func (rt *Router) Dispatch(r *http.Request) *Response {
	routes, ok := rt.routes[r.Method]
	if !ok {
		return MethodNotAllowed()
	}

	for _, route := range routes {
		if params, ok := route.Match(r.URL.Path); ok {
			return rt.run(newContext(r, params), route)
		}
	}

	return NotFound()
}

func (rt *Router) run(c *Context, route *CompiledRoute) (resp *Response) {
	log := rt.requestLogger(c.Request)

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
			log.Error().Err(err).Bytes("stack", debug.Stack()).Msg("recovered from handler panic")
			resp = InternalError(err)
		}
	}()

	resp, err := chain(c, rt.middlewares, route.Middlewares, []Handler{route.Handler})
	if err != nil {
		log.Err(err).
			Str("method", c.Request.Method).
			Str("path", c.URL.Path).
			Msg("handler failed")
		return InternalError(err)
	}

	return resp
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if zerolog.Ctx(r.Context()).GetLevel() == zerolog.Disabled {
		r = r.WithContext(rt.logger.WithContext(r.Context()))
	}

	if err := rt.Dispatch(r).Write(w); err != nil {
		rt.requestLogger(r).Err(err).Msg("error writing response")
	}
}

func (rt *Router) requestLogger(r *http.Request) *logger.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return &logger.Logger{Logger: *l}
	}
	return rt.logger
}
