package router

import "net/http"

// Handler processes a request. Middlewares and terminal handlers share this
// signature: a nil Response means "continue with the next handler", a
// non-nil Response ends the chain and is sent to the client. A non-nil error
// ends the chain with a 500 response.
type Handler func(c *Context) (*Response, error)

// chain runs handlers in order and returns the first non-nil response. When
// every handler continues, the terminal handler produced no payload and an
// empty 200 envelope is returned.
func chain(c *Context, handlers ...[]Handler) (*Response, error) {
	for _, group := range handlers {
		for _, h := range group {
			resp, err := h(c)
			if err != nil {
				return nil, err
			}
			if resp != nil {
				return resp, nil
			}
		}
	}

	return JSON(http.StatusOK, nil), nil
}

// RequestLog is a global middleware that logs every dispatched request. It
// never short-circuits.
func RequestLog(c *Context) (*Response, error) {
	c.Logger().Debug().
		Str("method", c.Request.Method).
		Str("path", c.URL.Path).
		Msg("dispatching request")

	return nil, nil
}
