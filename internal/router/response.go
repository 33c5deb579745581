// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
)

// Envelope is the JSON body of every response produced through the router.
//
//	{"message": <payload or null>, "error": "...", "details": [...]}
type Envelope struct {
	Message any                          `json:"message"`
	Error   string                       `json:"error,omitempty"`
	Details []validators.ValidationError `json:"details,omitempty"`
}

// Response is a finished HTTP response. A handler that returns a non-nil
// Response ends the chain.
type Response struct {
	Status int
	Header http.Header
	Body   Envelope
}

// JSON returns a response with message as the envelope payload.
func JSON(status int, message any) *Response {
	return &Response{Status: status, Body: Envelope{Message: message}}
}

// Error returns a response whose envelope carries a human readable message
// and an error description.
func Error(status int, message string, err error) *Response {
	body := Envelope{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	return &Response{Status: status, Body: body}
}

// Invalid returns a 400 response listing validation failures.
func Invalid(message string, details []validators.ValidationError) *Response {
	return &Response{
		Status: http.StatusBadRequest,
		Body:   Envelope{Message: message, Details: details},
	}
}

// NotFound is the response for paths no route matches.
func NotFound() *Response {
	return JSON(http.StatusNotFound, "Not found")
}

// MethodNotAllowed is the response for methods the router does not serve.
func MethodNotAllowed() *Response {
	return JSON(http.StatusMethodNotAllowed, "Method Not Allowed")
}

// InternalError is the response for failed or panicking handlers.
func InternalError(err error) *Response {
	return Error(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
}

// WithHeader sets a response header and returns the response.
func (resp *Response) WithHeader(key, value string) *Response {
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	resp.Header.Set(key, value)
	return resp
}

// Write serializes the response to w.
func (resp *Response) Write(w http.ResponseWriter) error {
	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	_, err := utils.WriteJSON(w, resp.Body, status)
	return err
}
