package jexpress

import (
	"errors"
)

// Context is the interface for a request and its response.
type Context interface {
	Bytes([]byte) error
	Error(...any) error
	Next() error
	Redirect(int, string) error
	Request() Request
	Response() Response
	Status(int) Context
	String(string) error
}

// context contains the request and response data.
type context struct {
	request
	response
	app *App

	// routeIndex is the dispatch cursor: the index just above the next
	// route to try. Next resumes the scan downward from here, so the most
	// recently registered route is always attempted first.
	routeIndex int
}

// Bytes adds the raw byte slice to the response body.
func (ctx *context) Bytes(body []byte) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// Next resumes the route scan at the fallback: the next older registration
// whose pattern matches the request path. When no older route matches, the
// terminal not-found handler runs. Captured parameters are replaced on
// every hop, so each handler sees the bindings of its own pattern.
func (ctx *context) Next() error {
	for i := ctx.routeIndex - 1; i >= 0; i-- {
		entry := ctx.app.routes[i]

		params, ok := entry.matcher.Match(ctx.request.components)
		if !ok {
			continue
		}

		ctx.routeIndex = i
		ctx.request.params = params
		return entry.handler(ctx)
	}

	ctx.routeIndex = -1
	return ctx.app.notFound(ctx)
}

// clean resets all per-request state. It must run before a context goes
// back to the pool or serves another request on the same connection, no
// matter how the previous request ended — a connection that dies mid-read
// must not leak its headers or body into the next request.
func (ctx *context) clean() {
	ctx.request.headers = ctx.request.headers[:0]
	ctx.request.body = ctx.request.body[:0]
	ctx.request.params = ctx.request.params[:0]
	ctx.request.components = nil
	ctx.response.headers = ctx.response.headers[:0]
	ctx.response.body = ctx.response.body[:0]
	ctx.response.status = 200
	ctx.routeIndex = 0
}

// Redirect redirects the client to a different location
// with the specified status code.
func (ctx *context) Redirect(status int, location string) error {
	ctx.response.SetStatus(status)
	ctx.response.SetHeader("Location", location)
	return nil
}

// Request returns the HTTP request.
func (ctx *context) Request() Request {
	return &ctx.request
}

// Response returns the HTTP response.
func (ctx *context) Response() Response {
	return &ctx.response
}

// Status sets the HTTP status of the response
// and returns the context for method chaining.
func (ctx *context) Status(status int) Context {
	ctx.response.SetStatus(status)
	return ctx
}

// String adds the given string to the response body.
func (ctx *context) String(body string) error {
	ctx.response.body = append(ctx.response.body, body...)
	return nil
}
