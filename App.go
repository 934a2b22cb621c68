package jexpress

import (
	"bufio"
	"strings"
	"sync"

	"github.com/forax/jexpress/consts"
	"github.com/forax/jexpress/core/rtr"
	"github.com/rohanthewiz/logger"
)

// Handler is called to process an HTTP request in order to build an HTTP
// response. A handler may finish the response itself or delegate to the
// rest of the pipeline with ctx.Next().
type Handler func(Context) error

// route pairs a compiled path matcher with its handler.
type route struct {
	matcher rtr.Matcher
	handler Handler
}

// App is an express-style application: an ordered route list plus the
// server plumbing that feeds it.
//
// Routes are attempted newest-first, so the most recent registration wins
// and Next() falls back to older ones. Registration is expected to happen
// on a single goroutine before Run is called; the list is then read
// concurrently by in-flight requests with no locking. Registering routes
// while serving is a precondition violation, not a supported operation.
type App struct {
	routes       []route
	contextPool  sync.Pool
	errorHandler func(Context, error)
}

// NewApp creates a new application.
func NewApp() *App {
	app := &App{
		errorHandler: func(ctx Context, err error) {
			logger.LogErr(err, "error handling "+ctx.Request().Method()+" "+ctx.Request().Path())
		},
	}

	app.contextPool.New = func() any { return app.newContext() }
	return app
}

// Use registers a handler for requests whose path matches the pattern.
// The pattern is compiled once here; segments like ":id" capture the
// corresponding request path segment.
func (app *App) Use(path string, handler Handler) {
	app.routes = append(app.routes, route{matcher: rtr.Compile(path), handler: handler})
}

// UseHandler registers a handler that matches every request path.
// It is equivalent to Use("/", handler).
func (app *App) UseHandler(handler Handler) {
	app.Use("/", handler)
}

// Get registers your function to be called when the given GET path has been requested.
func (app *App) Get(path string, callback Handler) {
	app.method(consts.MethodGet, path, callback)
}

// Post registers your function to be called when the given POST path has been requested.
func (app *App) Post(path string, callback Handler) {
	app.method(consts.MethodPost, path, callback)
}

// Put registers your function to be called when the given PUT path has been requested.
func (app *App) Put(path string, callback Handler) {
	app.method(consts.MethodPut, path, callback)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (app *App) Delete(path string, callback Handler) {
	app.method(consts.MethodDelete, path, callback)
}

// method wraps the callback with a method filter. A non-matching method
// falls through to older routes exactly like a non-matching path.
func (app *App) method(method string, path string, callback Handler) {
	app.Use(path, func(ctx Context) error {
		if strings.EqualFold(ctx.Request().Method(), method) {
			return callback(ctx)
		}
		return ctx.Next()
	})
}

// dispatch runs the pipeline for the prepared context, starting the route
// scan above the newest registration.
func (app *App) dispatch(ctx *context) error {
	ctx.routeIndex = len(app.routes)
	return ctx.Next()
}

// notFound is the terminal fallback once every route has been tried.
func (app *App) notFound(ctx Context) error {
	message := "no match " + ctx.Request().Method() + " " + ctx.Request().Path()
	ctx.Response().SetStatus(consts.StatusNotFound)
	return ctx.Response().Send(messagePage(message))
}

// newContext allocates a new context with the default state.
func (app *App) newContext() *context {
	return &context{
		app: app,
		request: request{
			reader:  bufio.NewReader(nil),
			body:    make([]byte, 0),
			headers: make([]Header, 0, 8),
			params:  make([]rtr.Parameter, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  200,
		},
	}
}
