package jexpress

import (
	"fmt"
	"time"
)

// RequestInfo is a middleware logging one line per request: method, path,
// final status and elapsed time. The status is read after the rest of the
// pipeline has run, so it reflects what actually went out.
func RequestInfo(ctx Context) error {
	start := time.Now()
	err := ctx.Next()

	fmt.Printf("%s | %s %s -> %d (%v)\n",
		time.Now().UTC().Format(time.RFC3339),
		ctx.Request().Method(), ctx.Request().Path(),
		ctx.Response().Status(), time.Since(start))

	return err
}
