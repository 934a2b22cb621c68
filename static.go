package jexpress

import (
	"path/filepath"
	"strings"

	"github.com/forax/jexpress/consts"
)

// StaticFiles returns a handler serving files from the given root
// directory, resolving the request path against it. A file that does not
// exist, or a path that climbs out of the root, produces a 404 page rather
// than an error.
//
// Register it under the prefix the files should appear at:
//
//	app.Get("/", jexpress.StaticFiles("public"))
func StaticFiles(root string) Handler {
	root = filepath.Clean(root)

	return func(ctx Context) error {
		path := filepath.Join(root, filepath.FromSlash(ctx.Request().Path()))

		// filepath.Join cleans ".." segments against the root, so a crafted
		// path can resolve outside it; serve only what stays under root.
		if path != root && !strings.HasPrefix(path, root+string(filepath.Separator)) {
			ctx.Response().SetStatus(consts.StatusNotFound)
			return ctx.Response().Send(messagePage("Not Found " + ctx.Request().Path()))
		}

		return ctx.Response().SendFile(path)
	}
}
