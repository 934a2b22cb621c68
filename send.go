package jexpress

import (
	"path/filepath"
	"strings"

	"github.com/forax/jexpress/consts"
	"github.com/rohanthewiz/element"
)

// mimeTypeForFile determines the MIME type from the file extension.
// textBased types get charset=utf-8 appended by the caller.
func mimeTypeForFile(filename string) (mime string, textBased bool) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".html", ".htm":
		return consts.MIMEHTML, true
	case ".css":
		return consts.MIMECSS, true
	case ".js":
		return consts.MIMEJS, true
	case ".json":
		return consts.MIMEJSON, true
	case ".xml":
		return consts.MIMEXML, true
	case ".txt", ".log":
		return consts.MIMETextPlain, true
	case ".csv":
		return consts.MIMECSV, true
	case ".svg":
		return consts.MIMESVG, true // SVG is XML-based
	case ".png":
		return consts.MIMEPNG, false
	case ".jpg", ".jpeg":
		return consts.MIMEJPEG, false
	case ".gif":
		return consts.MIMEGIF, false
	case ".ico":
		return "image/x-icon", false
	case ".webp":
		return "image/webp", false
	case ".pdf":
		return consts.MIMEPDF, false
	case ".zip":
		return consts.MIMEZIP, false
	case ".gz", ".gzip":
		return "application/gzip", false
	case ".mp3":
		return "audio/mpeg", false
	case ".mp4":
		return "video/mp4", false
	case ".woff":
		return "font/woff", false
	case ".woff2":
		return "font/woff2", false
	default:
		return consts.MIMEOctetStream, false
	}
}

// messagePage renders the minimal HTML page the framework emits for its
// own responses (no-match 404s, missing files).
func messagePage(message string) string {
	b := element.NewBuilder()
	b.Html().R(
		b.H2().T(message),
	)
	return b.String()
}
