package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

const (
	HTTP  = "http"
	HTTPS = "https"
	HTTP1 = "HTTP/1.1"

	ProtocolTCP = "tcp"

	HTTPBadRequest = "HTTP/1.1 400 Bad Request\r\n\r\n"
	HTTPBadMethod  = "HTTP/1.1 405 Method Not Allowed\r\n\r\n"

	SchemeDelimiter = "://"
	Localhost       = "localhost"
	CRLF            = "\r\n"
)

const (
	StatusOK                  = 200
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

const (
	HeaderContentType      = "Content-Type"
	HeaderContentLength    = "Content-Length"
	HeaderDate             = "Date"
	HeaderLastModified     = "Last-Modified"
	HeaderLocation         = "Location"
	HeaderTransferEncoding = "Transfer-Encoding"
)

const (
	RuneColon       = ':'
	RuneNewLine     = '\n'
	RuneSingleSpace = ' '
	RuneFwdSlash    = '/'
	RuneQuestion    = '?'
)
