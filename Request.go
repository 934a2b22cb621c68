package jexpress

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/forax/jexpress/consts"
	"github.com/forax/jexpress/core/jsn"
	"github.com/forax/jexpress/core/rtr"
	"github.com/rohanthewiz/serr"
)

// ErrContentTypeMismatch means a JSON body was requested but the request's
// Content-Type is not 'application/json'.
var ErrContentTypeMismatch = errors.New("Content-Type is not 'application/json'")

// Request is the interface for HTTP requests.
type Request interface {
	Method() string
	Path() string
	Scheme() string
	Host() string
	Query() string
	Header(string) string
	Param(string) string
	BodyText() string
	BodyObject() (jsn.Object, error)
	BodyArray() (jsn.Array, error)
	BodyStream() io.Reader
}

// request represents the HTTP request used in the given context.
type request struct {
	reader *bufio.Reader
	scheme string
	host   string
	method string
	path   string
	query  string

	headers []Header
	body    []byte

	// components is the request path split once per request; every matcher
	// in the route scan works off this same split.
	components []string
	params     []rtr.Parameter
}

// Header returns the header value for the given key, matching
// case-insensitively per RFC 9110.
func (req *request) Header(key string) string {
	for _, header := range req.headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value
		}
	}

	return ""
}

// Host returns the requested host.
func (req *request) Host() string {
	return req.host
}

// Method returns the request method.
func (req *request) Method() string {
	return req.method
}

// Param retrieves a route parameter captured by the matched pattern,
// or "" when the parameter is absent.
func (req *request) Param(name string) string {
	for i := range len(req.params) {
		p := req.params[i]

		if p.Key == name {
			return p.Value
		}
	}

	return ""
}

// Path returns the requested path.
func (req *request) Path() string {
	return req.path
}

// Query returns the raw query string.
func (req *request) Query() string {
	return req.query
}

// Scheme returns either `http`, `https` or an empty string.
func (req request) Scheme() string {
	return req.scheme
}

// BodyText returns the request body as a string.
func (req *request) BodyText() string {
	return string(req.body)
}

// BodyStream returns the request body as a reader.
func (req *request) BodyStream() io.Reader {
	return bytes.NewReader(req.body)
}

// bodyJSON parses the body as JSON after checking the content type.
func (req *request) bodyJSON() (any, error) {
	if req.Header(consts.HeaderContentType) != consts.MIMEJSON {
		return nil, ErrContentTypeMismatch
	}

	return jsn.Parse(req.BodyText())
}

// BodyObject returns the request body parsed as a JSON object.
// It fails if the Content-Type is not 'application/json' or the body is
// not an object.
func (req *request) BodyObject() (jsn.Object, error) {
	value, err := req.bodyJSON()
	if err != nil {
		return nil, err
	}

	object, ok := value.(jsn.Object)
	if !ok {
		return nil, serr.New("request body is not a JSON object")
	}
	return object, nil
}

// BodyArray returns the request body parsed as a JSON array.
// It fails if the Content-Type is not 'application/json' or the body is
// not an array.
func (req *request) BodyArray() (jsn.Array, error) {
	value, err := req.bodyJSON()
	if err != nil {
		return nil, err
	}

	array, ok := value.(jsn.Array)
	if !ok {
		return nil, serr.New("request body is not a JSON array")
	}
	return array, nil
}
