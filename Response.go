package jexpress

import (
	"io"
	"os"

	"github.com/forax/jexpress/consts"
	"github.com/forax/jexpress/core/jsn"
	"github.com/rohanthewiz/serr"
)

// Response is the interface for an HTTP response.
type Response interface {
	io.Writer
	io.StringWriter
	Body() []byte
	Header(string) string
	SetHeader(key string, value string)
	AppendHeader(key string, value string)
	ContentType(mime string, charset ...string)
	SetBody([]byte)
	SetStatus(int)
	Status() int
	Send(body string) error
	SendJSON(value any) error
	SendJSONText(json string) error
	SendFile(path string) error
}

// response represents the HTTP response used in the given context.
type response struct {
	body    []byte
	headers []Header
	status  uint16
}

// Body returns the response body.
func (res *response) Body() []byte {
	return res.body
}

// Header returns the header value for the given key.
func (res *response) Header(key string) string {
	for _, header := range res.headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}

// SetHeader sets the header value for the given key.
func (res *response) SetHeader(key string, value string) {
	for i, header := range res.headers {
		if header.Key == key {
			res.headers[i].Value = value
			return
		}
	}

	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// AppendHeader appends the value to the header field, keeping any value
// already set under the same key.
func (res *response) AppendHeader(key string, value string) {
	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// ContentType sets the Content-Type header to the MIME type, with an
// optional charset.
func (res *response) ContentType(mime string, charset ...string) {
	if len(charset) > 0 {
		mime += "; charset=" + charset[0]
	}
	res.SetHeader(consts.HeaderContentType, mime)
}

// Write implements the io.Writer interface by appending to the body.
func (res *response) Write(body []byte) (int, error) {
	res.body = append(res.body, body...)
	return len(body), nil
}

// WriteString implements the io.StringWriter interface.
func (res *response) WriteString(body string) (int, error) {
	res.body = append(res.body, body...)
	return len(body), nil
}

// SetBody replaces the response body with the new contents.
func (res *response) SetBody(body []byte) {
	res.body = body
}

// SetStatus sets the HTTP status code.
func (res *response) SetStatus(status int) {
	res.status = uint16(status)
}

// Status returns the HTTP status code.
func (res *response) Status() int {
	return int(res.status)
}

// Send sends a text response. The status defaults to 200 and the
// Content-Type to "text/html; charset=utf-8" when not set beforehand.
func (res *response) Send(body string) error {
	if res.Header(consts.HeaderContentType) == "" {
		res.ContentType(consts.MIMEHTML, "utf-8")
	}
	res.body = append(res.body, body...)
	return nil
}

// SendJSON serializes the value and sends it with the JSON content type.
// The value may be an Object, an Array, a plain slice, a scalar, or any
// type implementing jsn.Valuer or jsn.Record.
func (res *response) SendJSON(value any) error {
	body, err := jsn.Serialize(value)
	if err != nil {
		return serr.Wrap(err, "could not serialize response body")
	}
	return res.SendJSONText(body)
}

// SendJSONText sends an already-rendered JSON string with the correct
// Content-Type.
func (res *response) SendJSONText(json string) error {
	res.ContentType(consts.MIMEJSON, "utf-8")
	return res.Send(json)
}

// SendFile sends a file as the response, inferring the Content-Type from
// the file extension unless one was already set. A missing file becomes a
// 404 response with an HTML body; any other read failure is returned to
// the caller.
func (res *response) SendFile(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			res.SetStatus(consts.StatusNotFound)
			return res.Send(messagePage("Not Found " + path))
		}
		return serr.Wrap(err, "could not read file "+path)
	}

	if res.Header(consts.HeaderContentType) == "" {
		mime, textBased := mimeTypeForFile(path)
		if textBased {
			res.ContentType(mime, "utf-8")
		} else {
			res.ContentType(mime)
		}
	}

	res.SetStatus(consts.StatusOK)
	res.body = append(res.body, body...)
	return nil
}
