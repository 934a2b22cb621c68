package jexpress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/forax/jexpress/consts"
	"github.com/forax/jexpress/core/rtr"
)

// Request performs a synthetic request and returns the response.
// This function keeps the response in memory so it's slightly slower than a real request.
// However it is very useful inside tests where you don't want to spin up a real web server.
func (app *App) Request(method string, url string, headers []Header, body io.Reader) Response {
	ctx := app.newContext()
	ctx.request.headers = headers

	if body != nil {
		data, err := io.ReadAll(body)
		if err == nil {
			ctx.request.body = data
		}
	}

	app.handleRequest(ctx, method, url, io.Discard)
	return ctx.Response()
}

type RunOpts struct {
	Verbose bool
	// StatusChan is a channel signalling that the server is about to enter its listen loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	StatusChan chan struct{}
}

// Run starts the server on the given address and blocks until an interrupt
// or termination signal arrives.
func (app *App) Run(address string, runOpts ...RunOpts) error {
	opts := RunOpts{}

	if len(runOpts) == 1 {
		opts.Verbose = runOpts[0].Verbose

		if runOpts[0].StatusChan != nil && cap(runOpts[0].StatusChan) < 1 && opts.Verbose {
			fmt.Println("Status channel capacity should be at least 1, or we may hang")
		}
		// Assign even if it is nil as we will do nil check on use
		opts.StatusChan = runOpts[0].StatusChan
	}

	listener, err := net.Listen(consts.ProtocolTCP, address)
	if err != nil {
		return err
	}

	defer listener.Close()

	go func() {
		if opts.StatusChan != nil {
			opts.StatusChan <- struct{}{} // Let the caller know we are running
		}

		if opts.Verbose {
			fmt.Printf("Server is running at %s\n", address)
		}

		for {
			conn, err := listener.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					// shutdown closed the listener; stop accepting
					return
				}
				continue
			}

			go app.handleConnection(conn)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

// handleConnection handles an accepted connection.
func (app *App) handleConnection(conn net.Conn) {
	var (
		ctx    = app.contextPool.Get().(*context)
		method string
		url    string
	)

	ctx.reader.Reset(conn)

	defer conn.Close()
	defer func() {
		// Error returns below can leave half-read request state behind;
		// never hand a dirty context to the next connection.
		ctx.clean()
		app.contextPool.Put(ctx)
	}()

	for {
		// Read the HTTP request line
		message, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)

		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]

		if !isValidRequestMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadMethod)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)

		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}

		url = message[space+1 : lastSpace]

		var contentLen int64
		var isChunked bool

		// Add headers until we meet an empty line
		for {
			message, err = ctx.reader.ReadString(consts.RuneNewLine)
			if err != nil {
				return
			}

			if message == consts.CRLF { // end of headers
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)

			if colon <= 0 {
				continue // header should include a colon
			}

			key := message[:colon]
			value := strings.TrimSuffix(strings.TrimPrefix(message[colon+1:], " "), consts.CRLF)

			ctx.request.headers = append(ctx.request.headers, Header{
				Key:   key,
				Value: value,
			})

			if strings.EqualFold(key, consts.HeaderContentLength) {
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			} else if strings.EqualFold(key, consts.HeaderTransferEncoding) && strings.Contains(strings.ToLower(value), "chunked") {
				isChunked = true
			}
		}

		// Read the request body if present
		if contentLen > 0 {
			body := make([]byte, contentLen)
			_, err = io.ReadFull(ctx.reader, body)
			if err != nil {
				return
			}
			ctx.request.body = append(ctx.request.body, body...)

		} else if isChunked {
			for {
				chunkSize, err := ctx.reader.ReadString(consts.RuneNewLine)
				if err != nil {
					return
				}

				// Chunk sizes are hex
				size, err := strconv.ParseInt(strings.TrimSpace(chunkSize), 16, 64)
				if err != nil {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}

				// Zero size chunk means end of body
				if size == 0 {
					_, err = ctx.reader.ReadString(consts.RuneNewLine)
					if err != nil {
						return
					}
					break
				}

				chunk := make([]byte, size)
				_, err = io.ReadFull(ctx.reader, chunk)
				if err != nil {
					return
				}
				ctx.request.body = append(ctx.request.body, chunk...)

				// Read chunk CRLF
				_, err = ctx.reader.ReadString(consts.RuneNewLine)
				if err != nil {
					return
				}
			}
		}

		app.handleRequest(ctx, method, url, conn)

		// Clean up the context for the next request on this connection
		ctx.clean()
	}
}

// handleRequest runs the pipeline for the given request and writes the
// response in wire format.
func (app *App) handleRequest(ctx *context, method string, url string, writer io.Writer) {
	ctx.request.method = method
	ctx.request.scheme, ctx.request.host, ctx.request.path, ctx.request.query = parseURL(url)
	ctx.request.components = rtr.SplitPath(ctx.request.path)

	err := app.dispatch(ctx)
	if err != nil {
		app.errorHandler(ctx, err)
		ctx.response.SetBody(nil)
		ctx.response.SetStatus(consts.StatusInternalServerError)
	}

	tmp := bytes.Buffer{}
	tmp.WriteString("HTTP/1.1 ")
	tmp.WriteString(strconv.Itoa(int(ctx.response.status)))
	tmp.WriteString("\r\nContent-Length: ")
	tmp.WriteString(strconv.Itoa(len(ctx.response.body)))
	tmp.WriteString("\r\n")

	for _, header := range ctx.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString("\r\n")
	}

	tmp.WriteString("\r\n")
	tmp.Write(ctx.response.body)
	_, _ = writer.Write(tmp.Bytes())
}
