package render

import (
	"io"
	"log"
	"maps"
	"slices"
	"strconv"

	"github.com/indigo-web/response"
	"github.com/indigo-web/response/config"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/response/http/status"
	"github.com/indigo-web/utils/strcomp"
)

// minimalChunkSize defines the minimal size of a single chunk. In case it's less
// it'll be set to this value and a warning will be printed
const minimalChunkSize = 16

const (
	crlf    = "\r\n"
	colonsp = ": "
)

var chunkedFinalizer = []byte("0\r\n\r\n")

// Renderer serializes responses into their HTTP/1.x wire form. Renderer reuses its
// buffers between calls, therefore it must not be used concurrently.
type Renderer struct {
	buff []byte
	// chunkBuff isn't allocated until needed in order to save memory in cases,
	// where only sized bodies are being rendered
	chunkBuff      []byte
	chunkSize      int
	defaultHeaders []defaultHeader
}

func New(cfg config.Render) *Renderer {
	chunkSize := cfg.ChunkSize
	if chunkSize < minimalChunkSize {
		log.Printf("misconfiguration: chunk size (Render.ChunkSize) is set to %d, "+
			"however minimal possible value is %d. Setting it hard to %d\n",
			chunkSize, minimalChunkSize, minimalChunkSize,
		)

		chunkSize = minimalChunkSize
	}

	return &Renderer{
		buff:           make([]byte, 0, max(cfg.BufferSize, 0)),
		chunkSize:      chunkSize,
		defaultHeaders: processDefaultHeaders(cfg.DefaultHeaders),
	}
}

// Render writes the response into the writer. Sized bodies are sent from their
// beginning, unsized ones (pipes, sockets) from wherever they are, chunked unless
// Content-Length is set explicitly. Responses which must not have a body (1xx, 204
// and 304) are written without one, as well as without framing headers.
func (r *Renderer) Render(w io.Writer, resp *response.Response) error {
	defer r.clear()

	r.renderStatusLine(resp)
	hdrs := resp.Headers()
	code := resp.StatusCode()

	if !status.AllowsBody(code) {
		r.renderHeaders(hdrs, true)
		r.crlf()
		_, err := w.Write(r.buff)
		return err
	}

	r.renderHeaders(hdrs, false)
	stream := resp.Body()
	size, sized := stream.Size()
	switch {
	case sized:
		if err := stream.Rewind(); err != nil {
			return err
		}

		if !has(hdrs, headers.ContentLength) {
			r.renderContentLength(size)
		}
	case has(hdrs, headers.ContentLength):
		// the length was announced explicitly, so the body goes as-is
		sized = true
	case !has(hdrs, headers.TransferEncoding):
		r.renderKnownHeader(headers.TransferEncoding, "chunked")
	}

	r.crlf()

	if _, err := w.Write(r.buff); err != nil {
		return err
	}

	if sized {
		_, err := io.Copy(w, stream)
		return err
	}

	return r.writeChunkedBody(stream, w)
}

func (r *Renderer) renderStatusLine(resp *response.Response) {
	r.buff = append(r.buff, "HTTP/"...)
	r.buff = append(r.buff, resp.ProtocolVersion()...)
	r.sp()
	r.buff = strconv.AppendUint(r.buff, uint64(resp.StatusCode()), 10)
	r.sp()
	r.buff = append(r.buff, resp.ReasonPhrase()...)
	r.crlf()
}

func (r *Renderer) renderHeaders(hdrs []headers.Header, noFraming bool) {
	for _, header := range hdrs {
		if noFraming && isFraming(header.Name) {
			continue
		}

		for _, value := range header.Values {
			r.renderKnownHeader(header.Name, value)
		}
	}

	for _, header := range r.defaultHeaders {
		if !has(hdrs, header.Key) {
			r.buff = append(r.buff, header.Full...)
		}
	}
}

func (r *Renderer) writeChunkedBody(src io.Reader, w io.Writer) error {
	const (
		hexValueOffset = 8
		crlfSize       = 1 /* CR */ + 1 /* LF */
		buffOffset     = hexValueOffset + crlfSize
	)

	if len(r.chunkBuff) == 0 {
		r.chunkBuff = make([]byte, buffOffset+r.chunkSize+crlfSize)
	}

	for {
		n, err := src.Read(r.chunkBuff[buffOffset : len(r.chunkBuff)-crlfSize])

		if n > 0 {
			// the hex length is right-aligned against the CRLF preceding the data
			hex := strconv.AppendUint(r.chunkBuff[:0], uint64(n), 16)
			blankSpace := hexValueOffset - len(hex)
			copy(r.chunkBuff[blankSpace:], hex)
			copy(r.chunkBuff[hexValueOffset:], crlf)
			copy(r.chunkBuff[buffOffset+n:], crlf)

			if _, err := w.Write(r.chunkBuff[blankSpace : buffOffset+n+crlfSize]); err != nil {
				return err
			}
		}

		switch err {
		case nil:
		case io.EOF:
			_, err = w.Write(chunkedFinalizer)
			return err
		default:
			return err
		}
	}
}

func (r *Renderer) renderContentLength(value int64) {
	r.buff = append(r.buff, headers.ContentLength...)
	r.buff = append(r.buff, colonsp...)
	r.buff = strconv.AppendInt(r.buff, value, 10)
	r.crlf()
}

func (r *Renderer) renderKnownHeader(key, value string) {
	r.buff = append(r.buff, key...)
	r.buff = append(r.buff, colonsp...)
	r.buff = append(r.buff, value...)
	r.crlf()
}

func (r *Renderer) sp() {
	r.buff = append(r.buff, ' ')
}

func (r *Renderer) crlf() {
	r.buff = append(r.buff, crlf...)
}

func (r *Renderer) clear() {
	r.buff = r.buff[:0]
}

func has(hdrs []headers.Header, name string) bool {
	for _, header := range hdrs {
		if strcomp.EqualFold(header.Name, name) {
			return true
		}
	}

	return false
}

func isFraming(name string) bool {
	return strcomp.EqualFold(name, headers.ContentLength) ||
		strcomp.EqualFold(name, headers.TransferEncoding)
}

type defaultHeader struct {
	Key  string
	Full string
}

// processDefaultHeaders pre-renders default headers. Keys are sorted, so the output
// doesn't depend on the map iteration order.
func processDefaultHeaders(hdrs map[string]string) []defaultHeader {
	processed := make([]defaultHeader, 0, len(hdrs))

	for _, key := range slices.Sorted(maps.Keys(hdrs)) {
		full := key + colonsp + hdrs[key] + crlf
		processed = append(processed, defaultHeader{
			Key:  full[:len(key)],
			Full: full,
		})
	}

	return processed
}
