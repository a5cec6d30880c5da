package httptest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/utils/uf"
)

// Response is a rendered response, parsed back into its parts.
type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *headers.Headers
	Body    string
}

func NewResponse() Response {
	return Response{
		Headers: headers.New(),
	}
}

// Parse parses a single HTTP/1.x response. Bodies are decoded according to the
// framing headers. No pipelining is supported.
func Parse(raw string) (response Response, err error) {
	var found bool
	response = NewResponse()

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	if !found {
		return response, fmt.Errorf("bad status line: lacking reason phrase delimiter")
	}

	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: only status line is presented")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %s: no breaking CRLF", headerLine)
		}
		if len(headerLine) == 0 {
			break
		}

		key, value, err := parseHeaderLine(headerLine)
		if err != nil {
			return response, err
		}

		response.Headers.Add(key, value)
	}

	response.Body, err = processBody(response, raw)

	return response, err
}

func parseHeaderLine(line string) (key, value string, err error) {
	var found bool
	key, value, found = strings.Cut(line, ": ")
	if !found {
		return "", "", fmt.Errorf("bad header %s: no value", line)
	}

	if len(key) == 0 {
		return "", "", fmt.Errorf("bad header %s: empty name", line)
	}

	return key, value, nil
}

func processBody(response Response, data string) (string, error) {
	te := response.Headers.Get(headers.TransferEncoding)
	if len(te) > 0 {
		if len(te) != 1 || te[0] != "chunked" {
			return "", fmt.Errorf("httptest: cannot process encodings: %s", strings.Join(te, ","))
		}

		return processChunkedBody(data, response.Headers.Has("Trailer"))
	}

	contentLengths := response.Headers.Get(headers.ContentLength)
	switch len(contentLengths) {
	case 0:
		if len(data) == 0 {
			return "", nil
		}

		return "", fmt.Errorf("bad response: neither Transfer-Encoding or Content-Length are presented")
	case 1:
		length, err := strconv.Atoi(contentLengths[0])
		if err != nil {
			return "", err
		}

		return processPlainBody(data, length)
	default:
		return "", fmt.Errorf(
			"bad response: too many content-lengths: %s", strings.Join(contentLengths, ", "),
		)
	}
}

func processChunkedBody(data string, trailer bool) (string, error) {
	var buff []byte
	parser := chunkedbody.NewParser(chunkedbody.DefaultSettings())

	for len(data) > 0 {
		chunk, extra, err := parser.Parse(uf.S2B(data), trailer)
		switch err {
		case nil:
		case io.EOF:
			buff = append(buff, chunk...)
			if len(extra) > 0 {
				return "", fmt.Errorf("got extra data after the chunked body")
			}

			return string(buff), nil
		default:
			return "", fmt.Errorf("bad response: bad chunked body: %s", err)
		}

		buff = append(buff, chunk...)
		data = string(extra)
	}

	return "", fmt.Errorf("bad response: chunked body is not terminated")
}

func processPlainBody(data string, length int) (string, error) {
	switch {
	case len(data) > length:
		return "", fmt.Errorf("got extra body. Please note: no pipelining is supported")
	case len(data) < length:
		return "", fmt.Errorf("body is shorter than announced: %d < %d", len(data), length)
	}

	return data, nil
}
