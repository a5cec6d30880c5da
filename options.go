package response

import (
	"fmt"
	"os"

	"github.com/indigo-web/response/errors"
	"github.com/indigo-web/response/http/body"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/response/http/status"
)

// Option configures a response being constructed. Options are only collected when
// applied, the response itself is assembled afterward in a fixed order: status, body,
// headers and protocol, no matter in which order the options were passed.
type Option func(*blueprint)

type blueprint struct {
	code     status.Code
	reason   string
	body     func() (body.Stream, error)
	headers  []headers.Header
	protocol string
	jsonOpts JSONOptions
}

func newBlueprint() *blueprint {
	return &blueprint{
		code:     status.OK,
		protocol: DefaultProtocol,
		jsonOpts: DefaultJSONOptions,
	}
}

func (b *blueprint) apply(opts []Option) *blueprint {
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Code sets the status code. Defaults to 200 OK, unless the constructor says otherwise.
func Code(code status.Code) Option {
	return func(b *blueprint) {
		b.code = code
	}
}

// Reason sets a custom reason phrase. Empty phrase results in the default one for the code.
func Reason(phrase string) Option {
	return func(b *blueprint) {
		b.reason = phrase
	}
}

// Header sets the header. Headers are registered in the order they were passed, so for
// case-insensitively equal names the last one wins.
func Header(name string, values ...string) Option {
	return func(b *blueprint) {
		b.headers = append(b.headers, headers.Header{Name: name, Values: values})
	}
}

// Headers does the same as Header, but for multiple headers at once.
func Headers(hdrs ...headers.Header) Option {
	return func(b *blueprint) {
		b.headers = append(b.headers, hdrs...)
	}
}

// Body adopts the stream as the response body as is.
func Body(stream body.Stream) Option {
	return func(b *blueprint) {
		b.body = func() (body.Stream, error) {
			return stream, nil
		}
	}
}

// BodyURI opens a stream bound to the locator (see body.Open) in read-write mode.
func BodyURI(uri string) Option {
	return func(b *blueprint) {
		b.body = func() (body.Stream, error) {
			return body.Open(uri, body.ReadWrite)
		}
	}
}

// BodyFile adopts the already opened file as the response body.
func BodyFile(fd *os.File) Option {
	return func(b *blueprint) {
		b.body = func() (body.Stream, error) {
			if fd == nil {
				return nil, fmt.Errorf("%w: nil file passed as a body", errors.ErrInvalidArgument)
			}

			return body.FromFile(fd), nil
		}
	}
}

// Content sets the body to a temporary buffer holding the content.
func Content(content string) Option {
	return func(b *blueprint) {
		b.body = func() (body.Stream, error) {
			return body.FromString(content), nil
		}
	}
}

// Protocol sets the protocol version. It's stored verbatim, e.g. "1.1" or "2".
func Protocol(version string) Option {
	return func(b *blueprint) {
		b.protocol = version
	}
}

// JSON sets the encoding flags used by NewJSON.
func JSON(opts JSONOptions) Option {
	return func(b *blueprint) {
		b.jsonOpts = opts
	}
}
