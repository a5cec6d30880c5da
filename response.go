package response

import (
	"fmt"

	"github.com/indigo-web/response/errors"
	"github.com/indigo-web/response/http/body"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/response/http/status"
)

const DefaultProtocol = "1.1"

// Response is an immutable HTTP response. Every With* method leaves the receiver intact
// and returns a modified copy instead, so a single instance may be safely shared. The
// only exception is the body stream: copies share it, as it's a handle with its own
// cursor rather than a value.
type Response struct {
	code     status.Code
	reason   string
	headers  *headers.Headers
	body     body.Stream
	protocol string
}

// New constructs a response. Without options, it's 200 OK with no headers, an empty
// temporary body and protocol version 1.1.
func New(opts ...Option) (*Response, error) {
	return build(newBlueprint().apply(opts))
}

func build(b *blueprint) (*Response, error) {
	r := new(Response)
	if err := r.setStatus(b.code, b.reason); err != nil {
		return nil, err
	}

	if b.body == nil {
		b.body = func() (body.Stream, error) {
			return body.Open(body.TempURI, body.ReadWrite)
		}
	}

	stream, err := b.body()
	if err != nil {
		return nil, err
	}

	r.body = stream
	r.headers = headers.NewPrealloc(len(b.headers))
	for _, header := range b.headers {
		if err = headers.Validate(header.Name, header.Values...); err != nil {
			return nil, err
		}

		r.headers.Set(header.Name, header.Values...)
	}

	r.protocol = b.protocol

	return r, nil
}

func (r *Response) StatusCode() status.Code {
	return r.code
}

// ReasonPhrase returns the reason phrase, which is either explicitly set or the default
// one for the status code. It's empty for codes missing in the registry.
func (r *Response) ReasonPhrase() string {
	return r.reason
}

// WithStatus returns a copy with the status code and reason phrase replaced. Empty phrase
// results in the default one for the code. In case both code and phrase are equal to
// the current ones, the receiver itself is returned.
func (r *Response) WithStatus(code status.Code, reason string) (*Response, error) {
	if code == r.code && reason == r.reason {
		return r, nil
	}

	clone := r.clone()
	if err := clone.setStatus(code, reason); err != nil {
		return nil, err
	}

	return clone, nil
}

// Headers returns a copy of all the headers in the order of their first insertion.
func (r *Response) Headers() []headers.Header {
	return r.headers.All()
}

// Header returns all the values of the header. The name is case-insensitive.
func (r *Response) Header(name string) []string {
	return r.headers.Get(name)
}

// HeaderLine returns all the values of the header joined by a comma.
func (r *Response) HeaderLine(name string) string {
	return r.headers.Line(name)
}

func (r *Response) HasHeader(name string) bool {
	return r.headers.Has(name)
}

// WithHeader returns a copy with the header values replaced.
func (r *Response) WithHeader(name string, values ...string) (*Response, error) {
	if err := headers.Validate(name, values...); err != nil {
		return nil, err
	}

	clone := r.clone()
	clone.headers.Set(name, values...)

	return clone, nil
}

// WithAddedHeader returns a copy with the values appended to the header.
func (r *Response) WithAddedHeader(name string, values ...string) (*Response, error) {
	if err := headers.Validate(name, values...); err != nil {
		return nil, err
	}

	clone := r.clone()
	clone.headers.Add(name, values...)

	return clone, nil
}

// WithoutHeader returns a copy without the header.
func (r *Response) WithoutHeader(name string) *Response {
	clone := r.clone()
	clone.headers.Remove(name)

	return clone
}

func (r *Response) Body() body.Stream {
	return r.body
}

// WithBody returns a copy with the stream adopted as the body. The stream isn't copied.
func (r *Response) WithBody(stream body.Stream) *Response {
	clone := r.clone()
	clone.body = stream

	return clone
}

func (r *Response) ProtocolVersion() string {
	return r.protocol
}

func (r *Response) WithProtocolVersion(version string) *Response {
	clone := r.clone()
	clone.protocol = version

	return clone
}

func (r *Response) setStatus(code status.Code, reason string) error {
	if !status.Valid(code) {
		return fmt.Errorf(
			"%w: `%d` must be in the range from %d to %d",
			errors.ErrInvalidStatusCode, code, status.MinCode, status.MaxCode,
		)
	}

	if len(reason) == 0 {
		reason = string(status.Text(code))
	}

	r.code, r.reason = code, reason

	return nil
}

// setContentTypeIfAbsent must be called only on the construction path, before the
// response is returned to the caller.
func (r *Response) setContentTypeIfAbsent(value string) {
	if !r.headers.Has(headers.ContentType) {
		r.headers.Set(headers.ContentType, value)
	}
}

func (r *Response) clone() *Response {
	clone := *r
	clone.headers = r.headers.Clone()

	return &clone
}
