package response

import (
	"github.com/indigo-web/response/http/body"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/response/http/mime"
	"github.com/indigo-web/response/http/status"
)

// NewEmpty returns a 204 No Content response with a read-only empty body. No headers
// are set by default.
func NewEmpty(opts ...Option) (*Response, error) {
	b := newBlueprint()
	b.code = status.NoContent
	b.apply(opts)
	b.body = func() (body.Stream, error) {
		return body.Open(body.TempURI, body.Read)
	}

	return build(b)
}

// NewHTML returns a 200 OK response with the html as a body. Content-Type defaults to
// text/html; charset=UTF-8.
func NewHTML(html string, opts ...Option) (*Response, error) {
	return withContent(html, mime.HTML, opts)
}

// NewText returns a 200 OK response with the text as a body. Content-Type defaults to
// text/plain; charset=UTF-8.
func NewText(text string, opts ...Option) (*Response, error) {
	return withContent(text, mime.Plain, opts)
}

// NewXML returns a 200 OK response with the xml as a body. Content-Type defaults to
// application/xml; charset=UTF-8.
func NewXML(xml string, opts ...Option) (*Response, error) {
	return withContent(xml, mime.XML, opts)
}

// NewRedirect returns a 302 Found response pointing to the uri. The Location header
// always takes the uri, even if passed via options.
func NewRedirect(uri string, opts ...Option) (*Response, error) {
	b := newBlueprint()
	b.code = status.Found
	b.apply(opts)
	b.body = nil
	b.headers = append(b.headers, headers.Header{Name: headers.Location, Values: []string{uri}})

	return build(b)
}

func withContent(content string, contentType mime.MIME, opts []Option) (*Response, error) {
	b := newBlueprint().apply(opts)
	b.body = func() (body.Stream, error) {
		return body.FromString(content), nil
	}

	return buildWithContentType(b, contentType)
}

func buildWithContentType(b *blueprint, contentType mime.MIME) (*Response, error) {
	r, err := build(b)
	if err != nil {
		return nil, err
	}

	r.setContentTypeIfAbsent(mime.WithCharset(contentType, mime.UTF8))

	return r, nil
}
