package response

import (
	"github.com/indigo-web/response/http/body"
	"github.com/indigo-web/response/http/mime"
	"github.com/indigo-web/response/internal/jsonenc"
)

// JSONOptions is a bitmask of JSON encoder flags.
type JSONOptions = jsonenc.Options

const (
	JSONHexTag                   = jsonenc.HexTag
	JSONHexAmp                   = jsonenc.HexAmp
	JSONHexApos                  = jsonenc.HexApos
	JSONHexQuot                  = jsonenc.HexQuot
	JSONUnescapedSlashes         = jsonenc.UnescapedSlashes
	JSONUnescapedUnicode         = jsonenc.UnescapedUnicode
	JSONPrettyPrint              = jsonenc.PrettyPrint
	JSONUnescapedLineTerminators = jsonenc.UnescapedLineTerminators

	// DefaultJSONOptions leave slashes and unicode characters unescaped, except for
	// U+2028 and U+2029.
	DefaultJSONOptions = jsonenc.Default
	// HTMLJSONOptions make the output safe for embedding into HTML.
	HTMLJSONOptions = jsonenc.HTML
)

// NewJSON returns a 200 OK response with the data encoded to JSON as a body. Content-Type
// defaults to application/json; charset=UTF-8. Encoding flags are set via the JSON option.
//
// Data that cannot be encoded (file descriptors and other handles, malformed UTF-8,
// channels, NaN, etc.) results in errors.ErrInvalidArgument.
func NewJSON(data any, opts ...Option) (*Response, error) {
	b := newBlueprint().apply(opts)

	encoded, err := jsonenc.Encode(data, b.jsonOpts)
	if err != nil {
		return nil, err
	}

	b.body = func() (body.Stream, error) {
		return body.FromString(encoded), nil
	}

	return buildWithContentType(b, mime.JSON)
}

// WithJSONData returns a copy with the data encoded to JSON as a body. Status, headers
// and protocol are kept, the Content-Type isn't touched.
func (r *Response) WithJSONData(data any, opts JSONOptions) (*Response, error) {
	encoded, err := jsonenc.Encode(data, opts)
	if err != nil {
		return nil, err
	}

	return r.WithBody(body.FromString(encoded)), nil
}
