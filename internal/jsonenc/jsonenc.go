package jsonenc

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/indigo-web/response/errors"
	json "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Options is a bitmask of encoder flags.
type Options uint16

const (
	// HexTag escapes < and > as \u003C and \u003E.
	HexTag Options = 1 << iota
	// HexAmp escapes & as \u0026.
	HexAmp
	// HexApos escapes ' as \u0027.
	HexApos
	// HexQuot escapes " inside strings as \u0022.
	HexQuot
	// UnescapedSlashes leaves / as is instead of \/.
	UnescapedSlashes
	// UnescapedUnicode leaves multibyte characters as is instead of \uXXXX.
	UnescapedUnicode
	// PrettyPrint indents the output with 4 spaces.
	PrettyPrint
	// UnescapedLineTerminators leaves U+2028 and U+2029 as is when UnescapedUnicode
	// is set. They are escaped otherwise, as JavaScript string literals don't allow them.
	UnescapedLineTerminators
)

const (
	Default = UnescapedSlashes | UnescapedUnicode
	HTML    = HexTag | HexAmp | HexApos | HexQuot | UnescapedUnicode
)

var (
	compact = newAPI(json.Config{
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	})
	pretty = newAPI(json.Config{
		IndentionStep:          4,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	})
)

func newAPI(cfg json.Config) json.API {
	api := cfg.Froze()
	api.RegisterExtension(new(resourceExtension))

	return api
}

const resourceMsg = "resources cannot be encoded in JSON"

var errResource = fmt.Errorf("%w: %s", errors.ErrInvalidArgument, resourceMsg)

// Encode marshals the data and applies the escaping flags. Every failure, including
// malformed UTF-8 in strings and invalid output of custom marshalers, is reported
// as errors.ErrInvalidArgument.
func Encode(data any, opts Options) (string, error) {
	switch data.(type) {
	case io.Reader, io.Writer:
		return "", errResource
	}

	api := compact
	if opts&PrettyPrint != 0 {
		api = pretty
	}

	raw, err := api.Marshal(data)
	if err != nil {
		// struct field encoders flatten nested errors into plain text
		if strings.Contains(err.Error(), resourceMsg) {
			return "", errResource
		}

		return "", encodingError(err.Error())
	}

	if !utf8.Valid(raw) {
		return "", encodingError("malformed UTF-8 characters, possibly incorrectly encoded")
	}

	// output of json.Marshaler implementations is copied verbatim
	if !api.Valid(raw) {
		return "", encodingError("syntax error, malformed JSON")
	}

	return string(escape(raw, opts)), nil
}

func encodingError(msg string) error {
	return fmt.Errorf("%w: unable to encode data to JSON: `%s`", errors.ErrInvalidArgument, msg)
}

// escape rewrites string literals of already valid JSON according to the flags. Bytes
// outside of string literals are copied as is.
func escape(raw []byte, opts Options) []byte {
	const hexTagAmpAposQuot = HexTag | HexAmp | HexApos | HexQuot

	if opts&hexTagAmpAposQuot == 0 && opts&UnescapedSlashes != 0 && opts&UnescapedUnicode != 0 &&
		(opts&UnescapedLineTerminators != 0 || !hasLineTerminators(raw)) {
		return raw
	}

	out := make([]byte, 0, len(raw)+len(raw)/8)
	inString := false

	for i := 0; i < len(raw); {
		c := raw[i]

		if !inString {
			if c == '"' {
				inString = true
			}

			out = append(out, c)
			i++
			continue
		}

		switch {
		case c == '\\':
			if i+1 == len(raw) {
				out = append(out, c)
				break
			}

			if raw[i+1] == '"' && opts&HexQuot != 0 {
				out = append(out, `\u0022`...)
			} else {
				out = append(out, c, raw[i+1])
			}

			i += 2
			continue
		case c == '"':
			inString = false
			out = append(out, c)
		case c == '/' && opts&UnescapedSlashes == 0:
			out = append(out, '\\', '/')
		case (c == '<' || c == '>') && opts&HexTag != 0,
			c == '&' && opts&HexAmp != 0,
			c == '\'' && opts&HexApos != 0:
			out = append(out, `\u00`...)
			out = append(out, upperHex[c>>4], upperHex[c&0xF])
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(raw[i:])
			if opts&UnescapedUnicode == 0 || (isLineTerminator(r) && opts&UnescapedLineTerminators == 0) {
				out = appendUnicode(out, r)
			} else {
				out = append(out, raw[i:i+size]...)
			}

			i += size
			continue
		default:
			out = append(out, c)
		}

		i++
	}

	return out
}

const upperHex = "0123456789ABCDEF"

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

func isLineTerminator(r rune) bool {
	return r == lineSeparator || r == paragraphSeparator
}

func hasLineTerminators(raw []byte) bool {
	return bytes.ContainsRune(raw, lineSeparator) || bytes.ContainsRune(raw, paragraphSeparator)
}

func appendUnicode(out []byte, r rune) []byte {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		return appendUnicode(appendUnicode(out, r1), r2)
	}

	out = append(out, '\\', 'u')
	hex := strconv.FormatUint(uint64(r), 16)
	for range 4 - len(hex) {
		out = append(out, '0')
	}

	return append(out, hex...)
}

var (
	readerType = reflect.TypeOf((*io.Reader)(nil)).Elem()
	writerType = reflect.TypeOf((*io.Writer)(nil)).Elem()
)

// resourceExtension rejects handles (files, streams, any io.Reader or io.Writer)
// wherever they appear in the encoded value.
type resourceExtension struct {
	json.DummyExtension
}

func (r *resourceExtension) CreateEncoder(typ reflect2.Type) json.ValEncoder {
	t := typ.Type1()
	if t.Implements(readerType) || t.Implements(writerType) {
		return resourceEncoder{}
	}

	return nil
}

type resourceEncoder struct{}

func (resourceEncoder) IsEmpty(unsafe.Pointer) bool {
	return false
}

func (resourceEncoder) Encode(_ unsafe.Pointer, stream *json.Stream) {
	if stream.Error == nil {
		stream.Error = errResource
	}
}
