package mime

type MIME = string

const (
	Plain MIME = "text/plain"
	HTML  MIME = "text/html"
	XML   MIME = "application/xml"
	JSON  MIME = "application/json"
)

// WithCharset appends the charset parameter to the MIME, e.g. text/html; charset=UTF-8.
// Empty charset leaves the MIME untouched.
func WithCharset(mime MIME, charset Charset) string {
	if len(charset) == 0 {
		return mime
	}

	return mime + "; charset=" + charset
}
