package response

import (
	"os"
	"testing"

	"github.com/indigo-web/response/errors"
	"github.com/indigo-web/response/http/body"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/response/http/status"
	"github.com/stretchr/testify/require"
)

func TestContentVariants(t *testing.T) {
	for _, tc := range []struct {
		name        string
		constructor func(string, ...Option) (*Response, error)
		content     string
		contentType string
	}{
		{"html", NewHTML, "<p>HTML</p>", "text/html; charset=UTF-8"},
		{"text", NewText, "Text", "text/plain; charset=UTF-8"},
		{"xml", NewXML, "<xml>XML</xml>", "application/xml; charset=UTF-8"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Run("defaults", func(t *testing.T) {
				r, err := tc.constructor(tc.content)
				require.NoError(t, err)

				require.Equal(t, status.OK, r.StatusCode())
				require.Equal(t, "OK", r.ReasonPhrase())
				require.Equal(t, tc.content, contents(t, r))
				require.Equal(t, []headers.Header{{Name: "Content-Type", Values: []string{tc.contentType}}}, r.Headers())
				require.Equal(t, "1.1", r.ProtocolVersion())

				uri, _ := r.Body().Metadata(body.MetaURI)
				require.Equal(t, body.TempURI, uri)
			})

			t.Run("cursor at the beginning", func(t *testing.T) {
				r, err := tc.constructor(tc.content)
				require.NoError(t, err)

				data, err := r.Body().Contents()
				require.NoError(t, err)
				require.Equal(t, tc.content, string(data))
			})

			t.Run("specified arguments", func(t *testing.T) {
				r, err := tc.constructor(tc.content,
					Code(status.NotFound),
					Header("Content-Language", "en"),
					Protocol("2"),
					Reason("Custom Phrase"),
				)
				require.NoError(t, err)

				require.Equal(t, status.NotFound, r.StatusCode())
				require.Equal(t, "Custom Phrase", r.ReasonPhrase())
				require.Equal(t, []headers.Header{
					{Name: "Content-Language", Values: []string{"en"}},
					{Name: "Content-Type", Values: []string{tc.contentType}},
				}, r.Headers())
				require.Equal(t, "2", r.ProtocolVersion())
			})

			t.Run("explicit content type wins", func(t *testing.T) {
				r, err := tc.constructor(tc.content, Header("content-type", "text/csv"))
				require.NoError(t, err)

				require.Equal(t, "text/csv", r.HeaderLine("Content-Type"))
				require.Equal(t, []headers.Header{{Name: "content-type", Values: []string{"text/csv"}}}, r.Headers())
			})

			t.Run("variant body wins", func(t *testing.T) {
				r, err := tc.constructor(tc.content, Content("ignored"))
				require.NoError(t, err)
				require.Equal(t, tc.content, contents(t, r))
			})

			t.Run("invalid status code", func(t *testing.T) {
				_, err := tc.constructor(tc.content, Code(600))
				require.ErrorIs(t, err, errors.ErrInvalidStatusCode)
			})
		})
	}
}

func TestHTMLExplicitContentType(t *testing.T) {
	r, err := NewHTML("<p>x</p>", Header("Content-Type", "text/plain"))
	require.NoError(t, err)
	require.Equal(t, "text/plain", r.HeaderLine("content-type"))
	require.Len(t, r.Header("Content-Type"), 1)
}

func TestNewEmpty(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewEmpty()
		require.NoError(t, err)

		require.Equal(t, status.NoContent, r.StatusCode())
		require.Equal(t, "No Content", r.ReasonPhrase())
		require.Empty(t, r.Headers())
		require.Equal(t, "1.1", r.ProtocolVersion())
		require.Empty(t, contents(t, r))

		uri, _ := r.Body().Metadata(body.MetaURI)
		require.Equal(t, body.TempURI, uri)
		mode, _ := r.Body().Metadata(body.MetaMode)
		require.Equal(t, "r", mode)
	})

	t.Run("body is read-only", func(t *testing.T) {
		r, err := NewEmpty()
		require.NoError(t, err)

		_, err = r.Body().Write([]byte("data"))
		require.ErrorIs(t, err, errors.ErrNotWritable)
	})

	t.Run("specified arguments", func(t *testing.T) {
		r, err := NewEmpty(Code(status.ResetContent), Header("X-Reason", "reset"), Protocol("2"))
		require.NoError(t, err)

		require.Equal(t, status.ResetContent, r.StatusCode())
		require.Equal(t, "Reset Content", r.ReasonPhrase())
		require.Equal(t, "reset", r.HeaderLine("x-reason"))
		require.Equal(t, "2", r.ProtocolVersion())
	})
}

func TestNewRedirect(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewRedirect("https://x/y")
		require.NoError(t, err)

		require.Equal(t, status.Found, r.StatusCode())
		require.Equal(t, "Found", r.ReasonPhrase())
		require.Equal(t, "https://x/y", r.HeaderLine("location"))
		require.Equal(t, []headers.Header{{Name: "Location", Values: []string{"https://x/y"}}}, r.Headers())
		require.Empty(t, contents(t, r))
		require.False(t, r.HasHeader("Content-Type"))
	})

	t.Run("specified arguments", func(t *testing.T) {
		r, err := NewRedirect("/login",
			Code(status.MovedPermanently),
			Header("Cache-Control", "no-cache"),
			Protocol("2"),
		)
		require.NoError(t, err)

		require.Equal(t, status.MovedPermanently, r.StatusCode())
		require.Equal(t, "Moved Permanently", r.ReasonPhrase())
		require.Equal(t, []headers.Header{
			{Name: "Cache-Control", Values: []string{"no-cache"}},
			{Name: "Location", Values: []string{"/login"}},
		}, r.Headers())
	})

	t.Run("uri wins over location option", func(t *testing.T) {
		r, err := NewRedirect("/target", Header("location", "/elsewhere"))
		require.NoError(t, err)

		require.Equal(t, []string{"/target"}, r.Header("Location"))
		require.Len(t, r.Headers(), 1)
	})

	t.Run("body option is ignored", func(t *testing.T) {
		path := t.TempDir() + "/never-created"
		r, err := NewRedirect("/target", BodyURI(path))
		require.NoError(t, err)

		uri, _ := r.Body().Metadata(body.MetaURI)
		require.Equal(t, body.TempURI, uri)
		_, err = os.Stat(path)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid uri", func(t *testing.T) {
		_, err := NewRedirect("/target\r\nX-Injected: 1")
		require.ErrorIs(t, err, errors.ErrInvalidHeader)
	})
}
