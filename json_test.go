package response

import (
	"os"
	"testing"

	"github.com/indigo-web/response/errors"
	"github.com/indigo-web/response/http/body"
	"github.com/indigo-web/response/http/headers"
	"github.com/indigo-web/response/http/status"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewJSON(map[string]string{"key": "value"})
		require.NoError(t, err)

		require.Equal(t, status.OK, r.StatusCode())
		require.Equal(t, "OK", r.ReasonPhrase())
		require.Equal(t, `{"key":"value"}`, contents(t, r))
		require.Equal(t, []headers.Header{
			{Name: "Content-Type", Values: []string{"application/json; charset=UTF-8"}},
		}, r.Headers())
		require.Equal(t, "1.1", r.ProtocolVersion())
	})

	t.Run("slashes and unicode are unescaped", func(t *testing.T) {
		r, err := NewJSON([]string{"/path/to", "ünïcödé"})
		require.NoError(t, err)
		require.Equal(t, `["/path/to","ünïcödé"]`, contents(t, r))
	})

	t.Run("custom options", func(t *testing.T) {
		r, err := NewJSON("<tag>", JSON(HTMLJSONOptions))
		require.NoError(t, err)

		var decoded string
		require.NoError(t, json.Unmarshal([]byte(contents(t, r)), &decoded))
		require.Equal(t, "<tag>", decoded)
		require.NotContains(t, contents(t, r), "<")
	})

	t.Run("specified arguments", func(t *testing.T) {
		r, err := NewJSON(nil,
			Code(status.Created),
			Header("Content-Type", "application/problem+json"),
			Protocol("2"),
			Reason("Made It"),
		)
		require.NoError(t, err)

		require.Equal(t, status.Created, r.StatusCode())
		require.Equal(t, "Made It", r.ReasonPhrase())
		require.Equal(t, "null", contents(t, r))
		require.Equal(t, "application/problem+json", r.HeaderLine("content-type"))
		require.Equal(t, "2", r.ProtocolVersion())
	})

	t.Run("resource", func(t *testing.T) {
		fd, err := os.CreateTemp(t.TempDir(), "resource")
		require.NoError(t, err)
		defer fd.Close()

		_, err = NewJSON(fd)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)

		_, err = NewJSON(map[string]any{"file": fd})
		require.ErrorIs(t, err, errors.ErrInvalidArgument)

		_, err = NewJSON([]any{body.FromString("stream")})
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})

	t.Run("malformed utf-8", func(t *testing.T) {
		_, err := NewJSON("\xB1\x31")
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})
}

func TestWithJSONData(t *testing.T) {
	original, err := NewJSON(map[string]int{"a": 1}, Code(status.Accepted), Header("X-A", "a"))
	require.NoError(t, err)

	t.Run("replaces body only", func(t *testing.T) {
		r, err := original.WithJSONData([]int{1, 2, 3}, DefaultJSONOptions)
		require.NoError(t, err)

		require.NotSame(t, original, r)
		require.Equal(t, `[1,2,3]`, contents(t, r))
		require.Equal(t, `{"a":1}`, contents(t, original))
		require.Equal(t, status.Accepted, r.StatusCode())
		require.Equal(t, original.Headers(), r.Headers())
		require.Equal(t, original.ProtocolVersion(), r.ProtocolVersion())
	})

	t.Run("content type is not reapplied", func(t *testing.T) {
		plain, err := New()
		require.NoError(t, err)

		r, err := plain.WithJSONData("data", DefaultJSONOptions)
		require.NoError(t, err)
		require.False(t, r.HasHeader("Content-Type"))
		require.Equal(t, `"data"`, contents(t, r))
	})

	t.Run("errors leave the receiver intact", func(t *testing.T) {
		fd, err := os.CreateTemp(t.TempDir(), "resource")
		require.NoError(t, err)
		defer fd.Close()

		r, err := original.WithJSONData(fd, DefaultJSONOptions)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		require.Nil(t, r)

		_, err = original.WithJSONData("\xB1\x31", DefaultJSONOptions)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)

		require.Equal(t, `{"a":1}`, contents(t, original))
	})
}
