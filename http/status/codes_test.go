package status

import (
	"encoding/json"
	"testing"

	"github.com/indigo-web/response/errors"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		for _, code := range KnownCodes {
			require.NotEmpty(t, Text(code), "code %d", code)
			require.True(t, Valid(code))
		}
	})

	t.Run("phrases", func(t *testing.T) {
		require.Equal(t, Status("OK"), Text(OK))
		require.Equal(t, Status("Not Found"), Text(NotFound))
		require.Equal(t, Status("I'm a teapot"), Text(Teapot))
		require.Equal(t, Status("Payload Too Large"), Text(PayloadTooLarge))
		require.Equal(t, Status("HTTP Version Not Supported"), Text(HTTPVersionNotSupported))
	})

	t.Run("unknown codes", func(t *testing.T) {
		for _, code := range []Code{0, 199, 299, 306, 420, 599, 1000} {
			require.Empty(t, Text(code), "code %d", code)
		}
	})
}

func TestValid(t *testing.T) {
	require.True(t, Valid(100))
	require.True(t, Valid(599))
	require.False(t, Valid(99))
	require.False(t, Valid(600))
	require.False(t, Valid(0))
}

func TestAllowsBody(t *testing.T) {
	require.True(t, AllowsBody(OK))
	require.True(t, AllowsBody(Found))
	require.False(t, AllowsBody(Continue))
	require.False(t, AllowsBody(EarlyHints))
	require.False(t, AllowsBody(NoContent))
	require.False(t, AllowsBody(NotModified))
}

func TestParse(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		for _, v := range []any{
			404, int16(404), int32(404), int64(404),
			uint(404), uint16(404), uint32(404), uint64(404), NotFound,
		} {
			code, err := Parse(v)
			require.NoError(t, err, "%T", v)
			require.Equal(t, NotFound, code, "%T", v)
		}

		code, err := Parse(int8(100))
		require.NoError(t, err)
		require.Equal(t, Continue, code)

		code, err = Parse(uint8(200))
		require.NoError(t, err)
		require.Equal(t, OK, code)
	})

	t.Run("numeric strings", func(t *testing.T) {
		code, err := Parse("404")
		require.NoError(t, err)
		require.Equal(t, NotFound, code)

		code, err = Parse(" 201 ")
		require.NoError(t, err)
		require.Equal(t, Created, code)

		code, err = Parse(json.Number("302"))
		require.NoError(t, err)
		require.Equal(t, Found, code)
	})

	t.Run("range is not checked", func(t *testing.T) {
		code, err := Parse(99)
		require.NoError(t, err)
		require.False(t, Valid(code))
	})

	t.Run("not integers", func(t *testing.T) {
		for _, v := range []any{
			nil, true, false, 1.1, 404.0, float32(200), "", "abc", "4.04",
			json.Number("1.5"), []int{1}, map[string]int{}, struct{}{}, func() {},
		} {
			_, err := Parse(v)
			require.ErrorIs(t, err, errors.ErrInvalidArgument, "%T(%v)", v, v)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		for _, v := range []any{-1, 70000, uint64(1 << 40), "-404"} {
			_, err := Parse(v)
			require.ErrorIs(t, err, errors.ErrInvalidStatusCode, "%v", v)
		}
	})
}

func BenchmarkText(b *testing.B) {
	for i := range b.N {
		_ = Text(KnownCodes[i%len(KnownCodes)])
	}
}
