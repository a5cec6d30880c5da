package status

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/response/errors"
)

// Parse converts a loosely typed value into a Code. Any integer type is accepted, as
// well as strings holding an integer (surrounding whitespace is ignored). Floats are
// rejected even when they hold an integral value. The range isn't checked here, so the
// result still must pass Valid.
func Parse(v any) (Code, error) {
	var n int64

	switch c := v.(type) {
	case Code:
		return c, nil
	case int:
		n = int64(c)
	case int8:
		n = int64(c)
	case int16:
		n = int64(c)
	case int32:
		n = int64(c)
	case int64:
		n = c
	case uint:
		return fromUnsigned(uint64(c))
	case uint8:
		n = int64(c)
	case uint16:
		n = int64(c)
	case uint32:
		n = int64(c)
	case uint64:
		return fromUnsigned(c)
	case json.Number:
		parsed, err := c.Int64()
		if err != nil {
			return 0, notInteger(v)
		}

		n = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(c), 10, 64)
		if err != nil {
			return 0, notInteger(v)
		}

		n = parsed
	default:
		return 0, notInteger(v)
	}

	if n < 0 || n > 0xFFFF {
		return 0, outOfRange(n)
	}

	return Code(n), nil
}

func fromUnsigned(n uint64) (Code, error) {
	if n > 0xFFFF {
		return 0, outOfRange(n)
	}

	return Code(n), nil
}

func outOfRange[T int64 | uint64](n T) error {
	return fmt.Errorf(
		"%w: `%d` must be in the range from %d to %d", errors.ErrInvalidStatusCode, n, MinCode, MaxCode,
	)
}

func notInteger(v any) error {
	return fmt.Errorf(
		"%w: response status code must be an integer, received `%T`", errors.ErrInvalidArgument, v,
	)
}
