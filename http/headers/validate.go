package headers

import (
	"fmt"

	"github.com/indigo-web/response/errors"
	"golang.org/x/net/http/httpguts"
)

// Validate checks whether the name is a valid RFC 7230 token and none of the values
// contain forbidden characters (CR, LF, NUL and other control bytes except HTAB). At
// least one value is required.
func Validate(name string, values ...string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: name `%s` is not a valid token", errors.ErrInvalidHeader, name)
	}

	if len(values) == 0 {
		return fmt.Errorf("%w: `%s` must have at least one value", errors.ErrInvalidHeader, name)
	}

	for _, value := range values {
		if !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("%w: `%s` has a malformed value %q", errors.ErrInvalidHeader, name, value)
		}
	}

	return nil
}
