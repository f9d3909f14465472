package fieldtypes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is the sentinel wrapped by every argument-validation
// failure in this package, including UnsupportedTypeError.
var ErrInvalidArgument = errors.New("fieldtypes: invalid argument")

// UnsupportedTypeError reports a lookup for a type name that is neither
// built in nor registered. Known carries the full set of valid names so
// callers can surface them without a second registry round trip.
type UnsupportedTypeError struct {
	Name  string
	Known []string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf(
		"fieldtypes: unsupported field type %q, valid types are: %s",
		e.Name, strings.Join(e.Known, ", "),
	)
}

// Is marks UnsupportedTypeError as a specialization of ErrInvalidArgument.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrInvalidArgument
}
