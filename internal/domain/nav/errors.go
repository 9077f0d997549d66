package nav

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned when navigating to a section id that does
// not exist in the current geometry.
var ErrUnknownSection = errors.New("unknown section")

// NewUnknownSectionError tags the offending id with the sentinel kind.
func NewUnknownSectionError(id string) error {
	return fmt.Errorf("%w: %s", ErrUnknownSection, id)
}
