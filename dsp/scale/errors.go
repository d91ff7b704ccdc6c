package scale

import (
	"errors"
	"fmt"
)

// ErrInvalidRef is returned for non-positive reference values.
var ErrInvalidRef = errors.New("scale: reference must be > 0")

func validateRef(ref float64) error {
	if ref <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRef, ref)
	}
	return nil
}
