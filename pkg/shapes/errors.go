package shapes

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned when a dimension is not a finite, strictly
// positive number or the sides cannot form the shape.
var ErrInvalidDimension = errors.New("invalid dimension")

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be finite and positive, got %g: %w", name, v, ErrInvalidDimension)
	}
	return nil
}
