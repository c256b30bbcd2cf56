package shapes

import (
	"fmt"

	"github.com/randalmurphal/factory/pkg/factory"
)

// newCircle takes (radius).
func newCircle(args ...any) (Shape, error) {
	if err := factory.ExpectArgs(args, 1, 1); err != nil {
		return nil, err
	}
	r, err := factory.Float(args, 0)
	if err != nil {
		return nil, err
	}
	if err := positive("radius", r); err != nil {
		return nil, err
	}
	return &Circle{Radius: r}, nil
}

// newSquare takes (side).
func newSquare(args ...any) (Shape, error) {
	if err := factory.ExpectArgs(args, 1, 1); err != nil {
		return nil, err
	}
	s, err := factory.Float(args, 0)
	if err != nil {
		return nil, err
	}
	if err := positive("side", s); err != nil {
		return nil, err
	}
	return &Square{Side: s}, nil
}

// newRectangle takes (width[, height]); height defaults to width.
func newRectangle(args ...any) (Shape, error) {
	if err := factory.ExpectArgs(args, 1, 2); err != nil {
		return nil, err
	}
	w, err := factory.Float(args, 0)
	if err != nil {
		return nil, err
	}
	h, err := factory.OptionalFloat(args, 1, w)
	if err != nil {
		return nil, err
	}
	if err := positive("width", w); err != nil {
		return nil, err
	}
	if err := positive("height", h); err != nil {
		return nil, err
	}
	return &Rectangle{Width: w, Height: h}, nil
}

// newTriangle takes (a, b, c) side lengths.
func newTriangle(args ...any) (Shape, error) {
	if err := factory.ExpectArgs(args, 3, 3); err != nil {
		return nil, err
	}
	var sides [3]float64
	for i := range sides {
		v, err := factory.Float(args, i)
		if err != nil {
			return nil, err
		}
		if err := positive(fmt.Sprintf("side %d", i), v); err != nil {
			return nil, err
		}
		sides[i] = v
	}
	a, b, c := sides[0], sides[1], sides[2]
	if a+b <= c || a+c <= b || b+c <= a {
		return nil, fmt.Errorf("sides %g, %g, %g violate the triangle inequality: %w", a, b, c, ErrInvalidDimension)
	}
	return &Triangle{A: a, B: b, C: c}, nil
}
