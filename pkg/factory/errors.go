package factory

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNameNotRegistered indicates Produce was called with a name absent
	// from the factory index.
	ErrNameNotRegistered = errors.New("name not registered")

	// ErrInvalidArgument indicates a constructor rejected its arguments.
	ErrInvalidArgument = errors.New("invalid construction argument")
)

// NameNotRegisteredError reports a lookup miss in a factory.
type NameNotRegisteredError struct {
	// Name is the requested product name.
	Name string
	// Factory is the name of the factory that performed the lookup.
	Factory string
}

// Error implements the error interface.
func (e *NameNotRegisteredError) Error() string {
	return fmt.Sprintf("no product found with name %q for factory %s", e.Name, e.Factory)
}

// Unwrap returns ErrNameNotRegistered for errors.Is support.
func (e *NameNotRegisteredError) Unwrap() error {
	return ErrNameNotRegistered
}

// ArgumentError reports a construction argument with the wrong type or
// a missing one.
type ArgumentError struct {
	Index int
	Want  string
	Got   any
	// Missing is set when fewer than Index+1 arguments were supplied.
	Missing bool
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Missing {
		return fmt.Sprintf("argument %d: missing %s", e.Index, e.Want)
	}
	return fmt.Sprintf("argument %d: want %s, got %T", e.Index, e.Want, e.Got)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ArityError reports an argument count outside the accepted range.
type ArityError struct {
	Min, Max int
	Got      int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	switch {
	case e.Max < 0:
		return fmt.Sprintf("want at least %d arguments, got %d", e.Min, e.Got)
	case e.Min == e.Max:
		return fmt.Sprintf("want %d arguments, got %d", e.Min, e.Got)
	}
	return fmt.Sprintf("want %d to %d arguments, got %d", e.Min, e.Max, e.Got)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArityError) Unwrap() error {
	return ErrInvalidArgument
}

// ErrorKind classifies errors returned by Produce.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindNameNotRegistered means the name was not in the index.
	KindNameNotRegistered
	// KindConstruction means the constructor failed.
	KindConstruction
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNameNotRegistered:
		return "name_not_registered"
	case KindConstruction:
		return "construction"
	default:
		return "unknown"
	}
}

// Classify reports which kind of failure err is. Any error that does not
// match ErrNameNotRegistered is treated as a construction failure.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNameNotRegistered):
		return KindNameNotRegistered
	default:
		return KindConstruction
	}
}
