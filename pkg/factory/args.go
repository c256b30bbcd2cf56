package factory

import (
	"math"
	"reflect"
)

// Helpers for constructors that read positional arguments. Errors they return
// are meant to be returned by the constructor as-is.

// ExpectArgs checks that len(args) lies within [minArgs, maxArgs].
// A negative maxArgs means no upper bound.
func ExpectArgs(args []any, minArgs, maxArgs int) error {
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return &ArityError{Min: minArgs, Max: maxArgs, Got: len(args)}
	}
	return nil
}

// Arg returns args[i] asserted to type A.
func Arg[A any](args []any, i int) (A, error) {
	var zero A
	if i < 0 || i >= len(args) {
		return zero, &ArgumentError{Index: i, Want: typeName[A](), Missing: true}
	}
	v, ok := args[i].(A)
	if !ok {
		return zero, &ArgumentError{Index: i, Want: typeName[A](), Got: args[i]}
	}
	return v, nil
}

// Float returns args[i] as a float64, accepting any Go integer or float type.
func Float(args []any, i int) (float64, error) {
	if i < 0 || i >= len(args) {
		return 0, &ArgumentError{Index: i, Want: "number", Missing: true}
	}
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	}
	return 0, &ArgumentError{Index: i, Want: "number", Got: args[i]}
}

// OptionalFloat is Float with a default for a missing argument.
func OptionalFloat(args []any, i int, defaultVal float64) (float64, error) {
	if i >= len(args) {
		return defaultVal, nil
	}
	return Float(args, i)
}

// Int returns args[i] as an int. It accepts the same types as Float; floats
// must be whole and unsigned values must fit in an int.
func Int(args []any, i int) (int, error) {
	if i < 0 || i >= len(args) {
		return 0, &ArgumentError{Index: i, Want: "int", Missing: true}
	}
	switch v := args[i].(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case float32:
		if f := float64(v); f == math.Trunc(f) && f >= math.MinInt && f < math.MaxInt {
			return int(f), nil
		}
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt && v < math.MaxInt {
			return int(v), nil
		}
	}
	return 0, &ArgumentError{Index: i, Want: "int", Got: args[i]}
}

// String returns args[i] as a string.
func String(args []any, i int) (string, error) {
	return Arg[string](args, i)
}

func typeName[A any]() string {
	return reflect.TypeFor[A]().String()
}
