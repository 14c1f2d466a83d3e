package helper

import (
	"fmt"
)

// GetTypedValueOf asserts the result of a getter function to the expected
// type T. A getter error is returned unchanged so callers can match it with
// errors.Is; only a failed assertion produces a new error.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of [GetTypedValueOf].
// Use when failure cannot happen by construction (e.g. asserting a value
// the caller itself produced).
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
