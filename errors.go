package botanical

import (
	"errors"
	"fmt"
)

var (
	// ErrUnimplemented is returned for verb categories that have no
	// stored paradigm (FuturePerfect, non-Active voice, non-Indicative mood).
	ErrUnimplemented = errors.New("unimplemented grammatical category")

	// ErrUnknownGender is returned when a noun record carries a gender
	// code other than "m", "f" or "n".
	ErrUnknownGender = errors.New("unknown gender")

	// ErrMalformedRecord is returned when a dictionary file lacks a
	// required column or a row is shorter than its header.
	ErrMalformedRecord = errors.New("malformed dictionary record")
)

// UnimplementedError names the verb category that could not be served.
type UnimplementedError struct {
	Category string
	Value    fmt.Stringer
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Category, e.Value, ErrUnimplemented)
}

func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}
