package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every precondition violation returned by
// the calculators
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError names the offending input of a calculation
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidParameter, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func invalidParameter(field, reason string) error {
	return &ParameterError{Field: field, Reason: reason}
}
