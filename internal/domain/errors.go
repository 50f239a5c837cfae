package domain

import (
	"errors"
	"fmt"
)

// ErrorKind names the class of an invalid solve input.
type ErrorKind string

const (
	KindInputMismatch    ErrorKind = "InputMismatch"
	KindInvalidCapacity  ErrorKind = "InvalidCapacity"
	KindInfeasibleDemand ErrorKind = "InfeasibleDemand"
	KindEmptyInstance    ErrorKind = "EmptyInstance"
	KindInvalidDemand    ErrorKind = "InvalidDemand"
	KindInvalidLocation  ErrorKind = "InvalidLocation"
)

var (
	ErrInputMismatch    = errors.New("locations and demands differ in length")
	ErrInvalidCapacity  = errors.New("vehicle capacity must be positive")
	ErrInfeasibleDemand = errors.New("customer demand exceeds vehicle capacity")
	ErrEmptyInstance    = errors.New("at least one depot and one customer are required")
	ErrInvalidDemand    = errors.New("demand must be a finite non-negative number")
	ErrInvalidLocation  = errors.New("location coordinates must be finite")
)

var kindSentinels = map[ErrorKind]error{
	KindInputMismatch:    ErrInputMismatch,
	KindInvalidCapacity:  ErrInvalidCapacity,
	KindInfeasibleDemand: ErrInfeasibleDemand,
	KindEmptyInstance:    ErrEmptyInstance,
	KindInvalidDemand:    ErrInvalidDemand,
	KindInvalidLocation:  ErrInvalidLocation,
}

// ValidationError identifies which input field made an instance unsolvable.
// It unwraps to the sentinel for its Kind so callers can use errors.Is.
type ValidationError struct {
	Kind   ErrorKind
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Detail)
}

func (e *ValidationError) Unwrap() error { return kindSentinels[e.Kind] }

func invalid(kind ErrorKind, field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)}
}
