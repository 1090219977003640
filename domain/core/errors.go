package core

import (
	"errors"
	"fmt"
)

// Engine failure kinds - centralized error definitions.
//
// Every invalid branch in the engine maps to exactly one of these sentinels;
// callers inspect them with errors.Is. None are process-fatal.
var (
	// ErrInvalidInput covers empty samples, non-finite values in strict-mode
	// payloads, mismatched vector lengths, and degenerate contingency tables.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameters covers bad distribution parameters and unsupported
	// method/rule names.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInsufficientSample is returned when n is below the minimum the
	// requested statistic needs.
	ErrInsufficientSample = errors.New("insufficient sample")

	// ErrDivisionByZero is returned when a zero variance or zero range makes
	// the requested normalization or test undefined.
	ErrDivisionByZero = errors.New("division by zero")
)

// Error constructors with context

func NewInvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func NewInvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NewInvalidParameters(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, reason)
}

func NewInvalidParametersf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}

// NewInsufficientSample reports which statistic needed more data and how much.
func NewInsufficientSample(statistic string, need, got int) error {
	return fmt.Errorf("%w: %s requires n >= %d, got %d", ErrInsufficientSample, statistic, need, got)
}

func NewDivisionByZero(quantity string) error {
	return fmt.Errorf("%w: %s is zero", ErrDivisionByZero, quantity)
}
