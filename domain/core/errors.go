package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrInsufficientData  = errors.New("insufficient data for fit")
	ErrNoParseableData   = errors.New("no parseable samples in input")
	ErrLengthMismatch    = errors.New("x and y sequences differ in length")
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// Numeric degeneracies
	ErrDegenerateInput = errors.New("degenerate input: zero variance in x")
)

// Error constructors with context
func NewInsufficientDataError(n int) error {
	return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInsufficientData, n)
}

func NewLengthMismatchError(nx, ny int) error {
	return fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrLengthMismatch, nx, ny)
}

func NewDegenerateInputError(n int) error {
	return fmt.Errorf("%w: all %d x-values identical", ErrDegenerateInput, n)
}

func NewUnsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrNoParseableData) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrUnsupportedFormat)
}

func IsDegenerateInputError(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}
