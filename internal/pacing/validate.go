package pacing

import (
	"errors"
	"math"
)

var (
	// ErrInvalidFormat is returned when a split component is not a number
	ErrInvalidFormat = errors.New("invalid format")

	// ErrBelowMinimum is returned for a zero-length split
	ErrBelowMinimum = errors.New("below minimum")

	// ErrOutOfRange is returned when a value falls outside its allowed window
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidDistance is returned for a distance that is not a positive number
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrEmptySet is returned when a plan has no intervals
	ErrEmptySet = errors.New("no intervals")
)

// ValidationError describes why an input was rejected. Kind is one of the
// sentinel errors above and is what errors.Is matches against.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, field, msg string) error {
	return &ValidationError{Kind: kind, Field: field, Message: msg}
}

// ValidateSplit checks a parsed split before it is accepted into an interval.
//
// Milliseconds up to and including 1000 pass; only values above 1000 are
// rejected. ParseTime never produces 1000 from a single digit, so the bound
// only matters for values set directly.
func ValidateSplit(minutes, seconds, milliseconds int) error {
	if !(Split{Minutes: minutes, Seconds: seconds, Milliseconds: milliseconds}).Valid() {
		return invalid(ErrInvalidFormat, "split", "Invalid split, please input in the format 0:00.0")
	}

	if minutes == 0 && seconds == 0 && milliseconds == 0 {
		return invalid(ErrBelowMinimum, "split", "Split must be at least 0:00.1")
	}

	if milliseconds < 0 || milliseconds > 1000 {
		return invalid(ErrOutOfRange, "milliseconds", "Milliseconds must only take up one decimal place")
	}

	if seconds < 0 || seconds >= 60 {
		return invalid(ErrOutOfRange, "seconds", "Seconds must be between 0 and 59")
	}

	if minutes < 0 || minutes >= 10 {
		return invalid(ErrOutOfRange, "minutes", "Minutes must be between 0 and 9")
	}

	return nil
}

// ValidateDistance rejects zero, negative and non-finite distances
func ValidateDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return invalid(ErrInvalidDistance, "distance", "Distance must be a positive number")
	}
	return nil
}
