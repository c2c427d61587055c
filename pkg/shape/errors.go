package shape

import (
	"errors"
	"fmt"
)

// ErrInvalidMeasurement is returned when a measurement is negative or not a finite number.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// ErrMeasurementCount is returned when the number of measurements does not match the kind.
var ErrMeasurementCount = errors.New("wrong number of measurements")

// ErrUnknownKind is returned when a shape kind cannot be resolved.
var ErrUnknownKind = errors.New("unknown shape kind")

// MeasurementError describes a single rejected measurement.
type MeasurementError struct {
	Kind  Kind
	Name  string  // Measurement name, e.g. "r" or "a"
	Value float64 // The rejected value
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("%s: measurement %q must be a non-negative number (got %v)", e.Kind, e.Name, e.Value)
}

func (e *MeasurementError) Unwrap() error {
	return ErrInvalidMeasurement
}
