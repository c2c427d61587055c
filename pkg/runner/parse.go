package runner

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ParseMeasurement converts a raw field value into a number.
// Negative values are accepted here; the shape constructors reject them.
func ParseMeasurement(name, raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrNotANumber, name)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s = %q", ErrNotANumber, name, raw)
	}
	return v, nil
}
