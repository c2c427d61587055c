package shape

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const pi = math.Pi

// Shape is the capability set shared by every variant.
// Implementations are immutable values; Area and Perimeter are pure.
type Shape interface {
	Kind() Kind
	// Area returns the area rounded to two decimals.
	Area() float64
	// Perimeter returns the perimeter rounded to two decimals.
	Perimeter() float64
	AreaFormula() string
	PerimeterFormula() string
	// Measurements returns the defining measurements in constructor order.
	Measurements() []float64
	// Describe identifies the variant and its measurements, e.g. "Circle, r = 5".
	Describe() string
}

// New constructs a shape of the given kind from its measurements,
// in the order reported by Kind.Measurements.
func New(kind Kind, measurements ...float64) (Shape, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if want := len(kind.Measurements()); len(measurements) != want {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrMeasurementCount, kind, want, len(measurements))
	}

	m := measurements
	switch kind {
	case KindCircle:
		return wrap[Circle](NewCircle(m[0]))
	case KindTriangle:
		return wrap[Triangle](NewTriangle(m[0], m[1], m[2]))
	case KindEquilateralTriangle:
		return wrap[EquilateralTriangle](NewEquilateralTriangle(m[0]))
	case KindRectangle:
		return wrap[Rectangle](NewRectangle(m[0], m[1]))
	case KindSquare:
		return wrap[Square](NewSquare(m[0]))
	default:
		return wrap[RegularPentagon](NewRegularPentagon(m[0]))
	}
}

func wrap[S Shape](s S, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Round rounds v to two decimal places using correctly rounded decimal formatting.
// NaN and infinities are returned unchanged.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// validate checks that every measurement is a finite, non-negative number.
func validate(kind Kind, values ...float64) error {
	names := kind.Measurements()
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &MeasurementError{Kind: kind, Name: names[i], Value: v}
		}
	}
	return nil
}

func describe(kind Kind, values ...float64) string {
	names := kind.Measurements()
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, kind.String())
	for i, v := range values {
		parts = append(parts, names[i]+" = "+strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}

// heronArea is the unrounded area of a triangle with sides a, b, c.
// It is NaN when the sides do not form a triangle.
func heronArea(a, b, c float64) float64 {
	s := (a + b + c) / 2
	p := s * (s - a) * (s - b) * (s - c)
	if p < 0 && closed(a, b, c) {
		// Degenerate triangle with float error.
		return 0
	}
	return math.Sqrt(p)
}

func closed(a, b, c float64) bool {
	return a+b >= c && a+c >= b && b+c >= a
}

func rectArea(a, b float64) float64 {
	return a * b
}

func rectPerimeter(a, b float64) float64 {
	return 2*a + 2*b
}
