package collection

import (
	"math"
	"reflect"

	"github.com/aretw0/shapes/pkg/shape"
)

// Collection is an ordered sequence of shapes.
type Collection struct {
	shapes []shape.Shape
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{}
}

// Add appends s to the end of the collection.
func (c *Collection) Add(s shape.Shape) error {
	if isNil(s) {
		return ErrNotAShape
	}
	c.shapes = append(c.shapes, s)
	return nil
}

// AddValue appends v if it implements shape.Shape, and fails with ErrNotAShape otherwise.
func (c *Collection) AddValue(v any) error {
	s, ok := v.(shape.Shape)
	if !ok {
		return ErrNotAShape
	}
	return c.Add(s)
}

func (c *Collection) Len() int {
	return len(c.shapes)
}

// At returns the shape at index i (insertion order).
func (c *Collection) At(i int) (shape.Shape, bool) {
	if i < 0 || i >= len(c.shapes) {
		return nil, false
	}
	return c.shapes[i], true
}

// Shapes returns a copy of the stored shapes in insertion order.
func (c *Collection) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// MaxByPerimeter returns the first shape with the largest perimeter.
func (c *Collection) MaxByPerimeter() (shape.Shape, error) {
	return c.maxBy(shape.Shape.Perimeter)
}

// MaxByArea returns the first shape with the largest area.
func (c *Collection) MaxByArea() (shape.Shape, error) {
	return c.maxBy(shape.Shape.Area)
}

// maxBy scans in insertion order with a strict comparison, so ties keep the
// first shape seen. NaN values never win over a real number.
func (c *Collection) maxBy(value func(shape.Shape) float64) (shape.Shape, error) {
	if len(c.shapes) == 0 {
		return nil, ErrEmptyCollection
	}

	best := c.shapes[0]
	bestValue := value(best)
	for _, s := range c.shapes[1:] {
		v := value(s)
		if v > bestValue || (math.IsNaN(bestValue) && !math.IsNaN(v)) {
			best, bestValue = s, v
		}
	}
	return best, nil
}

func isNil(s shape.Shape) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
