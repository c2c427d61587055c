package shape

// Triangle is a triangle defined by its three sides.
//
// The sides are not checked against the triangle inequality: a Triangle such as
// (1, 1, 100) can be built, and its Area is NaN. Use Closed to detect it.
type Triangle struct {
	a, b, c float64
}

// NewTriangle returns a triangle with sides a, b and c.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if err := validate(KindTriangle, a, b, c); err != nil {
		return Triangle{}, err
	}
	return Triangle{a: a, b: b, c: c}, nil
}

func (t Triangle) Sides() (a, b, c float64) { return t.a, t.b, t.c }

// Closed reports whether the sides satisfy the triangle inequality.
// Degenerate triangles (a + b == c) are closed.
func (t Triangle) Closed() bool { return closed(t.a, t.b, t.c) }

func (t Triangle) Kind() Kind { return KindTriangle }

func (t Triangle) Area() float64 { return Round(heronArea(t.a, t.b, t.c)) }

func (t Triangle) Perimeter() float64 { return Round(t.a + t.b + t.c) }

func (t Triangle) AreaFormula() string { return KindTriangle.AreaFormula() }

func (t Triangle) PerimeterFormula() string { return KindTriangle.PerimeterFormula() }

func (t Triangle) Measurements() []float64 { return []float64{t.a, t.b, t.c} }

func (t Triangle) Describe() string { return describe(KindTriangle, t.a, t.b, t.c) }

func (t Triangle) String() string { return t.Describe() }

// EquilateralTriangle is a triangle with three sides of length a.
type EquilateralTriangle struct {
	a float64
}

// NewEquilateralTriangle returns an equilateral triangle with side a.
func NewEquilateralTriangle(a float64) (EquilateralTriangle, error) {
	if err := validate(KindEquilateralTriangle, a); err != nil {
		return EquilateralTriangle{}, err
	}
	return EquilateralTriangle{a: a}, nil
}

func (t EquilateralTriangle) Side() float64 { return t.a }

func (t EquilateralTriangle) Kind() Kind { return KindEquilateralTriangle }

func (t EquilateralTriangle) Area() float64 { return Round(heronArea(t.a, t.a, t.a)) }

func (t EquilateralTriangle) Perimeter() float64 { return Round(3 * t.a) }

func (t EquilateralTriangle) AreaFormula() string { return KindEquilateralTriangle.AreaFormula() }

func (t EquilateralTriangle) PerimeterFormula() string {
	return KindEquilateralTriangle.PerimeterFormula()
}

func (t EquilateralTriangle) Measurements() []float64 { return []float64{t.a} }

func (t EquilateralTriangle) Describe() string { return describe(KindEquilateralTriangle, t.a) }

func (t EquilateralTriangle) String() string { return t.Describe() }
