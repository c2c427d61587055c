package shape

// Rectangle is a rectangle with sides a and b.
type Rectangle struct {
	a, b float64
}

// NewRectangle returns a rectangle with sides a and b.
func NewRectangle(a, b float64) (Rectangle, error) {
	if err := validate(KindRectangle, a, b); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{a: a, b: b}, nil
}

func (r Rectangle) Sides() (a, b float64) { return r.a, r.b }

func (r Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Area() float64 { return Round(rectArea(r.a, r.b)) }

func (r Rectangle) Perimeter() float64 { return Round(rectPerimeter(r.a, r.b)) }

func (r Rectangle) AreaFormula() string { return KindRectangle.AreaFormula() }

func (r Rectangle) PerimeterFormula() string { return KindRectangle.PerimeterFormula() }

func (r Rectangle) Measurements() []float64 { return []float64{r.a, r.b} }

func (r Rectangle) Describe() string { return describe(KindRectangle, r.a, r.b) }

func (r Rectangle) String() string { return r.Describe() }

// Square is a rectangle whose sides are both a.
type Square struct {
	a float64
}

// NewSquare returns a square with side a.
func NewSquare(a float64) (Square, error) {
	if err := validate(KindSquare, a); err != nil {
		return Square{}, err
	}
	return Square{a: a}, nil
}

func (s Square) Side() float64 { return s.a }

func (s Square) Kind() Kind { return KindSquare }

func (s Square) Area() float64 { return Round(rectArea(s.a, s.a)) }

func (s Square) Perimeter() float64 { return Round(rectPerimeter(s.a, s.a)) }

func (s Square) AreaFormula() string { return KindSquare.AreaFormula() }

func (s Square) PerimeterFormula() string { return KindSquare.PerimeterFormula() }

func (s Square) Measurements() []float64 { return []float64{s.a} }

func (s Square) Describe() string { return describe(KindSquare, s.a) }

func (s Square) String() string { return s.Describe() }
