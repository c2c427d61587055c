package shape

// Circle is a circle defined by its radius.
type Circle struct {
	r float64
}

// NewCircle returns a circle with radius r.
func NewCircle(r float64) (Circle, error) {
	if err := validate(KindCircle, r); err != nil {
		return Circle{}, err
	}
	return Circle{r: r}, nil
}

func (c Circle) Radius() float64 { return c.r }

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Area() float64 { return Round(pi * c.r * c.r) }

func (c Circle) Perimeter() float64 { return Round(2 * pi * c.r) }

func (c Circle) AreaFormula() string { return KindCircle.AreaFormula() }

func (c Circle) PerimeterFormula() string { return KindCircle.PerimeterFormula() }

func (c Circle) Measurements() []float64 { return []float64{c.r} }

func (c Circle) Describe() string { return describe(KindCircle, c.r) }

func (c Circle) String() string { return c.Describe() }
