package shape

import "math"

// RegularPentagon is a regular pentagon with side a.
type RegularPentagon struct {
	a float64
}

// NewRegularPentagon returns a regular pentagon with side a.
func NewRegularPentagon(a float64) (RegularPentagon, error) {
	if err := validate(KindRegularPentagon, a); err != nil {
		return RegularPentagon{}, err
	}
	return RegularPentagon{a: a}, nil
}

func (p RegularPentagon) Side() float64 { return p.a }

func (p RegularPentagon) Kind() Kind { return KindRegularPentagon }

func (p RegularPentagon) Area() float64 {
	return Round(p.a * p.a * math.Sqrt(5*(5+2*math.Sqrt(5))) / 4)
}

func (p RegularPentagon) Perimeter() float64 { return Round(5 * p.a) }

func (p RegularPentagon) AreaFormula() string { return KindRegularPentagon.AreaFormula() }

func (p RegularPentagon) PerimeterFormula() string { return KindRegularPentagon.PerimeterFormula() }

func (p RegularPentagon) Measurements() []float64 { return []float64{p.a} }

func (p RegularPentagon) Describe() string { return describe(KindRegularPentagon, p.a) }

func (p RegularPentagon) String() string { return p.Describe() }
