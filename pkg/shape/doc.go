/*
Package shape contains the geometric shape model.

Each variant (Circle, Triangle, EquilateralTriangle, Rectangle, Square and
RegularPentagon) is a small immutable value implementing the Shape interface.
Measurements are validated once, by the variant's constructor, and every derived
value (area, perimeter) is recomputed on demand and rounded to two decimals.

# Specialized variants

EquilateralTriangle and Square do not embed Triangle or Rectangle. They share
the same computation helpers with their sides repeated, so
NewEquilateralTriangle(a) and NewTriangle(a, a, a) always report the same area.

# Formulas

Formulas are static per variant and can be read from a Kind without building a
shape:

	shape.KindCircle.AreaFormula()      // "3.14 x r^2"
	shape.KindSquare.PerimeterFormula() // "4*a"
*/
package shape
