/*
Package shapes is a small calculator for plane figures: circles, triangles,
equilateral triangles, rectangles, squares and regular pentagons.

Each figure reports its area and perimeter rounded to two decimals, its
formulas and a one-line description. Figures are kept in an ordered
collection that can be queried for the largest perimeter or area and
rendered as a bordered text table.

# Packages

  - pkg/shape: the figures, their validation and formulas.
  - pkg/collection: the ordered collection, max scans and table rendering.
  - pkg/runner: the interactive menu loop and its pluggable IO handlers.

The shapes command (cmd/shapes) wires these together with a YAML config
file, structured logging and session statistics.

# Usage

	c := collection.New()

	circle, err := shape.NewCircle(5)
	if err != nil {
		log.Fatal(err)
	}
	_ = c.Add(circle)

	largest, err := c.MaxByArea()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(largest.Describe(), largest.Area())

	fmt.Print(c.RenderTable())
*/
package shapes
