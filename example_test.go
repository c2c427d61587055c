package shapes_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/runner"
	"github.com/aretw0/shapes/pkg/shape"
)

// Example shows how to build a collection and print it as a table.
func Example() {
	c := collection.New()

	circle, err := shape.NewCircle(5)
	if err != nil {
		log.Fatal(err)
	}
	square, err := shape.New(shape.KindSquare, 5)
	if err != nil {
		log.Fatal(err)
	}
	_ = c.Add(circle)
	_ = c.Add(square)

	largest, _ := c.MaxByArea()
	fmt.Println(largest.Describe(), largest.Area())
	fmt.Print(c.RenderTable())

	// Output:
	// Circle, r = 5 78.54
	// +-----+--------+---------------+-----------+-------------------+-------+--------------+
	// | idx | Class  |  Description  | Perimeter | Perimeter formula | Area  | Area formula |
	// +-----+--------+---------------+-----------+-------------------+-------+--------------+
	// |  0  | Circle | Circle, r = 5 |   31.42   |   2 x 3.14 x r    | 78.54 |  3.14 x r^2  |
	// +-----+--------+---------------+-----------+-------------------+-------+--------------+
	// |  1  | Square | Square, a = 5 |   20.00   |        4*a        | 25.00 |     a^2      |
	// +-----+--------+---------------+-----------+-------------------+-------+--------------+
}

// Example_runner drives the interactive menu from a script instead of a terminal.
func Example_runner() {
	// add a 3x4 rectangle, show the largest perimeter, exit
	script := strings.NewReader("1\n4\n3\n4\n3\n0\n")
	var screen strings.Builder

	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(script, &screen)),
	)
	if err := r.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

	// prompts share a line with the reply that follows them
	for _, line := range strings.Split(screen.String(), "\n") {
		for _, marker := range []string{"Added", "Shape with"} {
			if i := strings.Index(line, marker); i >= 0 {
				fmt.Println(line[i:])
			}
		}
	}
	fmt.Println(r.Collection.Len(), "shape(s)")

	// Output:
	// Added #0: Rectangle, a = 3, b = 4
	// Shape with the largest perimeter: Rectangle, a = 3, b = 4 (perimeter = 14.00)
	// 1 shape(s)
}

// Example_errors shows how invalid measurements are reported.
func Example_errors() {
	_, err := shape.NewRectangle(4, -1)
	fmt.Println(err)

	_, err = collection.New().MaxByPerimeter()
	fmt.Println(err)

	// Output:
	// Rectangle: measurement "b" must be a non-negative number (got -1)
	// collection is empty
}
