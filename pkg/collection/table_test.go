package collection_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/shape"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circleAndSquare(t *testing.T) *collection.Collection {
	t.Helper()
	c := collection.New()
	circle, err := shape.NewCircle(5)
	mustAdd(t, c, circle, err)
	square, err := shape.NewSquare(5)
	mustAdd(t, c, square, err)
	return c
}

func TestRows(t *testing.T) {
	c := circleAndSquare(t)

	want := [][]string{
		{"idx", "Class", "Description", "Perimeter", "Perimeter formula", "Area", "Area formula"},
		{"0", "Circle", "Circle, r = 5", "31.42", "2 x 3.14 x r", "78.54", "3.14 x r^2"},
		{"1", "Square", "Square, a = 5", "20.00", "4*a", "25.00", "a^2"},
	}
	if diff := cmp.Diff(want, c.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTable(t *testing.T) {
	c := circleAndSquare(t)

	want := strings.Join([]string{
		"+-----+--------+---------------+-----------+-------------------+-------+--------------+",
		"| idx | Class  |  Description  | Perimeter | Perimeter formula | Area  | Area formula |",
		"+-----+--------+---------------+-----------+-------------------+-------+--------------+",
		"|  0  | Circle | Circle, r = 5 |   31.42   |   2 x 3.14 x r    | 78.54 |  3.14 x r^2  |",
		"+-----+--------+---------------+-----------+-------------------+-------+--------------+",
		"|  1  | Square | Square, a = 5 |   20.00   |        4*a        | 25.00 |     a^2      |",
		"+-----+--------+---------------+-----------+-------------------+-------+--------------+",
		"",
	}, "\n")

	if diff := cmp.Diff(want, c.RenderTable()); diff != "" {
		t.Errorf("RenderTable() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, want, buf.String())
}

func TestRenderTable_Empty(t *testing.T) {
	out := collection.New().RenderTable()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, "| idx | Class | Description | Perimeter | Perimeter formula | Area | Area formula |", lines[1])
}

func TestRenderTable_WidthsFollowContent(t *testing.T) {
	c := circleAndSquare(t)
	before := c.RenderTable()

	wide, err := shape.NewTriangle(123.456, 234.567, 300.125)
	mustAdd(t, c, wide, err)
	after := c.RenderTable()

	beforeWidth := len(strings.SplitN(before, "\n", 2)[0])
	afterWidth := len(strings.SplitN(after, "\n", 2)[0])
	assert.Greater(t, afterWidth, beforeWidth)

	// Every line of a render has the same width.
	for _, line := range strings.Split(strings.TrimSuffix(after, "\n"), "\n") {
		assert.Len(t, line, afterWidth)
	}
}

func TestRenderTable_Padding(t *testing.T) {
	c := collection.New()
	out := c.RenderTable(collection.WithPadding(0))
	assert.True(t, strings.HasPrefix(out, "+---+-----+"), out)
}

func TestRenderTable_NaNArea(t *testing.T) {
	c := collection.New()
	open, err := shape.NewTriangle(1, 1, 100)
	mustAdd(t, c, open, err)

	assert.Contains(t, c.RenderTable(), "NaN")
}
