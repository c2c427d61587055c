package collection

import (
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/shapes/pkg/shape"
	"github.com/mattn/go-runewidth"
)

// DefaultPadding is the number of blank cells added to the widest entry of each column.
const DefaultPadding = 2

// Header is the first row of every rendered table.
var Header = []string{"idx", "Class", "Description", "Perimeter", "Perimeter formula", "Area", "Area formula"}

// TableOption configures table rendering.
type TableOption func(*tableConfig)

type tableConfig struct {
	padding int
}

// WithPadding sets the extra width added to every column.
func WithPadding(n int) TableOption {
	return func(c *tableConfig) {
		if n >= 0 {
			c.padding = n
		}
	}
}

// Rows returns the table content: the header followed by one row per shape.
func (c *Collection) Rows() [][]string {
	rows := make([][]string, 0, len(c.shapes)+1)
	rows = append(rows, append([]string(nil), Header...))
	for i, s := range c.shapes {
		rows = append(rows, Row(i, s))
	}
	return rows
}

// Row formats a single shape as a table row.
func Row(idx int, s shape.Shape) []string {
	return []string{
		strconv.Itoa(idx),
		s.Kind().String(),
		s.Describe(),
		formatValue(s.Perimeter()),
		s.PerimeterFormula(),
		formatValue(s.Area()),
		s.AreaFormula(),
	}
}

// RenderTable returns the collection as a bordered table.
func (c *Collection) RenderTable(opts ...TableOption) string {
	var sb strings.Builder
	_ = c.Render(&sb, opts...)
	return sb.String()
}

// Render writes the collection as a bordered table to w.
// Column widths are computed from the current content on every call.
func (c *Collection) Render(w io.Writer, opts ...TableOption) error {
	cfg := tableConfig{padding: DefaultPadding}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := c.Rows()
	widths := columnWidths(rows, cfg.padding)
	border := borderLine(widths)

	var sb strings.Builder
	sb.WriteString(border)
	for _, row := range rows {
		sb.WriteByte('|')
		for i, cell := range row {
			sb.WriteString(center(cell, widths[i]))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(border)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func columnWidths(rows [][]string, padding int) []int {
	widths := make([]int, len(Header))
	for _, row := range rows {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] += padding
	}
	return widths
}

func borderLine(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// center pads s to width, putting the odd extra space on the right.
func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
