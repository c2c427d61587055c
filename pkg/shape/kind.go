package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the supported shape variants.
type Kind int

const (
	KindCircle Kind = iota + 1
	KindTriangle
	KindEquilateralTriangle
	KindRectangle
	KindSquare
	KindRegularPentagon
)

type kindInfo struct {
	name             string
	label            string
	aliases          []string
	measurements     []string
	areaFormula      string
	perimeterFormula string
}

var kinds = map[Kind]kindInfo{
	KindCircle: {
		name:             "Circle",
		label:            "Circle",
		aliases:          []string{"circle"},
		measurements:     []string{"r"},
		areaFormula:      fmt.Sprintf("%.2f x r^2", pi),
		perimeterFormula: fmt.Sprintf("2 x %.2f x r", pi),
	},
	KindTriangle: {
		name:             "Triangle",
		label:            "Triangle",
		aliases:          []string{"triangle"},
		measurements:     []string{"a", "b", "c"},
		areaFormula:      "sqrt(s(s-a)(s-b)(s-c)), s = (a+b+c)/2",
		perimeterFormula: "a + b + c",
	},
	KindEquilateralTriangle: {
		name:             "EquilateralTriangle",
		label:            "Equilateral triangle",
		aliases:          []string{"equilateral", "equilateral-triangle", "equilateral_triangle"},
		measurements:     []string{"a"},
		areaFormula:      "(a^2 * sqrt(3)) / 4",
		perimeterFormula: "3*a",
	},
	KindRectangle: {
		name:             "Rectangle",
		label:            "Rectangle",
		aliases:          []string{"rectangle"},
		measurements:     []string{"a", "b"},
		areaFormula:      "a*b",
		perimeterFormula: "2a + 2b",
	},
	KindSquare: {
		name:             "Square",
		label:            "Square",
		aliases:          []string{"square"},
		measurements:     []string{"a"},
		areaFormula:      "a^2",
		perimeterFormula: "4*a",
	},
	KindRegularPentagon: {
		name:             "RegularPentagon",
		label:            "Regular pentagon",
		aliases:          []string{"pentagon", "regular-pentagon", "regular_pentagon"},
		measurements:     []string{"a"},
		areaFormula:      "(a^2 * sqrt(5(5 + 2*sqrt(5)))) / 4",
		perimeterFormula: "5*a",
	},
}

// Kinds returns every supported kind in menu order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindTriangle, KindEquilateralTriangle, KindRectangle, KindSquare, KindRegularPentagon}
}

// String returns the variant name, e.g. "EquilateralTriangle".
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Label returns a human friendly name, e.g. "Equilateral triangle".
func (k Kind) Label() string {
	if info, ok := kinds[k]; ok {
		return info.label
	}
	return k.String()
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Measurements names the measurements that define a shape of this kind, in constructor order.
func (k Kind) Measurements() []string {
	info, ok := kinds[k]
	if !ok {
		return nil
	}
	out := make([]string, len(info.measurements))
	copy(out, info.measurements)
	return out
}

func (k Kind) AreaFormula() string {
	return kinds[k].areaFormula
}

func (k Kind) PerimeterFormula() string {
	return kinds[k].perimeterFormula
}

// ParseKind resolves a kind from its variant name, an alias or its menu number (1-6).
// Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	raw := strings.TrimSpace(s)
	if n, err := strconv.Atoi(raw); err == nil {
		if k := Kind(n); k.Valid() {
			return k, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	needle := strings.ToLower(raw)
	for _, k := range Kinds() {
		info := kinds[k]
		if needle == strings.ToLower(info.name) || needle == strings.ToLower(info.label) {
			return k, nil
		}
		for _, alias := range info.aliases {
			if needle == alias {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
