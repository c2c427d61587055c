package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: debug
plain: true
padding: 4
shapes:
  - kind: circle
    measurements: [5]
  - kind: rectangle
    measurements: ["4", 6]
  - kind: square
    measurements: 5
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Plain)
	assert.True(t, cfg.Banner, "unset keys keep their default")
	assert.Equal(t, 4, cfg.Padding)
	assert.Equal(t, []ShapeSpec{
		{Kind: "circle", Measurements: []float64{5}},
		{Kind: "rectangle", Measurements: []float64{4, 6}},
		{Kind: "square", Measurements: []float64{5}},
	}, cfg.Shapes)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"Unknown key":      "colour: red\n",
		"Negative padding": "padding: -1\n",
		"Bad YAML":         "shapes: [\n",
		"Bad measurement":  "shapes:\n  - kind: circle\n    measurements: [big]\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing optional file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, DefaultPath), false)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Missing required file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("banner: false\n"), 0o644))

		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.False(t, cfg.Banner)
	})
}

func TestSeed(t *testing.T) {
	cfg := Default()
	cfg.Shapes = []ShapeSpec{
		{Kind: "circle", Measurements: []float64{5}},
		{Kind: "square", Measurements: []float64{5}},
	}

	col := collection.New()
	require.NoError(t, cfg.Seed(col))
	require.Equal(t, 2, col.Len())

	first, _ := col.At(0)
	assert.Equal(t, "Circle, r = 5", first.Describe())
}

func TestSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec ShapeSpec
		want error
	}{
		{"Unknown kind", ShapeSpec{Kind: "hexagon", Measurements: []float64{1}}, shape.ErrUnknownKind},
		{"Negative", ShapeSpec{Kind: "circle", Measurements: []float64{-1}}, shape.ErrInvalidMeasurement},
		{"Arity", ShapeSpec{Kind: "triangle", Measurements: []float64{1, 2}}, shape.ErrMeasurementCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Shapes = []ShapeSpec{tt.spec}
			err := cfg.Seed(collection.New())
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "shapes[0]")
		})
	}
}

func TestParseShapeSpec(t *testing.T) {
	spec, err := ParseShapeSpec("rectangle: 4, 6.5")
	require.NoError(t, err)
	assert.Equal(t, ShapeSpec{Kind: "rectangle", Measurements: []float64{4, 6.5}}, spec)

	for _, bad := range []string{"circle", "circle:", "circle:x", "square:5,"} {
		_, err := ParseShapeSpec(bad)
		assert.Error(t, err, bad)
	}
}
