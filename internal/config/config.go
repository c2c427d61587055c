// Package config loads the optional shapes.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/shape"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "shapes.yaml"

// Config holds the session settings. Flags override file values.
type Config struct {
	LogLevel string      `yaml:"log_level" mapstructure:"log_level"`
	Plain    bool        `yaml:"plain" mapstructure:"plain"`
	Banner   bool        `yaml:"banner" mapstructure:"banner"`
	Padding  int         `yaml:"padding" mapstructure:"padding"`
	Shapes   []ShapeSpec `yaml:"shapes" mapstructure:"shapes"`
}

// ShapeSpec describes a shape to seed the session with.
type ShapeSpec struct {
	Kind         string    `yaml:"kind" mapstructure:"kind"`
	Measurements []float64 `yaml:"measurements" mapstructure:"measurements"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Banner:   true,
		Padding:  collection.DefaultPadding,
	}
}

// Load reads the config file at path. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML content on top of the defaults.
// Values are weakly typed: "5" is accepted where a number is expected and a
// single measurement does not need to be wrapped in a list.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, err
	}
	if raw == nil {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, err
	}
	if cfg.Padding < 0 {
		return Config{}, fmt.Errorf("padding must not be negative (got %d)", cfg.Padding)
	}
	return cfg, nil
}

// Build constructs the shape described by s.
func (s ShapeSpec) Build() (shape.Shape, error) {
	kind, err := shape.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	return shape.New(kind, s.Measurements...)
}

// Seed adds every configured shape to c, in file order.
func (c Config) Seed(col *collection.Collection) error {
	for i, spec := range c.Shapes {
		s, err := spec.Build()
		if err != nil {
			return fmt.Errorf("shapes[%d]: %w", i, err)
		}
		if err := col.Add(s); err != nil {
			return fmt.Errorf("shapes[%d]: %w", i, err)
		}
	}
	return nil
}

// ParseShapeSpec parses the compact "kind:m1,m2,..." form used on the command line,
// e.g. "circle:5" or "rectangle:4,6".
func ParseShapeSpec(s string) (ShapeSpec, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(rest) == "" {
		return ShapeSpec{}, fmt.Errorf("invalid shape %q: expected kind:measurements", s)
	}

	spec := ShapeSpec{Kind: strings.TrimSpace(kind)}
	for _, field := range strings.Split(rest, ",") {
		v, err := cast.ToFloat64E(strings.TrimSpace(field))
		if err != nil {
			return ShapeSpec{}, fmt.Errorf("invalid shape %q: %q is not a number", s, field)
		}
		spec.Measurements = append(spec.Measurements, v)
	}
	return spec, nil
}
