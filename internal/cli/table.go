package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/shapes/internal/config"
	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/runner"
)

// TableOptions configures the non-interactive 'table' command.
type TableOptions struct {
	ConfigPath     string
	ConfigRequired bool
	Shapes         []string // "kind:m1,m2" specs, added after the configured ones
	Padding        int      // Negative keeps the configured padding
	Out            io.Writer
}

// RunTable builds a collection from the config file and the given specs,
// then prints its table followed by the largest perimeter and area.
func RunTable(opts TableOptions) error {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath
	}
	cfg, err := config.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return err
	}
	if opts.Padding >= 0 {
		cfg.Padding = opts.Padding
	}

	for _, raw := range opts.Shapes {
		spec, err := config.ParseShapeSpec(raw)
		if err != nil {
			return err
		}
		cfg.Shapes = append(cfg.Shapes, spec)
	}

	col := collection.New()
	if err := cfg.Seed(col); err != nil {
		return err
	}

	if err := col.Render(opts.Out, collection.WithPadding(cfg.Padding)); err != nil {
		return err
	}
	if col.Len() == 0 {
		return nil
	}

	for _, op := range []runner.Operation{runner.OpMaxPerimeter, runner.OpMaxArea} {
		_, msg, err := runner.Largest(col, op)
		if err != nil {
			return err
		}
		fmt.Fprintln(opts.Out, msg)
	}
	return nil
}
