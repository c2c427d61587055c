package cli

import (
	"io"
	"os"

	"github.com/aretw0/shapes/internal/config"
)

// RunOptions contains all the configuration for the interactive session.
type RunOptions struct {
	ConfigPath     string
	ConfigRequired bool // Set when the path was given explicitly
	Debug          bool
	Plain          bool
	NoBanner       bool
	Padding        int // Negative keeps the configured padding

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (o *RunOptions) defaults() {
	if o.ConfigPath == "" {
		o.ConfigPath = config.DefaultPath
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Execute handles the 'run' command logic.
func Execute(opts RunOptions) error {
	opts.defaults()
	return RunSession(opts)
}

// loadConfig reads the config file and applies flag overrides on top of it.
func loadConfig(opts RunOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Plain {
		cfg.Plain = true
	}
	if opts.NoBanner {
		cfg.Banner = false
	}
	if opts.Padding >= 0 {
		cfg.Padding = opts.Padding
	}
	return cfg, nil
}
