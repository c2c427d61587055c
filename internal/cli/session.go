package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/shapes"
	"github.com/aretw0/shapes/internal/metrics"
	"github.com/aretw0/shapes/internal/presentation/tui"
	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/runner"
)

// RunSession executes a single interactive session.
func RunSession(opts RunOptions) error {
	opts.defaults()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := createLogger(opts.Err, opts.Debug, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	col := collection.New()
	if err := cfg.Seed(col); err != nil {
		return fmt.Errorf("failed to seed collection: %w", err)
	}
	if col.Len() > 0 {
		logger.Debug("collection seeded", "path", opts.ConfigPath, "shapes", col.Len())
	}

	stats := metrics.New()
	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithCollection(col),
		runner.WithTableOptions(collection.WithPadding(cfg.Padding)),
		runner.WithStatistics(stats.Summary),
		runner.WithHooks(metrics.Chain(stats.Hooks(), debugHooks(logger))),
	}

	in, inTTY := terminalFile(opts.In)
	out, outTTY := terminalFile(opts.Out)
	interactive := inTTY && outTTY && !cfg.Plain
	if interactive {
		runnerOpts = append(runnerOpts,
			runner.WithHandler(runner.NewSurveyHandler(in, out, opts.Err)),
			runner.WithRenderer(tui.NewRenderer()),
		)
	} else {
		text := runner.NewTextHandler(opts.In, opts.Out)
		defer text.Close()
		runnerOpts = append(runnerOpts, runner.WithHandler(text))
	}

	if cfg.Banner && !cfg.Plain {
		tui.PrintBanner(opts.Out, shapes.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	logger.Debug("session starting", "interactive", interactive, "padding", cfg.Padding)
	err = runner.NewRunner(runnerOpts...).Run(sigCtx)

	logCompletion(opts.Out, err, sigCtx.Signal())
	return handleExecutionError(err)
}
