package runner

import (
	"log/slog"

	"github.com/aretw0/shapes/pkg/collection"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// StatisticsFunc produces a printable summary of the session.
type StatisticsFunc func() (string, error)

// WithHandler configures the IOHandler.
func WithHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithRenderer configures the markdown renderer used for formula sheets.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}

// WithCollection starts the session from an existing collection (e.g. seeded from config).
func WithCollection(c *collection.Collection) Option {
	return func(r *Runner) {
		r.Collection = c
	}
}

// WithTableOptions configures how the shape table is rendered.
func WithTableOptions(opts ...collection.TableOption) Option {
	return func(r *Runner) {
		r.TableOptions = append(r.TableOptions, opts...)
	}
}

// WithStatistics enables the statistics menu entry.
func WithStatistics(fn StatisticsFunc) Option {
	return func(r *Runner) {
		r.Statistics = fn
	}
}
