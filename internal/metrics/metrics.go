// Package metrics counts session activity with Prometheus collectors fed by runner hooks.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/runner"
	"github.com/aretw0/shapes/pkg/shape"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "shapes"

// Collector owns a private registry so several sessions (or tests) never collide.
type Collector struct {
	registry   *prometheus.Registry
	added      *prometheus.CounterVec
	queries    *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

// New creates a collector with its counters registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		added: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "added_total",
			Help:      "Shapes added to the collection, by kind.",
		}, []string{"kind"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Successful read operations, by operation.",
		}, []string{"operation"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Operations rejected with a recoverable error, by operation and reason.",
		}, []string{"operation", "reason"}),
	}
	c.registry.MustRegister(c.added, c.queries, c.rejections)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns runner hooks that feed the counters.
func (c *Collector) Hooks() runner.Hooks {
	return runner.Hooks{
		OnShapeAdded: func(ctx context.Context, e *runner.ShapeEvent) {
			c.added.WithLabelValues(e.Shape.Kind().String()).Inc()
		},
		OnQuery: func(ctx context.Context, e *runner.QueryEvent) {
			c.queries.WithLabelValues(string(e.Operation)).Inc()
		},
		OnRejected: func(ctx context.Context, e *runner.RejectEvent) {
			c.rejections.WithLabelValues(string(e.Operation), Reason(e.Err)).Inc()
		},
	}
}

// Chain combines several hook sets; each callback runs in order.
func Chain(hooks ...runner.Hooks) runner.Hooks {
	return runner.Hooks{
		OnShapeAdded: func(ctx context.Context, e *runner.ShapeEvent) {
			for _, h := range hooks {
				if h.OnShapeAdded != nil {
					h.OnShapeAdded(ctx, e)
				}
			}
		},
		OnQuery: func(ctx context.Context, e *runner.QueryEvent) {
			for _, h := range hooks {
				if h.OnQuery != nil {
					h.OnQuery(ctx, e)
				}
			}
		},
		OnRejected: func(ctx context.Context, e *runner.RejectEvent) {
			for _, h := range hooks {
				if h.OnRejected != nil {
					h.OnRejected(ctx, e)
				}
			}
		},
	}
}

// Reason classifies a recoverable error for the rejected_total label.
func Reason(err error) string {
	switch {
	case errors.Is(err, runner.ErrNotANumber):
		return "not_a_number"
	case errors.Is(err, shape.ErrInvalidMeasurement):
		return "invalid_measurement"
	case errors.Is(err, collection.ErrEmptyCollection):
		return "empty_collection"
	case errors.Is(err, runner.ErrInvalidChoice):
		return "bad_choice"
	default:
		return "other"
	}
}

// Summary renders the current counter values as text for the statistics menu.
func (c *Collector) Summary() (string, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return "", err
	}

	titles := map[string]string{
		namespace + "_added_total":    "Shapes added",
		namespace + "_queries_total":  "Queries",
		namespace + "_rejected_total": "Rejected",
	}
	totals := map[string]float64{}
	details := map[string][]string{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			totals[mf.GetName()] += v
			details[mf.GetName()] = append(details[mf.GetName()], fmt.Sprintf("%s: %.0f", labelString(m), v))
		}
	}

	var sb strings.Builder
	sb.WriteString("Session statistics\n")
	for _, name := range []string{namespace + "_added_total", namespace + "_queries_total", namespace + "_rejected_total"} {
		fmt.Fprintf(&sb, "  %s: %.0f", titles[name], totals[name])
		if d := details[name]; len(d) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(d, ", "))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func labelString(m *dto.Metric) string {
	values := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		values = append(values, lp.GetValue())
	}
	return strings.Join(values, "/")
}
