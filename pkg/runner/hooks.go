package runner

import (
	"context"
	"time"

	"github.com/aretw0/shapes/pkg/shape"
)

// EventType defines the category of the event.
type EventType string

const (
	EventShapeAdded EventType = "shape_added"
	EventQuery      EventType = "query"
	EventRejected   EventType = "rejected"
)

// Operation names a menu action.
type Operation string

const (
	OpAdd          Operation = "add"
	OpList         Operation = "list"
	OpMaxPerimeter Operation = "max_perimeter"
	OpMaxArea      Operation = "max_area"
	OpFormula      Operation = "formula"
	OpStatistics   Operation = "statistics"
	OpMenu         Operation = "menu"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ShapeEvent is fired after a shape was stored.
type ShapeEvent struct {
	EventBase
	Index int
	Shape shape.Shape
}

// QueryEvent is fired after a read-only operation succeeded.
type QueryEvent struct {
	EventBase
	Operation Operation
	Kind      shape.Kind // Set for formula lookups and max scans
}

// RejectEvent is fired when an operation failed with a recoverable error.
type RejectEvent struct {
	EventBase
	Operation Operation
	Err       error
}

// Hooks defines callbacks for session observability.
type Hooks struct {
	OnShapeAdded func(context.Context, *ShapeEvent)
	OnQuery      func(context.Context, *QueryEvent)
	OnRejected   func(context.Context, *RejectEvent)
}

func (h Hooks) shapeAdded(ctx context.Context, idx int, s shape.Shape) {
	if h.OnShapeAdded == nil {
		return
	}
	h.OnShapeAdded(ctx, &ShapeEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: EventShapeAdded},
		Index:     idx,
		Shape:     s,
	})
}

func (h Hooks) query(ctx context.Context, op Operation, kind shape.Kind) {
	if h.OnQuery == nil {
		return
	}
	h.OnQuery(ctx, &QueryEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: EventQuery},
		Operation: op,
		Kind:      kind,
	})
}

func (h Hooks) rejected(ctx context.Context, op Operation, err error) {
	if h.OnRejected == nil {
		return
	}
	h.OnRejected(ctx, &RejectEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: EventRejected},
		Operation: op,
		Err:       err,
	})
}
