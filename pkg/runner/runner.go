package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/shapes/internal/logging"
	"github.com/aretw0/shapes/pkg/collection"
	"github.com/aretw0/shapes/pkg/shape"
)

// Menu keys, as typed in the text interface.
const (
	KeyExit         = "0"
	KeyAdd          = "1"
	KeyList         = "2"
	KeyMaxPerimeter = "3"
	KeyMaxArea      = "4"
	KeyFormula      = "5"
	KeyStatistics   = "6"
)

const (
	menuPrompt  = "Select an option: "
	shapePrompt = "Choose shape: "
)

// Runner handles the interactive menu loop over a shape collection.
type Runner struct {
	Handler      IOHandler
	Logger       *slog.Logger
	Renderer     ContentRenderer
	Hooks        Hooks
	Collection   *collection.Collection
	TableOptions []collection.TableOption
	Statistics   StatisticsFunc
}

// NewRunner creates a Runner. Without options it talks over Stdin/Stdout and
// starts from an empty collection.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	if r.Collection == nil {
		r.Collection = collection.New()
	}
	return r
}

// Run executes the menu loop until the user exits, input ends or ctx is cancelled.
// Recoverable errors are reported to the user and the loop continues.
// Reaching the end of input is a normal exit.
func (r *Runner) Run(ctx context.Context) error {
	r.Logger.Debug("session started", "shapes", r.Collection.Len())

	for {
		key, err := r.Handler.Choose(ctx, menuPrompt, r.menu())
		if err != nil {
			if errors.Is(err, ErrInvalidChoice) {
				if err := r.reject(ctx, OpMenu, err); err != nil {
					return err
				}
				continue
			}
			return r.finish(err)
		}

		if key == KeyExit {
			r.Logger.Debug("session finished", "shapes", r.Collection.Len())
			return nil
		}

		op, err := r.dispatch(ctx, key)
		if err == nil {
			continue
		}
		if !IsRecoverable(err) {
			return r.finish(err)
		}
		if err := r.reject(ctx, op, err); err != nil {
			return err
		}
	}
}

// IsRecoverable reports whether err should be shown to the user while the session continues.
func IsRecoverable(err error) bool {
	for _, target := range []error{
		ErrNotANumber,
		ErrInvalidChoice,
		ErrInputTooLarge,
		ErrInvalidUTF8,
		shape.ErrInvalidMeasurement,
		shape.ErrMeasurementCount,
		shape.ErrUnknownKind,
		collection.ErrNotAShape,
		collection.ErrEmptyCollection,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (r *Runner) finish(err error) error {
	if errors.Is(err, io.EOF) {
		r.Logger.Debug("input closed", "shapes", r.Collection.Len())
		return nil
	}
	return err
}

func (r *Runner) menu() []Choice {
	choices := []Choice{
		{Key: KeyAdd, Label: "Add shape"},
		{Key: KeyList, Label: "Show all shapes"},
		{Key: KeyMaxPerimeter, Label: "Show shape with the largest perimeter"},
		{Key: KeyMaxArea, Label: "Show shape with the largest area"},
		{Key: KeyFormula, Label: "Show formula (area and perimeter)"},
	}
	if r.Statistics != nil {
		choices = append(choices, Choice{Key: KeyStatistics, Label: "Show statistics"})
	}
	return append(choices, Choice{Key: KeyExit, Label: "Exit"})
}

func shapeChoices() []Choice {
	kinds := shape.Kinds()
	choices := make([]Choice, len(kinds))
	for i, k := range kinds {
		choices[i] = Choice{Key: strconv.Itoa(int(k)), Label: k.Label()}
	}
	return choices
}

func (r *Runner) dispatch(ctx context.Context, key string) (Operation, error) {
	switch key {
	case KeyAdd:
		return OpAdd, r.addShape(ctx)
	case KeyList:
		return OpList, r.showTable(ctx)
	case KeyMaxPerimeter:
		return OpMaxPerimeter, r.showLargest(ctx, OpMaxPerimeter)
	case KeyMaxArea:
		return OpMaxArea, r.showLargest(ctx, OpMaxArea)
	case KeyFormula:
		return OpFormula, r.showFormula(ctx)
	case KeyStatistics:
		return OpStatistics, r.showStatistics(ctx)
	default:
		return OpMenu, ErrInvalidChoice
	}
}

func (r *Runner) chooseKind(ctx context.Context) (shape.Kind, error) {
	key, err := r.Handler.Choose(ctx, shapePrompt, shapeChoices())
	if err != nil {
		return 0, err
	}
	return shape.ParseKind(key)
}

func (r *Runner) addShape(ctx context.Context) error {
	kind, err := r.chooseKind(ctx)
	if err != nil {
		return err
	}

	names := kind.Measurements()
	values := make([]float64, len(names))
	for i, name := range names {
		raw, err := r.Handler.Input(ctx, fieldPrompt(kind, name))
		if err != nil {
			return err
		}
		if values[i], err = ParseMeasurement(name, raw); err != nil {
			return err
		}
	}

	s, err := shape.New(kind, values...)
	if err != nil {
		return err
	}
	if err := r.Collection.Add(s); err != nil {
		return err
	}

	idx := r.Collection.Len() - 1
	r.Logger.Debug("shape added", "index", idx, "kind", kind.String(), "shape", s.Describe())
	r.Hooks.shapeAdded(ctx, idx, s)

	if err := r.Handler.SystemOutput(ctx, fmt.Sprintf("Added #%d: %s", idx, s.Describe())); err != nil {
		return err
	}
	if t, ok := s.(shape.Triangle); ok && !t.Closed() {
		r.Logger.Debug("triangle inequality violated", "index", idx, "shape", s.Describe())
		return r.Handler.SystemOutput(ctx, "Warning: these sides do not form a triangle, its area is undefined (NaN).")
	}
	return nil
}

func fieldPrompt(kind shape.Kind, name string) string {
	if kind == shape.KindCircle {
		return "Write radius " + name + ": "
	}
	return "Write length side " + name + ": "
}

func (r *Runner) showTable(ctx context.Context) error {
	r.Hooks.query(ctx, OpList, 0)
	return r.Handler.Output(ctx, r.Collection.RenderTable(r.TableOptions...))
}

func (r *Runner) showLargest(ctx context.Context, op Operation) error {
	s, msg, err := Largest(r.Collection, op)
	if err != nil {
		return err
	}
	r.Hooks.query(ctx, op, s.Kind())
	return r.Handler.Output(ctx, msg)
}

// Largest finds the shape of c with the largest area (OpMaxArea) or perimeter
// (any other op) and returns it with the line shown to the user.
func Largest(c *collection.Collection, op Operation) (shape.Shape, string, error) {
	scan, label, value := c.MaxByPerimeter, "perimeter", shape.Shape.Perimeter
	if op == OpMaxArea {
		scan, label, value = c.MaxByArea, "area", shape.Shape.Area
	}

	s, err := scan()
	if err != nil {
		return nil, "", err
	}
	return s, fmt.Sprintf("Shape with the largest %s: %s (%s = %.2f)", label, s.Describe(), label, value(s)), nil
}

func (r *Runner) showFormula(ctx context.Context) error {
	kind, err := r.chooseKind(ctx)
	if err != nil {
		return err
	}
	r.Hooks.query(ctx, OpFormula, kind)

	if r.Renderer != nil {
		rendered, err := r.Renderer(FormulaMarkdown(kind))
		if err == nil {
			return r.Handler.Output(ctx, rendered)
		}
		r.Logger.Debug("formula render failed, falling back to text", "err", err)
	}
	return r.Handler.Output(ctx, FormulaText(kind))
}

// FormulaText is the plain formula sheet for kind.
func FormulaText(kind shape.Kind) string {
	return fmt.Sprintf("area: %s\nperimeter: %s", kind.AreaFormula(), kind.PerimeterFormula())
}

// FormulaMarkdown is the formula sheet for kind as a markdown table.
func FormulaMarkdown(kind shape.Kind) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", kind.Label())
	sb.WriteString("| | Formula |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Area | `%s` |\n", kind.AreaFormula())
	fmt.Fprintf(&sb, "| Perimeter | `%s` |\n", kind.PerimeterFormula())
	fmt.Fprintf(&sb, "\nMeasurements: %s\n", strings.Join(kind.Measurements(), ", "))
	return sb.String()
}

func (r *Runner) showStatistics(ctx context.Context) error {
	if r.Statistics == nil {
		return ErrInvalidChoice
	}
	summary, err := r.Statistics()
	if err != nil {
		return err
	}
	r.Hooks.query(ctx, OpStatistics, 0)
	return r.Handler.Output(ctx, summary)
}

// reject reports a recoverable error to the user.
func (r *Runner) reject(ctx context.Context, op Operation, err error) error {
	r.Logger.Debug("operation rejected", "op", string(op), "err", err)
	r.Hooks.rejected(ctx, op, err)
	return r.Handler.SystemOutput(ctx, UserMessage(err))
}

// UserMessage turns a recoverable error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidChoice):
		return "Bad choice"
	case errors.Is(err, collection.ErrEmptyCollection):
		return "No shapes yet. Add a shape first."
	default:
		return "Error: " + err.Error()
	}
}
