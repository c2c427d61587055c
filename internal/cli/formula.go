package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/shapes/internal/presentation/tui"
	"github.com/aretw0/shapes/pkg/runner"
	"github.com/aretw0/shapes/pkg/shape"
)

// RunFormula prints the formula sheet of one kind, or of every kind when
// kind is empty. Markdown is rendered unless plain is set.
func RunFormula(out io.Writer, kind string, plain bool) error {
	kinds := shape.Kinds()
	if kind != "" {
		k, err := shape.ParseKind(kind)
		if err != nil {
			return err
		}
		kinds = []shape.Kind{k}
	}

	var render func(string) (string, error)
	if !plain {
		render = tui.NewRenderer()
	}

	for i, k := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printFormula(out, k, render); err != nil {
			return err
		}
	}
	return nil
}

func printFormula(out io.Writer, k shape.Kind, render func(string) (string, error)) error {
	if render != nil {
		if rendered, err := render(runner.FormulaMarkdown(k)); err == nil {
			_, err = fmt.Fprint(out, rendered)
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%s\n%s\n", k.Label(), runner.FormulaText(k))
	return err
}
