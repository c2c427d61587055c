package runner

import "context"

// Choice is a single menu entry.
type Choice struct {
	Key   string // What the user types, e.g. "1"
	Label string
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between plain line IO and terminal prompts.
type IOHandler interface {
	// Output presents content (tables, results) to the user.
	Output(ctx context.Context, content string) error

	// Input asks for a single raw value.
	Input(ctx context.Context, prompt string) (string, error)

	// Choose presents the choices and returns the key of the selected one.
	// It returns ErrInvalidChoice when the answer matches no choice.
	Choose(ctx context.Context, prompt string, choices []Choice) (string, error)

	// SystemOutput presents a meta-message (errors, confirmations) to the user.
	// This is distinct from content rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms markdown content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

func matchChoice(choices []Choice, answer string) (string, error) {
	for _, c := range choices {
		if c.Key == answer {
			return c.Key, nil
		}
	}
	return "", ErrInvalidChoice
}
