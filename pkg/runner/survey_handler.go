package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/muesli/termenv"
)

// SurveyHandler drives the session with terminal prompts (arrow-key menus,
// inline validation). It requires a real terminal on both ends.
type SurveyHandler struct {
	in   terminal.FileReader
	out  terminal.FileWriter
	err  io.Writer
	term *termenv.Output
}

// NewSurveyHandler creates a prompt-based handler over the given terminal.
func NewSurveyHandler(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyHandler {
	return &SurveyHandler{
		in:   in,
		out:  out,
		err:  errOut,
		term: termenv.NewOutput(out),
	}
}

func (h *SurveyHandler) stdio() survey.AskOpt {
	return survey.WithStdio(h.in, h.out, h.err)
}

func (h *SurveyHandler) Output(ctx context.Context, content string) error {
	_, err := fmt.Fprintln(h.out, strings.TrimRight(content, "\n"))
	return err
}

func (h *SurveyHandler) Input(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{Message: strings.TrimSuffix(strings.TrimSpace(prompt), ":")}
	validator := func(ans any) error {
		s, _ := ans.(string)
		_, err := SanitizeInput(s)
		return err
	}
	if err := survey.AskOne(q, &out, h.stdio(), survey.WithValidator(validator)); err != nil {
		return "", translateSurveyErr(err)
	}
	return SanitizeInput(out)
}

func (h *SurveyHandler) Choose(ctx context.Context, prompt string, choices []Choice) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}

	var idx int
	q := &survey.Select{
		Message:  strings.TrimSuffix(strings.TrimSpace(prompt), ":"),
		Options:  labels,
		PageSize: len(labels),
	}
	if err := survey.AskOne(q, &idx, h.stdio()); err != nil {
		return "", translateSurveyErr(err)
	}
	if idx < 0 || idx >= len(choices) {
		return "", ErrInvalidChoice
	}
	return choices[idx].Key, nil
}

func (h *SurveyHandler) SystemOutput(ctx context.Context, msg string) error {
	styled := h.term.String(msg).Foreground(h.term.Color("#a78bfa"))
	_, err := fmt.Fprintln(h.out, styled.String())
	return err
}

// translateSurveyErr maps prompt interruptions onto the errors the runner
// treats as the end of a session.
func translateSurveyErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, terminal.InterruptErr):
		return context.Canceled
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return err
	}
}
