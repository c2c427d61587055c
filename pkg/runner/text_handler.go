package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// TextHandler implements the line-based interface.
// Menus are printed as numbered lists and answered by typing the key.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer

	term      *termenv.Output
	inputChan chan inputResult
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		term:   termenv.NewOutput(w),
		done:   make(chan struct{}),
	}
}

// Close stops the background reader. Pending and later Input calls return io.EOF
// once buffered lines are drained. The underlying reader is not closed.
func (h *TextHandler) Close() error {
	h.closeOnce.Do(func() {
		if h.done != nil {
			close(h.done)
		}
	})
	return nil
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so a blocked read can be abandoned when
// the context is cancelled.
func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				h.send(inputResult{err: err})
			}
			return
		}
	}
}

// send hands res to Input, giving up when the handler is closed.
func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

func (h *TextHandler) Output(ctx context.Context, content string) error {
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(content, "\n"))
	return err
}

func (h *TextHandler) Input(ctx context.Context, prompt string) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := SanitizeInput(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) Choose(ctx context.Context, prompt string, choices []Choice) (string, error) {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, c := range choices {
		fmt.Fprintf(&sb, "    %s. %s\n", c.Key, c.Label)
	}
	if _, err := fmt.Fprintln(h.Writer, sb.String()); err != nil {
		return "", err
	}

	answer, err := h.Input(ctx, prompt)
	if err != nil {
		return "", err
	}
	return matchChoice(choices, answer)
}

// SystemOutput prints msg highlighted when the writer is a color terminal.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	styled := h.term.String(msg).Foreground(h.term.Color("#a78bfa"))
	_, err := fmt.Fprintln(h.Writer, styled.String())
	return err
}
