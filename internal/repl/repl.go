// Package repl drives interactive sessions: a greeting, then a
// read-eval-print loop over any stream. The console worker and the
// network listeners all hand their streams here.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
)

const promptText = "\n> "

const farewellText = "Farewell, adventurer."

// quitWords end the session when typed alone.
var quitWords = []string{"quit", "exit"}

// Run greets the player with the title and opening location, then reads
// commands from rw until the player quits, the stream ends, or ctx is
// canceled between commands.
func Run(ctx context.Context, rw io.ReadWriter, interp *commands.Interpreter) error {
	greeting := fmt.Sprintf("Welcome to %s\n%s\n", interp.Title(), display.Wrap(interp.DescribeLocation()))
	if _, err := io.WriteString(rw, greeting); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}

	br := bufio.NewReader(rw)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := prompt(rw, br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		if isQuit(raw) {
			_, err := io.WriteString(rw, farewellText+"\n")
			return err
		}

		resp := interp.Handle(ctx, raw)
		if _, err := io.WriteString(rw, display.Wrap(resp.Output)+"\n"); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// prompt writes the input marker and reads one line. A final unterminated
// line still counts; the EOF surfaces on the next read.
func prompt(w io.Writer, br *bufio.Reader) (string, error) {
	if _, err := io.WriteString(w, promptText); err != nil {
		return "", err
	}

	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func isQuit(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for _, w := range quitWords {
		if trimmed == w {
			return true
		}
	}
	return false
}
