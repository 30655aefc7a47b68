package repl

import (
	"context"
	"os"

	"github.com/pixil98/go-adventure/internal/commands"
)

// Worker runs one session over the process's own terminal, satisfying the
// service worker contract so the console can sit alongside the network
// listeners.
type Worker struct {
	sessions func() *commands.Interpreter
}

// NewWorker creates a console worker. sessions is invoked once per Start
// to build a fresh interpreter.
func NewWorker(sessions func() *commands.Interpreter) *Worker {
	return &Worker{sessions: sessions}
}

func (w *Worker) Start(ctx context.Context) error {
	return Run(ctx, stdio{}, w.sessions())
}

// stdio glues stdin and stdout into one stream.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
