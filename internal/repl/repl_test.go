package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

// scriptedSession feeds a canned input stream and captures everything the
// loop writes back.
type scriptedSession struct {
	in  io.Reader
	out bytes.Buffer
}

func (s *scriptedSession) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s *scriptedSession) Write(p []byte) (int, error) { return s.out.Write(p) }

func newReplWorld() *game.World {
	return &game.World{
		Title:         "Test Cove",
		StartLocation: "deck",
		Locations: []*game.Location{
			{
				ID:          "deck",
				Name:        "Deck",
				Description: "Open planks.",
				Objects: []*game.Object{
					{ID: "coin", Name: "coin", Description: "A coin.", CanPickUp: true},
				},
			},
		},
	}
}

const replGreeting = "Welcome to Test Cove\nLocation: Deck\nOpen planks.\nNearby objects: coin.\n"

func runScript(t *testing.T, input string) (string, error) {
	t.Helper()
	sess := &scriptedSession{in: strings.NewReader(input)}
	err := Run(context.Background(), sess, commands.NewInterpreter(newReplWorld()))
	return sess.out.String(), err
}

func TestRunTranscripts(t *testing.T) {
	tests := map[string]struct {
		input     string
		expOutput string
	}{
		"end of stream": {
			input:     "",
			expOutput: replGreeting + "\n> ",
		},
		"quit": {
			input:     "quit\n",
			expOutput: replGreeting + "\n> Farewell, adventurer.\n",
		},
		"exit mixed case": {
			input:     "  EXIT \n",
			expOutput: replGreeting + "\n> Farewell, adventurer.\n",
		},
		"command then quit": {
			input:     "take coin\nquit\n",
			expOutput: replGreeting + "\n> You pick up the coin.\n\n> Farewell, adventurer.\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := runScript(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "transcript", out, tt.expOutput)
		})
	}
}

func TestRunUnterminatedFinalLine(t *testing.T) {
	out, err := runScript(t, "take coin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "You pick up the coin.") {
		t.Errorf("expected the final line to be played, got %q", out)
	}
}

func TestRunContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sess := &scriptedSession{in: strings.NewReader("take coin\n")}
	err := Run(ctx, sess, commands.NewInterpreter(newReplWorld()))

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// The greeting lands before the loop notices cancellation.
	testutil.AssertEqual(t, "output", sess.out.String(), replGreeting)
}

type brokenStream struct{}

func (brokenStream) Read(p []byte) (int, error)  { return 0, io.EOF }
func (brokenStream) Write(p []byte) (int, error) { return 0, errors.New("stream closed") }

func TestRunWriteFailure(t *testing.T) {
	err := Run(context.Background(), brokenStream{}, commands.NewInterpreter(newReplWorld()))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "writing greeting") {
		t.Errorf("expected greeting write error, got %v", err)
	}
}

func TestIsQuit(t *testing.T) {
	tests := map[string]struct {
		raw string
		exp bool
	}{
		"quit":          {"quit", true},
		"exit":          {"exit", true},
		"uppercase":     {"QUIT", true},
		"padded":        {"  exit  \n", true},
		"quit sentence": {"quit the game", false},
		"abbreviation":  {"q", false},
		"empty":         {"", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "is quit", isQuit(tt.raw), tt.exp)
		})
	}
}
