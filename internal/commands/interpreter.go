// Package commands interprets free-text player input against a world and
// its session state. A fixed ordered verb table is tried top to bottom;
// the first matching entry handles the command, and anything unmatched is
// handed to the narration collaborator with a canned local fallback.
package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-adventure/internal/artwork"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/narrator"
)

// historyLimit bounds the collaborator conversation buffer.
const historyLimit = 10

// Response is the outcome of one command. Handled is false only when the
// input fell through to the narration collaborator and the collaborator
// was absent or failed, leaving the canned recovery text in Output.
type Response struct {
	Output  string
	Handled bool
}

// Interpreter is one player session: it exclusively owns its mutable
// state and conversation history. It is not safe for concurrent use; run
// one command to completion before the next.
type Interpreter struct {
	world    *game.World
	state    *game.State
	resolver *resolver
	verbs    []verb

	// renderer may be shared between sessions; nil disables artwork.
	renderer *artwork.Renderer

	narrator narrator.Narrator
	history  []narrator.Exchange
}

// InterpreterOpt configures an Interpreter.
type InterpreterOpt func(*Interpreter)

// WithRenderer enables ASCII artwork in location descriptions and the map
// view, rendered through r.
func WithRenderer(r *artwork.Renderer) InterpreterOpt {
	return func(i *Interpreter) {
		i.renderer = r
	}
}

// WithNarrator routes unrecognized commands to n instead of the canned
// local fallback.
func WithNarrator(n narrator.Narrator) InterpreterOpt {
	return func(i *Interpreter) {
		i.narrator = n
	}
}

// NewInterpreter starts a fresh session over world.
func NewInterpreter(world *game.World, opts ...InterpreterOpt) *Interpreter {
	i := &Interpreter{
		world: world,
		state: game.NewState(world),
	}
	i.resolver = &resolver{world: world, state: i.state}
	i.verbs = verbTable(i)

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Handle runs one command to completion. It never returns an error:
// every failure mode renders as narrative text.
func (i *Interpreter) Handle(ctx context.Context, raw string) Response {
	command := strings.TrimSpace(raw)
	if command == "" {
		return Response{Output: i.describeLocation(), Handled: true}
	}

	lowered := strings.ToLower(command)
	for _, v := range i.verbs {
		if target, ok := v.match(lowered); ok {
			return v.run(ctx, target)
		}
	}

	return i.narrate(ctx, command)
}

// DescribeLocation renders the current location in full. Front ends use
// it as the session greeting.
func (i *Interpreter) DescribeLocation() string {
	return i.describeLocation()
}

// View projects the current location and inventory for presentation
// layers.
func (i *Interpreter) View() game.View {
	return game.Snapshot(i.world, i.state)
}

// Title returns the world's display title.
func (i *Interpreter) Title() string {
	return i.world.Title
}

func (i *Interpreter) currentLocation() *game.Location {
	return i.world.Location(i.state.Player.LocationID)
}

func (i *Interpreter) artEnabled() bool {
	return i.renderer != nil
}

// renderArt returns the rendered artwork for an asset path, or "" when
// artwork is disabled.
func (i *Interpreter) renderArt(path string) string {
	if !i.artEnabled() {
		return ""
	}
	return i.renderer.Render(path)
}
