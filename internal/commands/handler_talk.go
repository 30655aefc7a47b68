package commands

import (
	"context"
	"fmt"
)

// handleTalk returns an actor's default dialogue line, falling back to
// their description when they have nothing scripted to say.
func (i *Interpreter) handleTalk(_ context.Context, target string) Response {
	if target == "" {
		return Response{Output: "Talk to whom?", Handled: true}
	}

	actor := i.resolver.actor(target)
	if actor == nil {
		return Response{Output: fmt.Sprintf("No one named '%s' is here.", target), Handled: true}
	}

	line := actor.Dialogue["default"]
	if line == "" {
		line = actor.Description
	}
	return Response{Output: line, Handled: true}
}
