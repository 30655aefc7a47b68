// Package narrator produces free-form narration for player input the
// fixed verb table does not recognize. It is an optional collaborator:
// callers must treat every failure identically and fall back to locally
// composed text, so a narration backend can never fail a command.
package narrator

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the backend is missing, misconfigured, or
// unreachable. Callers should not distinguish it from other failures
// beyond logging; the recovery path is the same.
var ErrUnavailable = errors.New("narrator unavailable")

// Exchange is one command/response pair previously produced by the
// narrator, replayed for conversational continuity.
type Exchange struct {
	Command  string
	Response string
}

// Narrator generates a reply to a free-form command given a read-only
// snapshot of the game and the trailing conversation.
type Narrator interface {
	Narrate(ctx context.Context, command string, game *Context, history []Exchange) (string, error)
}
