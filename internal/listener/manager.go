// Package listener accepts telnet and ssh connections and runs each one
// as its own game session.
package listener

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/repl"
	"github.com/pixil98/go-log/log"
)

// ConnectionManager turns accepted network streams into game sessions.
// Every connection gets a fresh interpreter; players share nothing but
// the world definitions and the artwork cache.
type ConnectionManager struct {
	sessions func() *commands.Interpreter
}

func NewConnectionManager(sessions func() *commands.Interpreter) *ConnectionManager {
	return &ConnectionManager{sessions: sessions}
}

// AcceptConnection runs a full session on conn, blocking until the player
// quits or the stream ends.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	logger := log.GetLogger(ctx).WithField("session", uuid.New().String())
	ctx = log.SetLogger(ctx, logger)

	logger.Info("session started")
	if err := repl.Run(ctx, conn, m.sessions()); err != nil {
		logger.WithError(err).Warn("session ended")
		return
	}
	logger.Info("session ended")
}
