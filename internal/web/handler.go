// Package web serves the browser front end: a single-page client over a
// JSON API, plus the game's static assets.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
)

//go:embed index.html
var pageTemplate string

// Entry is one line of the session transcript.
type Entry struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// statePayload is the body of every API response: the full transcript
// plus the current view.
type statePayload struct {
	History []Entry   `json:"history"`
	View    game.View `json:"view"`
}

// resetWords restart the adventure instead of being played as commands.
var resetWords = map[string]bool{"reset": true, "restart": true, "start over": true}

// Handler serves one shared browser session. A mutex serializes every
// command since the interpreter is single-owner; concurrent visitors
// share the same playthrough.
type Handler struct {
	sessions func() *commands.Interpreter
	assets   string
	page     []byte

	mu      sync.Mutex
	interp  *commands.Interpreter
	history []Entry
}

// NewHandler builds the handler and its opening session. assets is the
// directory /assets/ URLs resolve against.
func NewHandler(sessions func() *commands.Interpreter, assets string) *Handler {
	h := &Handler{
		sessions: sessions,
		assets:   assets,
	}
	h.reset()
	h.page = h.renderPage()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(h.page); err != nil {
			slog.Warn("writing page", "error", err)
		}

	case strings.HasPrefix(r.URL.Path, "/assets/"):
		h.serveAsset(w, r, strings.TrimPrefix(r.URL.Path, "/assets/"))

	case r.URL.Path == "/api/state":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		h.mu.Lock()
		payload := h.collectState()
		h.mu.Unlock()
		writeJSON(w, payload)

	case r.URL.Path == "/api/command":
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		var req struct {
			Command string `json:"command"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			req.Command = ""
		}
		writeJSON(w, h.handleCommand(r.Context(), req.Command))

	default:
		http.NotFound(w, r)
	}
}

// handleCommand applies one command to the shared session and returns the
// resulting state. Reset words rebuild the session; a blank command
// re-describes the location instead of playing.
func (h *Handler) handleCommand(ctx context.Context, command string) statePayload {
	h.mu.Lock()
	defer h.mu.Unlock()

	trimmed := strings.TrimSpace(command)
	if resetWords[strings.ToLower(trimmed)] {
		h.reset()
		return h.collectState()
	}

	if trimmed == "" {
		h.history = append(h.history, Entry{Speaker: "game", Text: h.interp.DescribeLocation()})
		return h.collectState()
	}

	h.history = append(h.history, Entry{Speaker: "user", Text: command})
	resp := h.interp.Handle(ctx, command)
	h.history = append(h.history, Entry{Speaker: "game", Text: resp.Output})
	return h.collectState()
}

// reset starts the playthrough over with a fresh interpreter and a
// transcript seeded with the opening description. Callers hold mu.
func (h *Handler) reset() {
	h.interp = h.sessions()
	h.history = []Entry{{Speaker: "game", Text: h.interp.DescribeLocation()}}
}

func (h *Handler) collectState() statePayload {
	return statePayload{
		History: slices.Clone(h.history),
		View:    h.interp.View(),
	}
}

// renderPage bakes the opening state into the page so the client has
// something to paint before its first fetch.
func (h *Handler) renderPage() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, err := json.Marshal(h.collectState())
	if err != nil {
		slog.Warn("marshaling bootstrap state", "error", err)
		state = []byte("null")
	}
	// A close-tag sequence inside the JSON would end the bootstrap
	// <script> block early.
	safe := strings.ReplaceAll(string(state), "</", `<\/`)

	page := strings.ReplaceAll(pageTemplate, "__TITLE__", html.EscapeString(h.interp.Title()))
	return []byte(strings.ReplaceAll(page, "__STATE__", safe))
}

// serveAsset serves a file from the assets directory. Paths that escape
// it read as absent.
func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request, rel string) {
	base, err := filepath.Abs(h.assets)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(base, filepath.FromSlash(rel))
	if path != base && !strings.HasPrefix(path, base+string(os.PathSeparator)) {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}
