package artwork

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Renderer turns asset paths into transcript-ready text. PNG assets are
// decoded and rasterized to ASCII; anything else is read verbatim as
// text. Failures never escape as errors: they come back as bracketed
// placeholder strings so a render can never fail a command.
//
// Results are memoized for the life of the process, keyed by the trimmed
// path label. Entries are never invalidated; a changed asset file needs a
// process restart to be re-rendered.
type Renderer struct {
	baseDir string

	mu    sync.Mutex
	cache map[string]string
}

// NewRenderer creates a renderer resolving relative asset paths against
// baseDir, or the working directory when baseDir is empty.
func NewRenderer(baseDir string) *Renderer {
	if baseDir == "" {
		baseDir = "."
	}
	return &Renderer{
		baseDir: baseDir,
		cache:   map[string]string{},
	}
}

// Render returns the text form of the asset at path. A blank path means
// "no artwork" and renders as an empty string, not an error.
func (r *Renderer) Render(path string) string {
	label := strings.TrimSpace(path)
	if label == "" {
		return ""
	}

	r.mu.Lock()
	cached, ok := r.cache[label]
	r.mu.Unlock()
	if ok {
		return cached
	}

	// Concurrent first renders of one label may duplicate work; they
	// produce the same value, and last write wins.
	content := r.render(label)

	r.mu.Lock()
	r.cache[label] = content
	r.mu.Unlock()

	return content
}

func (r *Renderer) render(label string) string {
	asset := label
	if !filepath.IsAbs(asset) {
		asset = filepath.Join(r.baseDir, asset)
	}

	if strings.EqualFold(filepath.Ext(asset), ".png") {
		text, err := renderPNG(asset)
		if err != nil {
			slog.Warn("rendering image asset", "path", label, "error", err)
			return fmt.Sprintf("[unable to render image: %s]", label)
		}
		return text
	}

	content, err := os.ReadFile(asset)
	if err != nil {
		slog.Warn("reading text asset", "path", label, "error", err)
		return fmt.Sprintf("[missing artwork: %s]", label)
	}
	return string(content)
}

func renderPNG(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	bm, err := decodePNG(data)
	if err != nil {
		return "", err
	}
	return asciiArt(bm), nil
}
