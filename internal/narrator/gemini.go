package narrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// DefaultModel balances latency against prose quality for short
	// narration turns.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds each narration call so a stalled backend can
	// never hang a command.
	DefaultTimeout = 30 * time.Second

	apiKeyEnvVar = "GEMINI_API_KEY"

	defaultKeyPath = "~/.apikeys/gemini"
)

// Gemini narrates through Google's generative language API.
type Gemini struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

// GeminiOptions tune the backing model. Zero values fall back to the
// package defaults.
type GeminiOptions struct {
	Model   string
	Timeout time.Duration
}

// NewGemini creates a narrator authenticated by apiKey. An empty key is
// ErrUnavailable: the caller decides whether to run without narration.
func NewGemini(ctx context.Context, apiKey string, opts GeminiOptions) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("creating client: %w", ErrUnavailable)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Gemini{
		client:  client,
		model:   client.GenerativeModel(model),
		timeout: timeout,
	}, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() {
	g.client.Close()
}

// Narrate implements Narrator.
func (g *Gemini) Narrate(ctx context.Context, command string, game *Context, history []Exchange) (string, error) {
	prompt, err := buildPrompt(command, game, history)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating narration: %w", err)
	}

	return extractText(resp)
}

// extractText pulls the first non-empty text part out of a response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text, ok := part.(genai.Text)
			if !ok {
				continue
			}
			if out := strings.TrimSpace(string(text)); out != "" {
				return out, nil
			}
		}
	}
	return "", fmt.Errorf("no text returned by model")
}

// LoadAPIKey reads the key file at path, falling back to the
// GEMINI_API_KEY environment variable when the file cannot be read. An
// empty path means ~/.apikeys/gemini, and a leading ~/ resolves against
// the user's home directory. An empty result means narration should be
// disabled, not that loading failed.
func LoadAPIKey(path string) string {
	if path == "" {
		path = defaultKeyPath
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return strings.TrimSpace(os.Getenv(apiKeyEnvVar))
	}
	return strings.TrimSpace(string(data))
}
