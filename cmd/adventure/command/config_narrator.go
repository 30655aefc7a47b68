package command

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-adventure/internal/narrator"
	"github.com/pixil98/go-errors"
)

// NarratorConfig controls the LLM collaborator. Leaving it empty (or
// pointing at a key that cannot be read) disables narration rather than
// failing startup: the game itself never depends on the model.
type NarratorConfig struct {
	APIKeyPath string `json:"api_key_path,omitempty"`
	Model      string `json:"model,omitempty"`
	Timeout    string `json:"timeout,omitempty"`
}

func (c *NarratorConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			el.Add(fmt.Errorf("narrator: parsing timeout: %w", err))
		}
	}

	return el.Err()
}

// BuildNarrator returns a nil Narrator when no usable API key is found.
func (c *NarratorConfig) BuildNarrator() (narrator.Narrator, error) {
	key := narrator.LoadAPIKey(c.APIKeyPath)
	if key == "" {
		slog.Warn("no narrator api key found, unmatched commands get canned replies")
		return nil, nil
	}

	opts := narrator.GeminiOptions{Model: c.Model}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
		opts.Timeout = d
	}

	g, err := narrator.NewGemini(context.Background(), key, opts)
	if err != nil {
		return nil, err
	}

	return g, nil
}
