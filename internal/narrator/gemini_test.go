package narrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/pixil98/go-testutil"
)

func TestLoadAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	keyPath := filepath.Join(tmpDir, "key")
	err := os.WriteFile(keyPath, []byte("  secret-key\n"), 0600)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	testutil.AssertEqual(t, "from file", LoadAPIKey(keyPath), "secret-key")
}

func TestLoadAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", " env-key ")

	key := LoadAPIKey(filepath.Join(t.TempDir(), "missing"))

	testutil.AssertEqual(t, "from env", key, "env-key")
}

func TestLoadAPIKeyMissingEverywhere(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	key := LoadAPIKey(filepath.Join(t.TempDir(), "missing"))

	testutil.AssertEqual(t, "empty", key, "")
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", GeminiOptions{})
	if err == nil {
		t.Fatal("expected error for empty key")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	tests := map[string]struct {
		resp   *genai.GenerateContentResponse
		exp    string
		expErr bool
	}{
		"first text part": {
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("  The wind picks up.  ")}}},
				},
			},
			exp: "The wind picks up.",
		},
		"skips empty candidates": {
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: nil},
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("")}}},
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("Landfall.")}}},
				},
			},
			exp: "Landfall.",
		},
		"no text": {
			resp:   &genai.GenerateContentResponse{},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := extractText(tt.resp)

			if tt.expErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "text", out, tt.exp)
		})
	}
}
