package narrator

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// historyWindow bounds how many trailing exchanges each prompt replays.
const historyWindow = 6

//go:embed prompts/narrate.txt
var narratePrompt string

var narrateTmpl = template.Must(
	template.New("narrate").Funcs(sprig.TxtFuncMap()).Parse(narratePrompt),
)

type promptData struct {
	Game    *Context
	History []Exchange
	Command string
}

// buildPrompt renders the full prompt: persona instructions, the world
// snapshot, the last few exchanges, and the player's command.
func buildPrompt(command string, game *Context, history []Exchange) (string, error) {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	var buf bytes.Buffer
	err := narrateTmpl.Execute(&buf, promptData{
		Game:    game,
		History: history,
		Command: command,
	})
	if err != nil {
		return "", fmt.Errorf("executing prompt template: %w", err)
	}

	return buf.String(), nil
}
