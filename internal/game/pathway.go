package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Pathway is a directed connection from its declaring location to Target,
// gated by locked/hidden flags.
type Pathway struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Target      string `json:"target"`
	Description string `json:"description"`

	// Locked and Hidden seed the pathway's session state. Both remain
	// independently mutable there; changing them at play time is a state
	// transition, not a redefinition.
	Locked bool `json:"locked"`
	Hidden bool `json:"hidden"`

	// UnlocksWith and RevealsWith name the objects authors intend as keys.
	// The schema carries them but no transition logic reads them yet.
	UnlocksWith string `json:"unlocks_with,omitempty"`
	RevealsWith string `json:"reveals_with,omitempty"`
}

func (p *Pathway) Validate() error {
	el := errors.NewErrorList()

	if p.Target == "" {
		el.Add(fmt.Errorf("target is required"))
	}

	return el.Err()
}

// Matches reports whether a player-supplied token refers to this pathway.
func (p *Pathway) Matches(token string) bool {
	return strings.EqualFold(p.Name, token) || strings.EqualFold(p.ID, token)
}
