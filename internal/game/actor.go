package game

import "strings"

// Actor is a character the player can talk to.
type Actor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Persona and Background are never shown directly to the player. They
	// exist to give the narration collaborator a voice to imitate.
	Persona    string `json:"persona"`
	Background string `json:"background"`

	// Dialogue maps topics to replies. "default" is the only topic the
	// talk verb consults today.
	Dialogue map[string]string `json:"dialogue"`

	// Inventory lists object ids the actor starts with.
	Inventory []string `json:"inventory"`
}

// Matches reports whether a player-supplied token refers to this actor.
func (a *Actor) Matches(token string) bool {
	return strings.EqualFold(a.Name, token) || strings.EqualFold(a.ID, token)
}
