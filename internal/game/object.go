package game

import "strings"

// Object is an item placed in a location. Whether the player can carry it
// is part of the definition; whether they currently do is session state.
type Object struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Details     string `json:"details"`

	CanPickUp bool `json:"can_pick_up"`

	// CanMove is declared by the schema but no verb consumes it yet.
	CanMove bool `json:"can_move"`

	// InitialStatus seeds ObjectState.Status at session start, e.g.
	// {"open": "false", "locked": "true"}.
	InitialStatus map[string]string `json:"initial_state"`

	// Contains lists object ids conceptually inside this one. Preserved
	// for authors and the narration context; no verb consumes it.
	Contains []string `json:"contains"`
}

// Matches reports whether a player-supplied token refers to this object.
func (o *Object) Matches(token string) bool {
	return strings.EqualFold(o.Name, token) || strings.EqualFold(o.ID, token)
}
