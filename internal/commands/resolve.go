package commands

import (
	"github.com/pixil98/go-adventure/internal/game"
)

// resolver matches player-typed tokens against the entities in scope:
// the player's current location and, for objects, optionally the
// inventory. Tokens match an entity's name or id case-insensitively.
type resolver struct {
	world *game.World
	state *game.State
}

func (r *resolver) location() *game.Location {
	return r.world.Location(r.state.Player.LocationID)
}

// object scans the current location's objects in definition order. An
// unheld match wins immediately. A held match is remembered and only
// returned once the location and (when includeInventory) the inventory
// turn up nothing better, so taking something already carried reports it
// as held instead of missing.
func (r *resolver) object(token string, includeInventory bool) *game.Object {
	loc := r.location()
	if loc == nil {
		return nil
	}

	var held *game.Object
	for _, obj := range loc.Objects {
		if !obj.Matches(token) {
			continue
		}
		if st := r.state.Objects[obj.ID]; st != nil && st.HeldByPlayer {
			if held == nil {
				held = obj
			}
			continue
		}
		return obj
	}

	if includeInventory {
		for _, id := range r.state.Player.Inventory {
			if obj := r.world.Object(id); obj != nil && obj.Matches(token) {
				return obj
			}
		}
	}

	return held
}

// actor matches against the current location's actors only.
func (r *resolver) actor(token string) *game.Actor {
	loc := r.location()
	if loc == nil {
		return nil
	}
	for _, actor := range loc.Actors {
		if actor.Matches(token) {
			return actor
		}
	}
	return nil
}

// pathway matches against the current location's pathways, hidden ones
// included; movement decides what a hidden match means.
func (r *resolver) pathway(token string) *game.Pathway {
	loc := r.location()
	if loc == nil {
		return nil
	}
	for _, path := range loc.Pathways {
		if path.Matches(token) {
			return path
		}
	}
	return nil
}

// visiblePathways filters the current location's pathways down to the
// ones the player can see.
func (r *resolver) visiblePathways() []*game.Pathway {
	loc := r.location()
	if loc == nil {
		return nil
	}
	var visible []*game.Pathway
	for _, path := range loc.Pathways {
		if st := r.state.Pathways[path.ID]; st != nil && st.Hidden {
			continue
		}
		visible = append(visible, path)
	}
	return visible
}

// unheldObjects filters the current location's objects down to the ones
// still lying around.
func (r *resolver) unheldObjects() []*game.Object {
	loc := r.location()
	if loc == nil {
		return nil
	}
	var unheld []*game.Object
	for _, obj := range loc.Objects {
		if st := r.state.Objects[obj.ID]; st != nil && st.HeldByPlayer {
			continue
		}
		unheld = append(unheld, obj)
	}
	return unheld
}
