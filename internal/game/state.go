package game

import (
	"maps"
	"slices"
)

// ObjectState tracks the mutable condition of one object.
type ObjectState struct {
	// Status holds free-form condition flags, e.g. "open" -> "true".
	Status       map[string]string
	HeldByPlayer bool
}

// ActorState tracks the mutable condition of one actor. ConversationFlags
// is reserved for dialogue branching; no verb mutates it yet.
type ActorState struct {
	ConversationFlags map[string]bool
	Inventory         []string
}

// PathwayState tracks the gate flags of one pathway. Seeded from the
// definition and independently mutable thereafter.
type PathwayState struct {
	Locked bool
	Hidden bool
}

// LocationState tracks whether the player has been somewhere. Only
// initialization and movement ever set Visited.
type LocationState struct {
	Visited bool
}

// PlayerState tracks where the player is and what they carry. Inventory
// order is pickup order. Attributes is reserved.
type PlayerState struct {
	LocationID string
	Inventory  []string
	Attributes map[string]string
}

// State is the mutable half of a session: id-keyed entries parallel to
// the world's definitions, joined only by id lookups. Exactly one session
// owns a State; it is not safe for concurrent use.
type State struct {
	Player    PlayerState
	Objects   map[string]*ObjectState
	Actors    map[string]*ActorState
	Pathways  map[string]*PathwayState
	Locations map[string]*LocationState
}

// NewState builds the starting state for a world: a state entry for every
// entity reachable through the location list, the player at the start
// location with it already marked visited, starting inventory ids held,
// and each actor's starting inventory copied in.
func NewState(w *World) *State {
	s := &State{
		Objects:   map[string]*ObjectState{},
		Actors:    map[string]*ActorState{},
		Pathways:  map[string]*PathwayState{},
		Locations: map[string]*LocationState{},
	}

	for _, loc := range w.Locations {
		s.Locations[loc.ID] = &LocationState{}
		for _, obj := range loc.Objects {
			status := make(map[string]string, len(obj.InitialStatus))
			maps.Copy(status, obj.InitialStatus)
			s.Objects[obj.ID] = &ObjectState{Status: status}
		}
		for _, actor := range loc.Actors {
			s.Actors[actor.ID] = &ActorState{
				ConversationFlags: map[string]bool{},
				Inventory:         slices.Clone(actor.Inventory),
			}
		}
		for _, path := range loc.Pathways {
			s.Pathways[path.ID] = &PathwayState{
				Locked: path.Locked,
				Hidden: path.Hidden,
			}
		}
	}

	s.Player = PlayerState{
		LocationID: w.StartLocation,
		Inventory:  slices.Clone(w.Player.StartingInventory),
		Attributes: map[string]string{},
	}

	// Ids in the starting inventory that name no defined object are
	// tolerated; they simply never resolve.
	for _, id := range s.Player.Inventory {
		if os, ok := s.Objects[id]; ok {
			os.HeldByPlayer = true
		}
	}

	if ls, ok := s.Locations[w.StartLocation]; ok {
		ls.Visited = true
	}

	return s
}
