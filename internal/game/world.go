package game

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pixil98/go-errors"
)

// World is the immutable definition of one game: every location with its
// objects, actors, and pathways, plus the player defaults. It is loaded
// once and may be shared read-only by any number of sessions.
type World struct {
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	StartLocation string      `json:"start_location"`
	Locations     []*Location `json:"locations"`
	Player        Player      `json:"player"`

	once      sync.Once
	locations map[string]*Location
	objects   map[string]*Object
}

// Player holds the player defaults declared by a world.
type Player struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	StartingInventory []string `json:"starting_inventory"`
}

func (w *World) UnmarshalJSON(b []byte) error {
	type world World
	var aux world
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*w = World(aux)
	w.applyDefaults()
	return nil
}

// applyDefaults fills the optional fields the schema leaves out. Entity
// names fall back to their ids.
func (w *World) applyDefaults() {
	if w.Title == "" {
		w.Title = "Untitled"
	}
	if w.Player.Name == "" {
		w.Player.Name = "Player"
	}
	for _, loc := range w.Locations {
		if loc.Name == "" {
			loc.Name = loc.ID
		}
		for _, obj := range loc.Objects {
			if obj.Name == "" {
				obj.Name = obj.ID
			}
		}
		for _, actor := range loc.Actors {
			if actor.Name == "" {
				actor.Name = actor.ID
			}
		}
		for _, path := range loc.Pathways {
			if path.Name == "" {
				path.Name = path.ID
			}
		}
	}
}

// Location returns the location with the given id, or nil.
func (w *World) Location(id string) *Location {
	w.once.Do(w.buildIndex)
	return w.locations[id]
}

// Object returns the object definition with the given id no matter which
// location declares it, or nil.
func (w *World) Object(id string) *Object {
	w.once.Do(w.buildIndex)
	return w.objects[id]
}

func (w *World) buildIndex() {
	w.locations = make(map[string]*Location, len(w.Locations))
	w.objects = map[string]*Object{}
	for _, loc := range w.Locations {
		w.locations[loc.ID] = loc
		for _, obj := range loc.Objects {
			w.objects[obj.ID] = obj
		}
	}
}

// Validate satisfies storage.ValidatingSpec. Ids must be unique within
// their entity kind across the whole world, and every pathway target and
// the start location must resolve. Command handling assumes all of this
// holds and never re-checks it.
func (w *World) Validate() error {
	el := errors.NewErrorList()

	if len(w.Locations) == 0 {
		el.Add(fmt.Errorf("at least one location is required"))
	}

	locIds := map[string]bool{}
	objIds := map[string]bool{}
	actorIds := map[string]bool{}
	pathIds := map[string]bool{}

	for i, loc := range w.Locations {
		if loc.ID == "" {
			el.Add(fmt.Errorf("location %d: id is required", i))
			continue
		}
		if locIds[loc.ID] {
			el.Add(fmt.Errorf("duplicate location id %q", loc.ID))
		}
		locIds[loc.ID] = true

		if err := loc.Validate(); err != nil {
			el.Add(fmt.Errorf("location %s: %w", loc.ID, err))
		}

		for _, obj := range loc.Objects {
			if obj.ID == "" {
				continue
			}
			if objIds[obj.ID] {
				el.Add(fmt.Errorf("duplicate object id %q", obj.ID))
			}
			objIds[obj.ID] = true
		}
		for _, actor := range loc.Actors {
			if actor.ID == "" {
				continue
			}
			if actorIds[actor.ID] {
				el.Add(fmt.Errorf("duplicate actor id %q", actor.ID))
			}
			actorIds[actor.ID] = true
		}
		for _, path := range loc.Pathways {
			if path.ID == "" {
				continue
			}
			if pathIds[path.ID] {
				el.Add(fmt.Errorf("duplicate pathway id %q", path.ID))
			}
			pathIds[path.ID] = true

			if path.Target != "" && !w.hasLocation(path.Target) {
				el.Add(fmt.Errorf("location %s: pathway %s: target %q does not exist", loc.ID, path.ID, path.Target))
			}
		}
	}

	if w.StartLocation == "" {
		el.Add(fmt.Errorf("start_location is required"))
	} else if !w.hasLocation(w.StartLocation) {
		el.Add(fmt.Errorf("start_location %q does not exist", w.StartLocation))
	}

	return el.Err()
}

// hasLocation checks the location list directly so Validate never touches
// the lazily built index.
func (w *World) hasLocation(id string) bool {
	for _, loc := range w.Locations {
		if loc.ID == id {
			return true
		}
	}
	return false
}
