package narrator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
)

// Context is the read-only game snapshot serialized into the prompt: the
// current location in full, every other location as background canon, and
// the player's resolved inventory. It references definitions only; the
// narrator never sees or touches mutable session state beyond what the
// caller chose to resolve here.
type Context struct {
	Title           string
	Summary         string
	CurrentLocation *game.Location
	Locations       []*game.Location
	PlayerName      string
	Inventory       []*game.Object
}

// CurrentLocationNotes renders the full notes for the player's location.
func (c *Context) CurrentLocationNotes() string {
	return locationNotes(c.CurrentLocation)
}

// OtherLocationNotes renders notes for every location except the current
// one, in definition order.
func (c *Context) OtherLocationNotes() []string {
	notes := []string{}
	for _, loc := range c.Locations {
		if loc.ID == c.CurrentLocation.ID {
			continue
		}
		notes = append(notes, locationNotes(loc))
	}
	return notes
}

// InventoryNotes renders one line per carried object, or "" when the
// player carries nothing.
func (c *Context) InventoryNotes() string {
	lines := make([]string, 0, len(c.Inventory))
	for _, obj := range c.Inventory {
		lines = append(lines, fmt.Sprintf("- %s: %s", obj.Name, obj.Description))
	}
	return strings.Join(lines, "\n")
}

func locationNotes(loc *game.Location) string {
	buf := []string{
		fmt.Sprintf("Location %s (id: %s)", loc.Name, loc.ID),
		fmt.Sprintf("Description: %s", loc.Description),
	}
	if loc.Details != "" {
		buf = append(buf, fmt.Sprintf("Details: %s", loc.Details))
	}
	if len(loc.Actors) > 0 {
		lines := make([]string, 0, len(loc.Actors))
		for _, actor := range loc.Actors {
			lines = append(lines, actorNotes(actor))
		}
		buf = append(buf, "Actors:\n- "+strings.Join(lines, "\n- "))
	}
	if len(loc.Objects) > 0 {
		lines := make([]string, 0, len(loc.Objects))
		for _, obj := range loc.Objects {
			lines = append(lines, objectNotes(obj))
		}
		buf = append(buf, "Objects:\n- "+strings.Join(lines, "\n- "))
	}
	if len(loc.Pathways) > 0 {
		lines := make([]string, 0, len(loc.Pathways))
		for _, path := range loc.Pathways {
			lines = append(lines, pathwayNotes(path))
		}
		buf = append(buf, "Paths:\n- "+strings.Join(lines, "\n- "))
	}
	return strings.Join(buf, "\n")
}

func actorNotes(actor *game.Actor) string {
	parts := []string{fmt.Sprintf("%s (%s)", actor.Name, actor.ID)}
	if actor.Persona != "" {
		parts = append(parts, fmt.Sprintf("Persona: %s", actor.Persona))
	}
	if actor.Background != "" {
		parts = append(parts, fmt.Sprintf("Background: %s", actor.Background))
	}
	if actor.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", actor.Description))
	}
	return strings.Join(parts, "; ")
}

func objectNotes(obj *game.Object) string {
	parts := []string{fmt.Sprintf("%s (%s)", obj.Name, obj.ID)}
	if obj.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", obj.Description))
	}
	if obj.Details != "" {
		parts = append(parts, fmt.Sprintf("Details: %s", obj.Details))
	}
	if len(obj.InitialStatus) > 0 {
		keys := make([]string, 0, len(obj.InitialStatus))
		for key := range obj.InitialStatus {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		bits := make([]string, 0, len(keys))
		for _, key := range keys {
			bits = append(bits, fmt.Sprintf("%s=%s", key, obj.InitialStatus[key]))
		}
		parts = append(parts, "State: "+strings.Join(bits, ", "))
	}
	interact := []string{}
	if obj.CanPickUp {
		interact = append(interact, "pick-up")
	}
	if obj.CanMove {
		interact = append(interact, "move")
	}
	if len(interact) > 0 {
		parts = append(parts, "Interact: "+strings.Join(interact, ", "))
	}
	return strings.Join(parts, "; ")
}

func pathwayNotes(path *game.Pathway) string {
	flags := []string{}
	if path.Locked {
		flags = append(flags, "locked")
	}
	if path.Hidden {
		flags = append(flags, "hidden")
	}
	note := fmt.Sprintf("%s -> %s", path.Name, path.Target)
	if len(flags) > 0 {
		note += fmt.Sprintf(" (%s)", strings.Join(flags, ", "))
	}
	return note
}
