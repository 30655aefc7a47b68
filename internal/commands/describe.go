package commands

import (
	"strings"
)

// describeLocation composes the full, stateless report of the current
// location: artwork when enabled, then the name and description, then
// whatever actors, unheld objects, and visible exits are present.
func (i *Interpreter) describeLocation() string {
	loc := i.currentLocation()
	if loc == nil {
		return "You are in an invalid location."
	}

	var parts []string
	if art := i.renderArt(loc.Image); art != "" {
		parts = append(parts, art)
	}
	parts = append(parts, "Location: "+loc.Name, loc.Description)

	if len(loc.Actors) > 0 {
		names := make([]string, 0, len(loc.Actors))
		for _, actor := range loc.Actors {
			names = append(names, actor.Name)
		}
		parts = append(parts, "You can see: "+strings.Join(names, ", ")+".")
	}

	if unheld := i.resolver.unheldObjects(); len(unheld) > 0 {
		names := make([]string, 0, len(unheld))
		for _, obj := range unheld {
			names = append(names, obj.Name)
		}
		parts = append(parts, "Nearby objects: "+strings.Join(names, ", ")+".")
	}

	if visible := i.resolver.visiblePathways(); len(visible) > 0 {
		names := make([]string, 0, len(visible))
		for _, path := range visible {
			names = append(names, path.Name)
		}
		parts = append(parts, "Exits: "+strings.Join(names, ", ")+".")
	}

	return strings.Join(parts, "\n")
}

// locationDetails returns the current location's long-form notes.
func (i *Interpreter) locationDetails() string {
	loc := i.currentLocation()
	if loc == nil {
		return "Nothing notable beyond the obvious."
	}
	details := strings.TrimSpace(loc.Details)
	if details == "" {
		return "Nothing notable beyond the obvious."
	}
	return details
}
