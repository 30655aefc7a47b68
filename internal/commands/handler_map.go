package commands

import "context"

// The treasure map is a fixture of the pirate scenario: studying it only
// works in the captain's cabin, where the map object's details caption
// the rendered chart.
const (
	mapLocationID = "captains_cabin"
	mapObjectID   = "treasure_map"
	mapAssetPath  = "images/PirateMap.png"

	mapFallbackText = "The weathered parchment hints at a hidden cove marked with a bold red X."
	mapAssetHint    = "Map available at /assets/images/PirateMap.png"
)

// handleMap renders the treasure map when the player is somewhere it can
// be studied. Without a renderer the caption carries a pointer to the
// asset instead of artwork.
func (i *Interpreter) handleMap(context.Context, string) Response {
	loc := i.currentLocation()
	if loc == nil || loc.ID != mapLocationID {
		return Response{Output: "There is no map to study here.", Handled: true}
	}

	description := mapFallbackText
	for _, obj := range loc.Objects {
		if obj.ID == mapObjectID {
			if obj.Details != "" {
				description = obj.Details
			}
			break
		}
	}

	if art := i.renderArt(mapAssetPath); art != "" {
		return Response{Output: art + "\n" + description, Handled: true}
	}
	return Response{Output: description + "\n" + mapAssetHint, Handled: true}
}
