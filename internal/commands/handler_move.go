package commands

import (
	"context"
	"fmt"
)

// handleMove walks the player through a pathway. Hidden pathways resolve
// but read as unknown, and locked ones refuse passage; hidden wins when
// both flags are set. Arrival marks the destination visited and renders
// it in full. "go map" is commandeered by the map view.
func (i *Interpreter) handleMove(ctx context.Context, target string) Response {
	if target == "" {
		return Response{Output: "Go where?", Handled: true}
	}
	if target == "map" {
		return i.handleMap(ctx, "")
	}

	path := i.resolver.pathway(target)
	if path == nil {
		return Response{Output: fmt.Sprintf("There is no path called '%s'.", target), Handled: true}
	}

	st := i.state.Pathways[path.ID]
	if st.Hidden {
		return Response{Output: "You do not know how to go that way.", Handled: true}
	}
	if st.Locked {
		return Response{Output: "That way is locked.", Handled: true}
	}

	i.state.Player.LocationID = path.Target
	if ls := i.state.Locations[path.Target]; ls != nil {
		ls.Visited = true
	}
	return Response{Output: i.describeLocation(), Handled: true}
}
