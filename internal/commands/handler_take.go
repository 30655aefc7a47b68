package commands

import (
	"context"
	"fmt"
)

// handleTake moves an object from the location into the player's
// inventory. Scope excludes the inventory so a held object resolves to
// its stale location entry and reports as already carried.
func (i *Interpreter) handleTake(_ context.Context, target string) Response {
	if target == "" {
		return Response{Output: "Take what?", Handled: true}
	}

	obj := i.resolver.object(target, false)
	if obj == nil {
		return Response{Output: fmt.Sprintf("You cannot find '%s'.", target), Handled: true}
	}

	st := i.state.Objects[obj.ID]
	if st.HeldByPlayer {
		return Response{Output: "You already have it.", Handled: true}
	}
	if !obj.CanPickUp {
		return Response{Output: "That cannot be picked up.", Handled: true}
	}

	st.HeldByPlayer = true
	i.state.Player.Inventory = append(i.state.Player.Inventory, obj.ID)
	return Response{Output: fmt.Sprintf("You pick up the %s.", obj.Name), Handled: true}
}
