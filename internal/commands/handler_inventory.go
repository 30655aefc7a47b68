package commands

import (
	"context"
	"strings"
)

// handleInventory lists carried objects in pickup order. Inventory ids
// that name no defined object are skipped silently.
func (i *Interpreter) handleInventory(context.Context, string) Response {
	inv := i.state.Player.Inventory
	if len(inv) == 0 {
		return Response{Output: "Your inventory is empty.", Handled: true}
	}

	names := make([]string, 0, len(inv))
	for _, id := range inv {
		if obj := i.world.Object(id); obj != nil {
			names = append(names, obj.Name)
		}
	}
	return Response{Output: "You carry: " + strings.Join(names, ", "), Handled: true}
}
