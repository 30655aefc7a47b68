package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/narrator"
	"github.com/pixil98/go-log/log"
)

// narrate hands an unmatched command to the narration collaborator. Any
// failure degrades to a canned pointer at the location notes, flagged
// unhandled so front ends can tell improvised replies from recovery
// text. Successful exchanges are remembered, bounded by historyLimit.
func (i *Interpreter) narrate(ctx context.Context, command string) Response {
	fallback := fmt.Sprintf(
		"The narrative engine would answer via an AI, drawing only from known details. "+
			"For now, consult the location notes:\n%s",
		i.locationDetails(),
	)

	if i.narrator == nil {
		return Response{Output: fallback, Handled: false}
	}

	reply, err := i.narrator.Narrate(ctx, command, i.narratorContext(), i.history)
	if err != nil {
		log.GetLogger(ctx).WithError(err).Warn("narration failed")
		return Response{Output: fallback, Handled: false}
	}

	i.history = append(i.history, narrator.Exchange{Command: command, Response: reply})
	if len(i.history) > historyLimit {
		i.history = i.history[len(i.history)-historyLimit:]
	}
	return Response{Output: reply, Handled: true}
}

// narratorContext snapshots what the collaborator may draw on: the world
// definitions plus the player's resolved inventory.
func (i *Interpreter) narratorContext() *narrator.Context {
	inventory := make([]*game.Object, 0, len(i.state.Player.Inventory))
	for _, id := range i.state.Player.Inventory {
		if obj := i.world.Object(id); obj != nil {
			inventory = append(inventory, obj)
		}
	}

	return &narrator.Context{
		Title:           i.world.Title,
		Summary:         i.world.Summary,
		CurrentLocation: i.currentLocation(),
		Locations:       i.world.Locations,
		PlayerName:      i.world.Player.Name,
		Inventory:       inventory,
	}
}
