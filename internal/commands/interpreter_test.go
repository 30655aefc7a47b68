package commands

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/narrator"
	"github.com/pixil98/go-testutil"
)

func newTestWorld() *game.World {
	return &game.World{
		Title:         "Test Cove",
		Summary:       "A tiny two-room world.",
		StartLocation: "deck",
		Player:        game.Player{Name: "Tester"},
		Locations: []*game.Location{
			{
				ID:          "deck",
				Name:        "Deck",
				Description: "Weathered planks under open sky.",
				Details:     "Initials are carved into the mast.",
				Objects: []*game.Object{
					{ID: "coin", Name: "coin", Description: "A gold coin.", CanPickUp: true},
					{ID: "treasure_map", Name: "treasure map", Description: "A pinned chart.", CanPickUp: false},
				},
				Actors: []*game.Actor{
					{ID: "parrot", Name: "Polly", Description: "A scarlet parrot.", Dialogue: map[string]string{"default": "Squawk! Pieces of eight!"}},
					{ID: "bosun", Name: "Bosun", Description: "A silent bosun."},
				},
				Pathways: []*game.Pathway{
					{ID: "hatch", Name: "hatch", Target: "cabin", Description: "A hatch leading below."},
					{ID: "gate", Name: "gate", Target: "cabin", Locked: true},
					{ID: "tunnel", Name: "tunnel", Target: "cabin", Hidden: true},
				},
			},
			{
				ID:          "cabin",
				Name:        "Cabin",
				Description: "A cramped cabin below decks.",
				Objects: []*game.Object{
					{ID: "chest", Name: "chest", Description: "An iron-banded chest.", Details: "The lid is heavy.", InitialStatus: map[string]string{"open": "false"}},
					{ID: "lamp", Name: "lamp", Description: "A small oil lamp.", CanPickUp: true},
				},
				Pathways: []*game.Pathway{
					{ID: "ladder", Name: "ladder", Target: "deck"},
				},
			},
		},
	}
}

// fakeNarrator records what it was asked and replies with a fixed line.
type fakeNarrator struct {
	reply       string
	err         error
	calls       []string
	lastHistory []narrator.Exchange
}

func (f *fakeNarrator) Narrate(_ context.Context, command string, _ *narrator.Context, history []narrator.Exchange) (string, error) {
	f.calls = append(f.calls, command)
	f.lastHistory = append([]narrator.Exchange(nil), history...)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestNewInterpreterStartState(t *testing.T) {
	i := NewInterpreter(newTestWorld())

	testutil.AssertEqual(t, "location", i.state.Player.LocationID, "deck")
	testutil.AssertEqual(t, "start visited", i.state.Locations["deck"].Visited, true)
	testutil.AssertEqual(t, "cabin unvisited", i.state.Locations["cabin"].Visited, false)
	testutil.AssertEqual(t, "title", i.Title(), "Test Cove")
}

func TestHandleEmptyInput(t *testing.T) {
	i := NewInterpreter(newTestWorld())

	for _, raw := range []string{"", "   ", "\t\n"} {
		resp := i.Handle(context.Background(), raw)
		testutil.AssertEqual(t, "handled", resp.Handled, true)
		testutil.AssertEqual(t, "output", resp.Output, i.DescribeLocation())
	}
}

func TestHandleLook(t *testing.T) {
	i := NewInterpreter(newTestWorld())
	ctx := context.Background()

	first := i.Handle(ctx, "look")
	testutil.AssertEqual(t, "handled", first.Handled, true)

	exp := "Location: Deck\n" +
		"Weathered planks under open sky.\n" +
		"You can see: Polly, Bosun.\n" +
		"Nearby objects: coin, treasure map.\n" +
		"Exits: hatch, gate."
	testutil.AssertEqual(t, "output", first.Output, exp)

	// Looking mutates nothing, so repeating it is byte-identical.
	second := i.Handle(ctx, "look")
	testutil.AssertEqual(t, "repeat output", second.Output, first.Output)

	for _, alias := range []string{"l", "look around", "LOOK"} {
		resp := i.Handle(ctx, alias)
		testutil.AssertEqual(t, alias+" output", resp.Output, first.Output)
	}
}

func TestHandleDetails(t *testing.T) {
	i := NewInterpreter(newTestWorld())
	ctx := context.Background()

	resp := i.Handle(ctx, "details")
	testutil.AssertEqual(t, "output", resp.Output, "Initials are carved into the mast.")

	alias := i.Handle(ctx, "examine location")
	testutil.AssertEqual(t, "alias output", alias.Output, resp.Output)

	// A location with no details gets the stock line.
	i.Handle(ctx, "go hatch")
	resp = i.Handle(ctx, "details")
	testutil.AssertEqual(t, "empty details", resp.Output, "Nothing notable beyond the obvious.")
}

func TestHandleHelp(t *testing.T) {
	i := NewInterpreter(newTestWorld())

	resp := i.Handle(context.Background(), "help")
	testutil.AssertEqual(t, "output", resp.Output,
		"Commands: look, details, inventory, map, inspect <object>, take <object>, open <object>, talk <actor>, go <path>.")
}

func TestNarrateFallback(t *testing.T) {
	i := NewInterpreter(newTestWorld())

	resp := i.Handle(context.Background(), "dance a jig")

	testutil.AssertEqual(t, "handled", resp.Handled, false)
	exp := "The narrative engine would answer via an AI, drawing only from known details. " +
		"For now, consult the location notes:\nInitials are carved into the mast."
	testutil.AssertEqual(t, "output", resp.Output, exp)
	testutil.AssertEqual(t, "history", len(i.history), 0)

	// Falling through must not touch session state.
	testutil.AssertEqual(t, "location", i.state.Player.LocationID, "deck")
	testutil.AssertEqual(t, "inventory", len(i.state.Player.Inventory), 0)
}

func TestNarrateSuccess(t *testing.T) {
	fake := &fakeNarrator{reply: "The deck creaks underfoot."}
	i := NewInterpreter(newTestWorld(), WithNarrator(fake))

	resp := i.Handle(context.Background(), "Dance a Jig")

	testutil.AssertEqual(t, "handled", resp.Handled, true)
	testutil.AssertEqual(t, "output", resp.Output, "The deck creaks underfoot.")

	// The collaborator sees the trimmed original casing, not the lowered
	// form used for dispatch.
	testutil.AssertEqual(t, "command seen", fake.calls[0], "Dance a Jig")

	testutil.AssertEqual(t, "history length", len(i.history), 1)
	testutil.AssertEqual(t, "history command", i.history[0].Command, "Dance a Jig")
	testutil.AssertEqual(t, "history response", i.history[0].Response, "The deck creaks underfoot.")
}

func TestNarrateFailure(t *testing.T) {
	fake := &fakeNarrator{err: fmt.Errorf("backend down")}
	i := NewInterpreter(newTestWorld(), WithNarrator(fake))

	resp := i.Handle(context.Background(), "dance a jig")

	testutil.AssertEqual(t, "handled", resp.Handled, false)
	if !strings.Contains(resp.Output, "consult the location notes") {
		t.Errorf("expected canned fallback, got %q", resp.Output)
	}
	testutil.AssertEqual(t, "history", len(i.history), 0)
}

func TestNarrateHistoryCap(t *testing.T) {
	fake := &fakeNarrator{reply: "Noted."}
	i := NewInterpreter(newTestWorld(), WithNarrator(fake))
	ctx := context.Background()

	for n := 1; n <= 12; n++ {
		i.Handle(ctx, fmt.Sprintf("cmd-%d", n))
	}

	testutil.AssertEqual(t, "history length", len(i.history), 10)
	testutil.AssertEqual(t, "oldest kept", i.history[0].Command, "cmd-3")
	testutil.AssertEqual(t, "newest kept", i.history[9].Command, "cmd-12")

	// The final call was handed the capped buffer from the prior eleven.
	testutil.AssertEqual(t, "window length", len(fake.lastHistory), 10)
	testutil.AssertEqual(t, "window start", fake.lastHistory[0].Command, "cmd-2")
}

func TestNarratorContext(t *testing.T) {
	var captured *narrator.Context
	n := narratorFunc(func(_ context.Context, _ string, game *narrator.Context, _ []narrator.Exchange) (string, error) {
		captured = game
		return "ok", nil
	})
	i := NewInterpreter(newTestWorld(), WithNarrator(n))
	ctx := context.Background()

	i.Handle(ctx, "take coin")
	i.Handle(ctx, "whistle")

	if captured == nil {
		t.Fatal("expected narrator to be consulted")
	}
	testutil.AssertEqual(t, "title", captured.Title, "Test Cove")
	testutil.AssertEqual(t, "player", captured.PlayerName, "Tester")
	testutil.AssertEqual(t, "current location", captured.CurrentLocation.ID, "deck")
	testutil.AssertEqual(t, "location count", len(captured.Locations), 2)
	testutil.AssertEqual(t, "inventory count", len(captured.Inventory), 1)
	testutil.AssertEqual(t, "inventory item", captured.Inventory[0].ID, "coin")
}

// narratorFunc adapts a function to the Narrator interface.
type narratorFunc func(context.Context, string, *narrator.Context, []narrator.Exchange) (string, error)

func (f narratorFunc) Narrate(ctx context.Context, command string, game *narrator.Context, history []narrator.Exchange) (string, error) {
	return f(ctx, command, game, history)
}
