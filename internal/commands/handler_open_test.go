package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestHandleOpen(t *testing.T) {
	i := NewInterpreter(newTestWorld())
	ctx := context.Background()
	i.Handle(ctx, "go hatch")

	resp := i.Handle(ctx, "open chest")
	testutil.AssertEqual(t, "output", resp.Output, "You open the chest.")
	testutil.AssertEqual(t, "flag", i.state.Objects["chest"].Status["open"], "true")

	resp = i.Handle(ctx, "open chest")
	testutil.AssertEqual(t, "reopen", resp.Output, "It is already open.")
}

func TestHandleOpenUnknown(t *testing.T) {
	i := NewInterpreter(newTestWorld())

	resp := i.Handle(context.Background(), "open hold")
	testutil.AssertEqual(t, "output", resp.Output, "There is no 'hold' here.")

	resp = i.handleOpen(context.Background(), "")
	testutil.AssertEqual(t, "prompt", resp.Output, "Open what?")
}

func TestHandleOpenAnyObject(t *testing.T) {
	i := NewInterpreter(newTestWorld())

	// Opening consults only the flag, so objects with no starting status
	// open too.
	resp := i.Handle(context.Background(), "open coin")
	testutil.AssertEqual(t, "output", resp.Output, "You open the coin.")
	testutil.AssertEqual(t, "flag", i.state.Objects["coin"].Status["open"], "true")
}

func TestOpenThenInspect(t *testing.T) {
	i := NewInterpreter(newTestWorld())
	ctx := context.Background()
	i.Handle(ctx, "go hatch")

	before := i.Handle(ctx, "inspect chest")
	if !strings.Contains(before.Output, "Current state: open=false.") {
		t.Errorf("expected closed state in %q", before.Output)
	}

	i.Handle(ctx, "open chest")

	after := i.Handle(ctx, "inspect chest")
	if !strings.Contains(after.Output, "Current state: open=true.") {
		t.Errorf("expected open state in %q", after.Output)
	}
}
