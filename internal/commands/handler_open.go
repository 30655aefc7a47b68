package commands

import (
	"context"
	"fmt"
)

// handleOpen flips an object's "open" status flag. Any object can be
// opened; the flag is the only thing consulted or changed, so opening is
// idempotent after the first time.
func (i *Interpreter) handleOpen(_ context.Context, target string) Response {
	if target == "" {
		return Response{Output: "Open what?", Handled: true}
	}

	obj := i.resolver.object(target, true)
	if obj == nil {
		return Response{Output: fmt.Sprintf("There is no '%s' here.", target), Handled: true}
	}

	st := i.state.Objects[obj.ID]
	if st.Status["open"] == "true" {
		return Response{Output: "It is already open.", Handled: true}
	}

	st.Status["open"] = "true"
	return Response{Output: fmt.Sprintf("You open the %s.", obj.Name), Handled: true}
}
