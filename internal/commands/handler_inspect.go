package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// handleInspect reports an object's description, details, and current
// status. Carried objects are in scope alongside the location's.
func (i *Interpreter) handleInspect(_ context.Context, target string) Response {
	if target == "" {
		return Response{Output: "Inspect what?", Handled: true}
	}

	obj := i.resolver.object(target, true)
	if obj == nil {
		return Response{Output: fmt.Sprintf("There is no '%s' to inspect.", target), Handled: true}
	}

	out := obj.Description
	if obj.Details != "" {
		out = out + "\n" + obj.Details
	}
	if st := i.state.Objects[obj.ID]; st != nil && len(st.Status) > 0 {
		keys := make([]string, 0, len(st.Status))
		for key := range st.Status {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		bits := make([]string, 0, len(keys))
		for _, key := range keys {
			bits = append(bits, fmt.Sprintf("%s=%s", key, st.Status[key]))
		}
		out = out + "\nCurrent state: " + strings.Join(bits, ", ") + "."
	}

	return Response{Output: out, Handled: true}
}
