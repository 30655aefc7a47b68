package commands

import "context"

func (i *Interpreter) handleHelp(context.Context, string) Response {
	return Response{
		Output: "Commands: look, details, inventory, map, inspect <object>, take <object>, open <object>, " +
			"talk <actor>, go <path>.",
		Handled: true,
	}
}
