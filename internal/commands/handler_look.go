package commands

import "context"

// handleLook re-renders the current location. Looking mutates nothing:
// repeating it yields the same text until another verb changes state.
func (i *Interpreter) handleLook(context.Context, string) Response {
	return Response{Output: i.describeLocation(), Handled: true}
}

// handleDetails surfaces the location's long-form notes.
func (i *Interpreter) handleDetails(context.Context, string) Response {
	return Response{Output: i.locationDetails(), Handled: true}
}
