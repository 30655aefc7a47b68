package commands

import (
	"context"
	"strings"
)

// verb is one entry in the dispatch table: a predicate over the lowered
// command and the handler to run when it matches.
type verb struct {
	match matchFunc
	run   handlerFunc
}

// matchFunc reports whether it claims the command, and if so the target
// token extracted from it. Whole-command matchers return an empty target.
type matchFunc func(command string) (target string, ok bool)

// handlerFunc runs one matched command against the session.
type handlerFunc func(ctx context.Context, target string) Response

// verbTable builds the ordered dispatch table for a session. Order
// matters: the first match wins, so "examine location" must be claimed
// whole before the "examine " prefix can see it.
func verbTable(i *Interpreter) []verb {
	return []verb{
		{exact("look", "look around", "l"), i.handleLook},
		{exact("details", "examine location"), i.handleDetails},
		{exact("inventory", "i"), i.handleInventory},
		{exact("help"), i.handleHelp},
		{exact("map", "view map", "study map", "look at map"), i.handleMap},
		{prefixed("inspect ", "examine "), i.handleInspect},
		{prefixed("take ", "pick up "), i.handleTake},
		{prefixed("open "), i.handleOpen},
		{prefixed("talk ", "speak "), i.handleTalk},
		{prefixed("go ", "move "), i.handleMove},
	}
}

// exact matches when the command equals one of the given phrases.
func exact(phrases ...string) matchFunc {
	return func(command string) (string, bool) {
		for _, p := range phrases {
			if command == p {
				return "", true
			}
		}
		return "", false
	}
}

// prefixed matches when the command starts with one of the given verb
// prefixes. The target is everything after the matched prefix, with
// filler words stripped; it may end up empty.
func prefixed(prefixes ...string) matchFunc {
	return func(command string) (string, bool) {
		for _, p := range prefixes {
			if strings.HasPrefix(command, p) {
				return stripFiller(command[len(p):]), true
			}
		}
		return "", false
	}
}

// fillerWords are connective tokens players put between a verb and its
// target, e.g. "talk to the parrot".
var fillerWords = []string{"to ", "the ", "at ", "toward ", "towards "}

// stripFiller removes leading filler words repeatedly until the target
// stabilizes.
func stripFiller(target string) string {
	target = strings.TrimSpace(target)
	for changed := true; changed && target != ""; {
		changed = false
		for _, w := range fillerWords {
			if strings.HasPrefix(target, w) {
				target = strings.TrimSpace(target[len(w):])
				changed = true
			}
		}
	}
	return target
}
