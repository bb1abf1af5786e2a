package ai

import (
	"context"
	"errors"
	"strings"
)

// ErrNoCommand is the "no match" sentinel: the resolver understood the
// request mechanism but could not produce a candidate command for it.
var ErrNoCommand = errors.New("ai: no command for input")

// Resolver turns free-form natural language into a candidate shell command.
// Implementations may use pattern rules, an LLM call, or any other backend;
// whatever they produce is classified identically downstream, so a resolver
// is never trusted to be safe.
type Resolver interface {
	Resolve(ctx context.Context, input string) (string, error)
}

// Name is implemented by resolvers that can describe themselves for the
// REPL's mode display.
type Name interface {
	Name() string
}

// Chain tries each resolver in order and returns the first candidate
// command. A resolver that fails (ErrNoCommand or a backend error, e.g. an
// unreachable LLM API) is skipped, so an LLM-first chain degrades to the
// pattern rules exactly like the single-resolver case.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context, input string) (string, error) {
	for _, r := range c {
		command, err := r.Resolve(ctx, input)
		if err != nil {
			continue
		}
		return command, nil
	}
	return "", ErrNoCommand
}

// Name joins the member names for display.
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, r := range c {
		if named, ok := r.(Name); ok {
			names = append(names, named.Name())
		}
	}
	if len(names) == 0 {
		return "unknown"
	}
	return strings.Join(names, " + ")
}
