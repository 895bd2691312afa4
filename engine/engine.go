// Package engine ties the pattern parser and the transition compiler
// together behind a single query-facing type.
package engine

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/rexen/automaton"
	"github.com/dhamidi/rexen/pattern"
)

var log = commonlog.GetLogger("rexen.engine")

// Option configures an Engine.
type Option func(*Engine)

// WithCycleGuard makes IsMatch track visited search states, so
// patterns whose automata contain input-free epsilon cycles terminate
// instead of looping. Off by default.
func WithCycleGuard() Option {
	return func(e *Engine) { e.guard = true }
}

// Engine owns one compiled automaton for the lifetime of the pattern.
// It is immutable after New and safe for concurrent IsMatch calls.
type Engine struct {
	pattern string
	a       *automaton.Automaton
	guard   bool
}

// New parses and compiles pattern. It fails with *pattern.SyntaxError
// for malformed patterns; no partially constructed Engine is ever
// returned.
func New(pat string, opts ...Option) (*Engine, error) {
	root, err := pattern.Parse(pat)
	if err != nil {
		return nil, err
	}
	a, err := automaton.Compile(root)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pat, err)
	}

	e := &Engine{pattern: pat, a: a}
	for _, opt := range opts {
		opt(e)
	}

	log.Debugf("compiled %q: %d states, %d edges", pat, a.NumStates(), len(a.Edges()))
	return e, nil
}

// IsMatch reports whether the whole candidate string belongs to the
// pattern's language.
func (e *Engine) IsMatch(candidate string) bool {
	if e.guard {
		return e.a.MatchesBounded(candidate)
	}
	return e.a.Matches(candidate)
}

// Pattern returns the pattern the engine was built from.
func (e *Engine) Pattern() string { return e.pattern }

// Automaton exposes the compiled automaton for diagnostics, such as
// the dot exporter.
func (e *Engine) Automaton() *automaton.Automaton { return e.a }
