// Package automaton lowers pattern trees into epsilon-NFA transition
// tables and answers whole-string membership queries against them.
//
// States are flat integers starting at 0 (the start state). The
// compiled table is immutable, so one automaton can serve concurrent
// queries without locking.
package automaton

import (
	"cmp"
	"slices"

	"github.com/dhamidi/rexen/pattern"
)

// State identifies one automaton state. State 0 is always the start
// state; identifiers are never reused within one automaton.
type State int

// Wildcard is stored verbatim as an edge label and matched against any
// input character at query time.
const Wildcard = pattern.Wildcard

// label keys one base transition: a character edge, or an epsilon edge
// that consumes no input.
type label struct {
	Char    rune
	Epsilon bool
}

// classEdge consumes one character that is not in Exclude. Negated
// classes are kept apart from base edges because the complement of the
// exclusion set cannot be enumerated.
type classEdge struct {
	Exclude map[rune]bool
	Targets []State
}

// Automaton is the compiled artifact: per-state transition tables plus
// the designated finish state. It is immutable once Compile returns.
type Automaton struct {
	base    map[State]map[label][]State
	negated map[State][]classEdge
	finish  State
	states  int
}

// Finish returns the designated accepting state.
func (a *Automaton) Finish() State { return a.finish }

// NumStates returns the size of the state space; identifiers lie in
// [0, NumStates).
func (a *Automaton) NumStates() int { return a.states }

// Edge is one transition, as exposed for diagnostics. Exactly one of
// the three shapes applies: an epsilon edge (Epsilon set), a negated
// class edge (Negated set, Exclude populated), or a plain character
// edge (Char set).
type Edge struct {
	From    State
	To      State
	Char    rune
	Epsilon bool
	Negated bool
	Exclude []rune // sorted; populated only for negated edges
}

// Edges returns every transition in a deterministic order, sorted by
// source state, then target, then label.
func (a *Automaton) Edges() []Edge {
	var edges []Edge
	for from, table := range a.base {
		for lb, targets := range table {
			for _, to := range targets {
				edges = append(edges, Edge{From: from, To: to, Char: lb.Char, Epsilon: lb.Epsilon})
			}
		}
	}
	for from, list := range a.negated {
		for _, ce := range list {
			exclude := make([]rune, 0, len(ce.Exclude))
			for ch := range ce.Exclude {
				exclude = append(exclude, ch)
			}
			slices.Sort(exclude)
			for _, to := range ce.Targets {
				edges = append(edges, Edge{From: from, To: to, Negated: true, Exclude: exclude})
			}
		}
	}

	slices.SortFunc(edges, func(x, y Edge) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		if c := cmp.Compare(x.To, y.To); c != 0 {
			return c
		}
		if c := cmp.Compare(rank(x), rank(y)); c != 0 {
			return c
		}
		return cmp.Compare(x.Char, y.Char)
	})
	return edges
}

func rank(e Edge) int {
	switch {
	case e.Epsilon:
		return 0
	case e.Negated:
		return 2
	}
	return 1
}
