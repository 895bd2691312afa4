// Package dot renders compiled automata as Graphviz digraphs for
// diagnostics. Output is deterministic: edges come out in the sorted
// order of Automaton.Edges.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/rexen/automaton"
)

// Fprint writes a to w as a Graphviz digraph.
func Fprint(w io.Writer, a *automaton.Automaton) error {
	_, err := io.WriteString(w, String(a))
	return err
}

// String renders a as a Graphviz digraph, one line per edge. Epsilon
// edges carry a blank label; negated-class edges are dashed and
// labeled with the exclusion set, `^{...}`. The start state is labeled
// Start, the finish state Finish, every other state S<n>.
func String(a *automaton.Automaton) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("\tStart [color=\"blue\"]\n")
	b.WriteString("\tFinish [color=\"green\"]\n")

	for _, e := range a.Edges() {
		from := stateLabel(e.From, a.Finish())
		to := stateLabel(e.To, a.Finish())
		switch {
		case e.Negated:
			fmt.Fprintf(&b, "\t%s -> %s [label=\"^{%s}\", style=\"dashed\"]\n", from, to, string(e.Exclude))
		case e.Epsilon:
			fmt.Fprintf(&b, "\t%s -> %s [label=\"\"]\n", from, to)
		default:
			fmt.Fprintf(&b, "\t%s -> %s [label=\"%c\"]\n", from, to, e.Char)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func stateLabel(s, finish automaton.State) string {
	switch s {
	case 0:
		return "Start"
	case finish:
		return "Finish"
	}
	return fmt.Sprintf("S%d", s)
}
