// Package pattern defines the syntax tree for a restricted regular
// expression dialect and the parser that produces it.
//
// The dialect supports literals, the `.` wildcard, grouping,
// alternation, enumerated and negated character classes, and the
// quantifiers `?`, `+`, `*`, `{m}` and `{m,n}`.
package pattern

import (
	"fmt"
	"slices"
	"strings"
)

// Wildcard is the reserved literal character matching any single
// input character.
const Wildcard = '.'

// QuantKind enumerates the repetition policies a node can carry.
type QuantKind int

const (
	Exactly1 QuantKind = iota
	ZeroOrOne
	OneOrMore
	ZeroOrMore
	Range
)

func (k QuantKind) String() string {
	switch k {
	case Exactly1:
		return "Exactly1"
	case ZeroOrOne:
		return "ZeroOrOne"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrMore:
		return "ZeroOrMore"
	case Range:
		return "Range"
	}
	return "Unknown"
}

// Quantifier is the repetition policy attached to every pattern node.
// Min and Max are meaningful only when Kind is Range; they satisfy
// Min <= Max and Max >= 1 for parser-produced trees.
type Quantifier struct {
	Kind QuantKind
	Min  int
	Max  int
}

// suffix renders the quantifier as it appears in pattern syntax.
func (q Quantifier) suffix() string {
	switch q.Kind {
	case ZeroOrOne:
		return "?"
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	case Range:
		if q.Min == q.Max {
			return fmt.Sprintf("{%d}", q.Min)
		}
		return fmt.Sprintf("{%d,%d}", q.Min, q.Max)
	}
	return ""
}

// Node is a node in the pattern tree. The concrete variants are
// *Sequence, *Alternation, *Literal and *Class. Every node carries
// exactly one quantifier; quantifiers do not propagate to children.
type Node interface {
	// Quantifier returns the node's repetition policy.
	Quantifier() Quantifier
	// SetQuantifier replaces the node's repetition policy. The parser
	// uses it to attach a suffix to the most recently completed term.
	SetQuantifier(Quantifier)
	// String renders the node back to pattern-ish syntax for
	// debugging and test failure messages.
	String() string
}

// Sequence is the concatenation of its children, in order. An empty
// sequence matches only the empty string.
type Sequence struct {
	Children []Node
	Quant    Quantifier
}

func (n *Sequence) Quantifier() Quantifier     { return n.Quant }
func (n *Sequence) SetQuantifier(q Quantifier) { n.Quant = q }

func (n *Sequence) String() string {
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.String())
	}
	if n.Quant.Kind == Exactly1 {
		return b.String()
	}
	return "(" + b.String() + ")" + n.Quant.suffix()
}

// Alternation matches any one of its children.
type Alternation struct {
	Children []Node
	Quant    Quantifier
}

func (n *Alternation) Quantifier() Quantifier     { return n.Quant }
func (n *Alternation) SetQuantifier(q Quantifier) { n.Quant = q }

func (n *Alternation) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, "|") + ")" + n.Quant.suffix()
}

// Literal matches one exact character. The Wildcard character is a
// reserved literal matching any single character.
type Literal struct {
	Char  rune
	Quant Quantifier
}

func (n *Literal) Quantifier() Quantifier     { return n.Quant }
func (n *Literal) SetQuantifier(q Quantifier) { n.Quant = q }

func (n *Literal) String() string {
	return string(n.Char) + n.Quant.suffix()
}

// Class matches any character in Members, or any character not in
// Members when Negated is set.
type Class struct {
	Members map[rune]bool
	Negated bool
	Quant   Quantifier
}

func (n *Class) Quantifier() Quantifier     { return n.Quant }
func (n *Class) SetQuantifier(q Quantifier) { n.Quant = q }

func (n *Class) String() string {
	members := make([]rune, 0, len(n.Members))
	for ch := range n.Members {
		members = append(members, ch)
	}
	slices.Sort(members)
	var b strings.Builder
	b.WriteByte('[')
	if n.Negated {
		b.WriteByte('^')
	}
	b.WriteString(string(members))
	b.WriteByte(']')
	b.WriteString(n.Quant.suffix())
	return b.String()
}
