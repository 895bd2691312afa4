package automaton

import (
	"fmt"

	"github.com/dhamidi/rexen/pattern"
)

// CompileError reports a structurally inconsistent pattern tree. Trees
// produced by pattern.Parse never trigger it; it exists so hand-built
// trees fail cleanly instead of panicking.
type CompileError struct {
	Msg string
}

func (e *CompileError) Error() string { return "compile: " + e.Msg }

// Compile lowers a pattern tree into an automaton rooted at state 0.
// State numbering is deterministic: a pure function of tree shape and
// traversal order.
func Compile(root pattern.Node) (*Automaton, error) {
	c := &compiler{
		a: &Automaton{
			base:    make(map[State]map[label][]State),
			negated: make(map[State][]classEdge),
		},
	}
	end, err := c.lower(root, 0, 1)
	if err != nil {
		return nil, err
	}
	c.a.finish = end
	c.touch(end)
	c.a.states = int(c.max) + 1
	return c.a, nil
}

type compiler struct {
	a   *Automaton
	max State
}

func (c *compiler) touch(s State) {
	if s > c.max {
		c.max = s
	}
}

func (c *compiler) addBase(from State, lb label, to State) {
	table := c.a.base[from]
	if table == nil {
		table = make(map[label][]State)
		c.a.base[from] = table
	}
	table[lb] = append(table[lb], to)
	c.touch(from)
	c.touch(to)
}

func (c *compiler) epsilon(from, to State) {
	c.addBase(from, label{Epsilon: true}, to)
}

func (c *compiler) addNegated(from State, exclude map[rune]bool, to State) {
	c.a.negated[from] = append(c.a.negated[from], classEdge{
		Exclude: exclude,
		Targets: []State{to},
	})
	c.touch(from)
	c.touch(to)
}

// lower emits transitions for n entered at start, using next to seed
// child numbering, and returns n's end state. The quantifier wrap is
// applied after the unwrapped lowering, uniformly for every node kind.
func (c *compiler) lower(n pattern.Node, start, next State) (State, error) {
	if n == nil {
		return 0, &CompileError{Msg: "nil pattern node"}
	}

	q := n.Quantifier()
	if q.Kind == pattern.Range {
		if q.Min < 0 || q.Max < 1 || q.Min > q.Max {
			return 0, &CompileError{Msg: fmt.Sprintf("invalid range quantifier {%d,%d}", q.Min, q.Max)}
		}
		return c.lowerRepeat(n, start, next, q.Min, q.Max)
	}

	end, err := c.lowerBare(n, start, next)
	if err != nil {
		return 0, err
	}

	switch q.Kind {
	case pattern.Exactly1:
	case pattern.ZeroOrOne:
		c.epsilon(start, end) // skip
	case pattern.OneOrMore:
		c.epsilon(end, start) // loop back
	case pattern.ZeroOrMore:
		// Loop back plus skip to a fresh shared exit, so the loop
		// join and the skip join stay distinct states.
		c.epsilon(end, start)
		c.epsilon(start, end+1)
		end++
	default:
		return 0, &CompileError{Msg: fmt.Sprintf("unknown quantifier kind %d", q.Kind)}
	}
	return end, nil
}

// lowerBare emits transitions for n ignoring its own quantifier.
// Children still honor theirs.
func (c *compiler) lowerBare(n pattern.Node, start, next State) (State, error) {
	switch n := n.(type) {
	case *pattern.Literal:
		c.addBase(start, label{Char: n.Char}, next)
		return next, nil

	case *pattern.Class:
		if n.Negated {
			exclude := make(map[rune]bool, len(n.Members))
			for ch := range n.Members {
				exclude[ch] = true
			}
			c.addNegated(start, exclude, next)
			return next, nil
		}
		for ch := range n.Members {
			c.addBase(start, label{Char: ch}, next)
		}
		// An empty class emits no edges; next still becomes the
		// (unreachable) end state.
		c.touch(next)
		return next, nil

	case *pattern.Sequence:
		end := start
		nxt := next
		for _, child := range n.Children {
			e, err := c.lower(child, end, nxt)
			if err != nil {
				return 0, err
			}
			end = e
			nxt = end + 1
		}
		return end, nil

	case *pattern.Alternation:
		ends := make([]State, 0, len(n.Children))
		latest := start
		nxt := next
		for _, child := range n.Children {
			e, err := c.lower(child, start, nxt)
			if err != nil {
				return 0, err
			}
			ends = append(ends, e)
			latest = e
			nxt = latest + 1
		}
		// Every branch joins a freshly allocated state, even when a
		// branch end could serve. Kept as-is: downstream numbering
		// depends on it.
		join := latest + 1
		for _, e := range ends {
			c.epsilon(e, join)
		}
		return join, nil
	}
	return 0, &CompileError{Msg: fmt.Sprintf("unknown pattern node %T", n)}
}

// lowerRepeat realizes a {min,max} quantifier by chaining max
// unwrapped copies of n. The state preceding copy i gets a skip
// epsilon straight to the final end for every i in [min, max), which
// covers min == 0 via the very first state.
func (c *compiler) lowerRepeat(n pattern.Node, start, next State, min, max int) (State, error) {
	cur := start
	nxt := next
	var skips []State
	for i := 0; i < max; i++ {
		if i >= min {
			skips = append(skips, cur)
		}
		end, err := c.lowerBare(n, cur, nxt)
		if err != nil {
			return 0, err
		}
		cur = end
		nxt = end + 1
	}
	for _, s := range skips {
		c.epsilon(s, cur)
	}
	return cur, nil
}
