package automaton

// searchItem is one backtracking alternative: a state paired with the
// number of input characters already consumed.
type searchItem struct {
	state  State
	offset int
}

// Matches reports whether the automaton accepts s as a whole string.
// It is a pure function of the automaton and s, and safe to call
// concurrently: all search state is local to the call.
//
// The search does not track visited states. Automata whose epsilon
// structure contains a cycle that consumes no input can make it run
// forever; use MatchesBounded for those.
func (a *Automaton) Matches(s string) bool {
	return a.match(s, false)
}

// MatchesBounded is Matches with visited-state tracking. It terminates
// on every automaton, at the cost of one map allocation per call. It
// is a separate mode, not the default: the unbounded search is the
// reference behavior.
func (a *Automaton) MatchesBounded(s string) bool {
	return a.match(s, true)
}

// match is a depth-first search over (state, offset) pairs with an
// explicit LIFO work stack, doubling as the epsilon-closure walk of a
// standard NFA simulation.
func (a *Automaton) match(s string, bounded bool) bool {
	input := []rune(s)
	stack := []searchItem{{state: 0, offset: 0}}

	var seen map[searchItem]bool
	if bounded {
		seen = make(map[searchItem]bool)
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if bounded {
			if seen[item] {
				continue
			}
			seen[item] = true
		}

		if item.state == a.finish && item.offset == len(input) {
			return true
		}

		table := a.base[item.state]

		if item.offset < len(input) {
			ch := input[item.offset]
			for _, to := range table[label{Char: ch}] {
				stack = append(stack, searchItem{state: to, offset: item.offset + 1})
			}
			if ch != Wildcard {
				for _, to := range table[label{Char: Wildcard}] {
					stack = append(stack, searchItem{state: to, offset: item.offset + 1})
				}
			}
			for _, ce := range a.negated[item.state] {
				if ce.Exclude[ch] {
					continue
				}
				for _, to := range ce.Targets {
					stack = append(stack, searchItem{state: to, offset: item.offset + 1})
				}
			}
		}

		for _, to := range table[label{Epsilon: true}] {
			stack = append(stack, searchItem{state: to, offset: item.offset})
		}
	}
	return false
}
