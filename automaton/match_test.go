package automaton

import (
	"strings"
	"testing"
)

// matchCase pairs one candidate string with the expected verdict.
type matchCase struct {
	input string
	want  bool
}

func runMatchCases(t *testing.T, pat string, cases []matchCase) {
	t.Helper()
	a := mustCompile(t, pat)
	for _, tc := range cases {
		if got := a.Matches(tc.input); got != tc.want {
			t.Errorf("pattern %q: Matches(%q) = %v, want %v", pat, tc.input, got, tc.want)
		}
	}
}

func TestMatchEmptyPattern(t *testing.T) {
	runMatchCases(t, "", []matchCase{
		{"", true},
		{"a", false},
		{"abc", false},
	})
}

func TestMatchLiteralSequence(t *testing.T) {
	runMatchCases(t, "abc", []matchCase{
		{"abc", true},
		{"ab", false},
		{"abcd", false},
		{"", false},
		{"abd", false},
	})
}

func TestMatchGrouping(t *testing.T) {
	// All three bracketings are equivalent to "aaa".
	for _, pat := range []string{"a(a)a", "aa(a)", "(aa)a"} {
		runMatchCases(t, pat, []matchCase{
			{"aaa", true},
			{"aaaa", false},
			{"aa", false},
		})
	}
}

func TestMatchAlternation(t *testing.T) {
	runMatchCases(t, "a|b", []matchCase{
		{"a", true},
		{"b", true},
		{"ab", false},
		{"ba", false},
		{"", false},
	})
}

func TestMatchZeroOrMore(t *testing.T) {
	runMatchCases(t, "a*", []matchCase{
		{"", true},
		{"a", true},
		{strings.Repeat("a", 22), true},
		{"aaaab", false},
	})
	runMatchCases(t, "(aaa)*", []matchCase{
		{"", true},
		{"aaa", true},
		{"aaaaaa", true},
		{"a", false},
		{"aa", false},
	})
}

func TestMatchOneOrMore(t *testing.T) {
	runMatchCases(t, "a+", []matchCase{
		{"a", true},
		{"aaaa", true},
		{"", false},
		{"b", false},
		{"aab", false},
	})
	runMatchCases(t, "(aaa)+", []matchCase{
		{"aaa", true},
		{"aaaaaaaaa", true},
		{"aa", false},
		{"aab", false},
	})
}

func TestMatchZeroOrOne(t *testing.T) {
	runMatchCases(t, "a?", []matchCase{
		{"", true},
		{"a", true},
		{"aaa", false},
		{"b", false},
	})
	runMatchCases(t, "(aaa)?", []matchCase{
		{"", true},
		{"aaa", true},
		{"a", false},
		{"aa", false},
		{"aab", false},
	})
}

func TestMatchRange(t *testing.T) {
	runMatchCases(t, "a{2,3}", []matchCase{
		{"a", false},
		{"aa", true},
		{"aaa", true},
		{"aaaa", false},
	})
	runMatchCases(t, "a{3}", []matchCase{
		{"aa", false},
		{"aaa", true},
		{"aaaa", false},
	})
	runMatchCases(t, "(ab){1,2}", []matchCase{
		{"", false},
		{"ab", true},
		{"abab", true},
		{"ababab", false},
		{"aba", false},
	})
	runMatchCases(t, "a{0,2}", []matchCase{
		{"", true},
		{"a", true},
		{"aa", true},
		{"aaa", false},
	})
}

func TestMatchClass(t *testing.T) {
	runMatchCases(t, "[cd]", []matchCase{
		{"c", true},
		{"d", true},
		{"e", false},
		{"cd", false},
		{"", false},
	})
	runMatchCases(t, "[^bc]", []matchCase{
		{"a", true},
		{"z", true},
		{"7", true},
		{"b", false},
		{"c", false},
		{"", false},
		{"ab", false},
	})
	runMatchCases(t, "a[^bc]d", []matchCase{
		{"abd", false},
		{"acd", false},
		{"axd", true},
		{"ad", false},
	})
}

func TestMatchWildcard(t *testing.T) {
	runMatchCases(t, "a.c", []matchCase{
		{"abc", true},
		{"azc", true},
		{"a.c", true},
		{"ac", false},
		{"abbc", false},
	})
	runMatchCases(t, ".*", []matchCase{
		{"", true},
		{"x", true},
		{"hello", true},
	})
}

func TestMatchComplex(t *testing.T) {
	runMatchCases(t, "cc?|cc", []matchCase{
		{"c", true},
		{"cc", true},
	})
	runMatchCases(t, "a*(bb|cc?|(aaa|cd+c|d+))?", []matchCase{
		{"", true},
		{"aaa", true},
		{"ac", true},
		{"acc", true},
		{"acdddddc", true},
		{"abbb", false},
		{"accc", false},
	})
}

func TestMatchesBounded(t *testing.T) {
	// The outer star over two inner stars builds an input-free epsilon
	// cycle; the unbounded search would not terminate here.
	a := mustCompile(t, "(a*b*)*")
	cases := []matchCase{
		{"", true},
		{"b", true},
		{"ab", true},
		{"aabbab", true},
		{"c", false},
		{"abc", false},
	}
	for _, tc := range cases {
		if got := a.MatchesBounded(tc.input); got != tc.want {
			t.Errorf("MatchesBounded(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestMatchesBoundedAgrees(t *testing.T) {
	// On an epsilon-acyclic automaton both modes give the same answer.
	a := mustCompile(t, "a*(bb|cc?)?")
	for _, input := range []string{"", "a", "abb", "ac", "acc", "ab", "bc"} {
		if got, want := a.MatchesBounded(input), a.Matches(input); got != want {
			t.Errorf("MatchesBounded(%q) = %v, Matches(%q) = %v; modes disagree", input, got, input, want)
		}
	}
}
