package dot

import (
	"bytes"
	"testing"

	"github.com/dhamidi/rexen/automaton"
	"github.com/dhamidi/rexen/pattern"
)

func compile(t *testing.T, pat string) *automaton.Automaton {
	t.Helper()
	node, err := pattern.Parse(pat)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pat, err)
	}
	a, err := automaton.Compile(node)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pat, err)
	}
	return a
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "literal sequence",
			pattern: "ab",
			want: `digraph {
	Start [color="blue"]
	Finish [color="green"]
	Start -> S1 [label="a"]
	S1 -> Finish [label="b"]
}
`,
		},
		{
			name:    "epsilon edges are blank",
			pattern: "a?",
			want: `digraph {
	Start [color="blue"]
	Finish [color="green"]
	Start -> Finish [label=""]
	Start -> Finish [label="a"]
}
`,
		},
		{
			name:    "negated class is dashed",
			pattern: "a[^bc]",
			want: `digraph {
	Start [color="blue"]
	Finish [color="green"]
	Start -> S1 [label="a"]
	S1 -> Finish [label="^{bc}", style="dashed"]
}
`,
		},
		{
			name:    "empty pattern has no edges",
			pattern: "",
			want: `digraph {
	Start [color="blue"]
	Finish [color="green"]
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(compile(t, tt.pattern)); got != tt.want {
				t.Errorf("String() for %q:\n%s\nwant:\n%s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	a := compile(t, "a|b")
	var buf bytes.Buffer
	if err := Fprint(&buf, a); err != nil {
		t.Fatalf("Fprint error: %v", err)
	}
	if buf.String() != String(a) {
		t.Errorf("Fprint output differs from String output:\n%s\nvs:\n%s", buf.String(), String(a))
	}
}
