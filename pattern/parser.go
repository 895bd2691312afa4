package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SyntaxError reports a malformed pattern. Pos is the rune offset of
// the construct that failed.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern: %s at offset %d", e.Msg, e.Pos)
}

// op is an entry on the parser's operator stack. Concatenation binds
// tighter than alternation; opParen marks an open group.
type op int

const (
	opConcat op = iota
	opAlt
	opParen
)

type parser struct {
	input []rune
	pos   int

	stack []Node // completed terms
	ops   []op

	// pending records that a completed term directly precedes the
	// current position, so the next term implies a concatenation.
	pending bool
}

// Parse turns a pattern string into a pattern tree. The empty pattern
// parses to an empty *Sequence, which matches only the empty string.
//
// The parser is a two-stack shunting-yard variant: terms accumulate on
// a value stack, operators (implicit concatenation, alternation, open
// parens) on an operator stack. Runs of equal operators collapse into
// one flat Sequence or Alternation node, preserving left-to-right
// order. Quantifier suffixes mutate the most recently completed term
// in place.
func Parse(pattern string) (Node, error) {
	p := &parser{input: []rune(pattern)}
	return p.parse()
}

func (p *parser) parse() (Node, error) {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == '?' || c == '+' || c == '*':
			if err := p.applyQuantifier(suffixQuantifier(c)); err != nil {
				return nil, err
			}
			p.pos++

		case c == '{':
			q, err := p.scanRepeatRange()
			if err != nil {
				return nil, err
			}
			if err := p.applyQuantifier(q); err != nil {
				return nil, err
			}

		case c == '|':
			if err := p.collapseWhile(func(o op) bool { return o == opConcat }); err != nil {
				return nil, err
			}
			p.ops = append(p.ops, opAlt)
			p.pending = false
			p.pos++

		case c == '(':
			if p.pending {
				p.ops = append(p.ops, opConcat)
			}
			p.pending = false
			p.ops = append(p.ops, opParen)
			p.pos++

		case c == ')':
			if err := p.collapseWhile(func(op) bool { return true }); err != nil {
				return nil, err
			}
			if len(p.ops) == 0 || p.ops[len(p.ops)-1] != opParen {
				return nil, &SyntaxError{Pos: p.pos, Msg: "unmatched ')'"}
			}
			p.ops = p.ops[:len(p.ops)-1]
			p.pending = p.pos < len(p.input)-1
			p.pos++

		case c == '[':
			cls, err := p.scanClass()
			if err != nil {
				return nil, err
			}
			p.pushTerm(cls)

		case c == Wildcard || unicode.IsLetter(c) || unicode.IsDigit(c):
			p.pushTerm(&Literal{Char: c})
			p.pos++

		default:
			return nil, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}

	if err := p.collapseWhile(func(op) bool { return true }); err != nil {
		return nil, err
	}
	if len(p.ops) > 0 {
		return nil, &SyntaxError{Pos: len(p.input), Msg: "unbalanced '('"}
	}
	switch len(p.stack) {
	case 0:
		return &Sequence{}, nil
	case 1:
		return p.stack[0], nil
	}
	return nil, &SyntaxError{Pos: len(p.input), Msg: "malformed expression"}
}

// pushTerm records a completed term and the implicit concatenation
// with the term before it, if any.
func (p *parser) pushTerm(n Node) {
	p.stack = append(p.stack, n)
	if p.pending {
		p.ops = append(p.ops, opConcat)
	}
	p.pending = true
}

func (p *parser) applyQuantifier(q Quantifier) error {
	if len(p.stack) == 0 {
		return &SyntaxError{Pos: p.pos, Msg: "quantifier with no preceding term"}
	}
	p.stack[len(p.stack)-1].SetQuantifier(q)
	return nil
}

func suffixQuantifier(c rune) Quantifier {
	switch c {
	case '?':
		return Quantifier{Kind: ZeroOrOne}
	case '+':
		return Quantifier{Kind: OneOrMore}
	}
	return Quantifier{Kind: ZeroOrMore}
}

// collapseWhile folds runs of equal operators from the top of the
// operator stack into Sequence/Alternation nodes while keep allows it.
// It always stops at an opParen marker. A run of n equal operators
// folds n+1 values into one flat node, keeping left-to-right order.
func (p *parser) collapseWhile(keep func(op) bool) error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top == opParen || !keep(top) {
			return nil
		}

		count := 0
		for len(p.ops) > 0 && p.ops[len(p.ops)-1] == top {
			p.ops = p.ops[:len(p.ops)-1]
			count++
		}

		if count+1 > len(p.stack) {
			return &SyntaxError{Pos: p.pos, Msg: "missing operand"}
		}
		children := make([]Node, count+1)
		copy(children, p.stack[len(p.stack)-count-1:])
		p.stack = p.stack[:len(p.stack)-count-1]

		var folded Node
		if top == opConcat {
			folded = &Sequence{Children: children}
		} else {
			folded = &Alternation{Children: children}
		}
		p.stack = append(p.stack, folded)
	}
	return nil
}

// scanClass consumes a [...] or [^...] construct. Characters are taken
// verbatim up to the closing ']'; there is no escaping.
func (p *parser) scanClass() (*Class, error) {
	start := p.pos
	p.pos++ // consume '['

	cls := &Class{Members: make(map[rune]bool)}
	if p.pos < len(p.input) && p.input[p.pos] == '^' {
		cls.Negated = true
		p.pos++
	}
	for p.pos < len(p.input) && p.input[p.pos] != ']' {
		cls.Members[p.input[p.pos]] = true
		p.pos++
	}
	if p.pos >= len(p.input) {
		return nil, &SyntaxError{Pos: start, Msg: "unterminated character class"}
	}
	p.pos++ // consume ']'
	return cls, nil
}

// scanRepeatRange consumes a {m} or {m,n} construct. {m} is shorthand
// for {m,m}.
func (p *parser) scanRepeatRange() (Quantifier, error) {
	start := p.pos
	p.pos++ // consume '{'

	end := -1
	for i := p.pos; i < len(p.input); i++ {
		if p.input[i] == '}' {
			end = i
			break
		}
	}
	if end < 0 {
		return Quantifier{}, &SyntaxError{Pos: start, Msg: "unterminated repetition range"}
	}

	body := string(p.input[p.pos:end])
	var min, max int
	if lo, hi, found := strings.Cut(body, ","); found {
		var err error
		if min, err = parseBound(lo, start); err != nil {
			return Quantifier{}, err
		}
		if max, err = parseBound(hi, start); err != nil {
			return Quantifier{}, err
		}
	} else {
		n, err := parseBound(body, start)
		if err != nil {
			return Quantifier{}, err
		}
		min, max = n, n
	}

	if max < 1 || min > max {
		return Quantifier{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid repetition range {%s}", body)}
	}
	p.pos = end + 1
	return Quantifier{Kind: Range, Min: min, Max: max}, nil
}

func parseBound(s string, pos int) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("non-numeric repetition bound %q", s)}
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("non-numeric repetition bound %q", s)}
	}
	return n, nil
}
