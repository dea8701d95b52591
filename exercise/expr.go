package exercise

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/wording/quantity"
)

// ErrExpression is returned for derived expressions which cannot be parsed
// or evaluated.
var ErrExpression = errors.New("bad expression")

type tokenKind int8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(rs) && (unicode.IsDigit(rs[j]) || rs[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, string(rs[i:j])})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			toks = append(toks, token{tokIdent, string(rs[i:j])})
			i = j
		case strings.ContainsRune("+-*/^()", r):
			toks = append(toks, token{tokOp, string(r)})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrExpression, r, src)
		}
	}
	return append(toks, token{kind: tokEOF}), nil
}

// Lookup resolves a variable name occurring in an expression.
type Lookup func(name string) (quantity.Number, error)

// Eval evaluates an arithmetic expression with exact rational arithmetic.
// It understands + - * / ^ (integer exponents), unary minus and parentheses.
//
//	expr  := term { ('+'|'-') term }
//	term  := unary { ('*'|'/') unary }
//	unary := '-' unary | power
//	power := atom [ '^' unary ]
//	atom  := number | name | '(' expr ')'
func Eval(src string, lookup Lookup) (quantity.Number, error) {
	toks, err := tokenize(src)
	if err != nil {
		return quantity.Number{}, err
	}
	ev := &evaluator{src: src, toks: toks, lookup: lookup}
	n, err := ev.expr()
	if err != nil {
		return quantity.Number{}, err
	}
	if t := ev.peek(); t.kind != tokEOF {
		return quantity.Number{}, fmt.Errorf("%w: unexpected %q in %q", ErrExpression, t.text, src)
	}
	return n, nil
}

type evaluator struct {
	src    string
	toks   []token
	pos    int
	lookup Lookup
}

func (ev *evaluator) peek() token {
	return ev.toks[ev.pos]
}

func (ev *evaluator) next() token {
	t := ev.toks[ev.pos]
	if t.kind != tokEOF {
		ev.pos++
	}
	return t
}

func (ev *evaluator) isOp(op string) bool {
	t := ev.peek()
	return t.kind == tokOp && t.text == op
}

func (ev *evaluator) expr() (quantity.Number, error) {
	n, err := ev.term()
	if err != nil {
		return n, err
	}
	for ev.isOp("+") || ev.isOp("-") {
		op := ev.next().text
		m, err := ev.term()
		if err != nil {
			return m, err
		}
		if op == "+" {
			n = n.Add(m)
		} else {
			n = n.Sub(m)
		}
	}
	return n, nil
}

func (ev *evaluator) term() (quantity.Number, error) {
	n, err := ev.unary()
	if err != nil {
		return n, err
	}
	for ev.isOp("*") || ev.isOp("/") {
		op := ev.next().text
		m, err := ev.unary()
		if err != nil {
			return m, err
		}
		if op == "*" {
			n = n.Mul(m)
		} else if n, err = n.Quo(m); err != nil {
			return n, fmt.Errorf("%w: %q: %w", ErrExpression, ev.src, err)
		}
	}
	return n, nil
}

func (ev *evaluator) unary() (quantity.Number, error) {
	if ev.isOp("-") {
		ev.next()
		n, err := ev.unary()
		if err != nil {
			return n, err
		}
		return quantity.IntNumber(0).Sub(n), nil
	}
	return ev.power()
}

func (ev *evaluator) power() (quantity.Number, error) {
	n, err := ev.atom()
	if err != nil || !ev.isOp("^") {
		return n, err
	}
	ev.next()
	e, err := ev.unary()
	if err != nil {
		return e, err
	}
	r := e.Rat()
	if !r.IsInt() || !r.Num().IsInt64() {
		return n, fmt.Errorf("%w: %q: exponent %s is not an integer", ErrExpression, ev.src, e)
	}
	if n, err = n.Pow(int(r.Num().Int64())); err != nil {
		return n, fmt.Errorf("%w: %q: %w", ErrExpression, ev.src, err)
	}
	return n, nil
}

func (ev *evaluator) atom() (quantity.Number, error) {
	t := ev.next()
	switch t.kind {
	case tokNumber:
		n, err := quantity.ParseNumber(t.text)
		if err != nil {
			return n, fmt.Errorf("%w: %q: %w", ErrExpression, ev.src, err)
		}
		return n, nil
	case tokIdent:
		if ev.lookup == nil {
			return quantity.Number{}, fmt.Errorf("%w: %q: unknown variable %s", ErrExpression, ev.src, t.text)
		}
		return ev.lookup(t.text)
	case tokOp:
		if t.text == "(" {
			n, err := ev.expr()
			if err != nil {
				return n, err
			}
			if !ev.isOp(")") {
				return n, fmt.Errorf("%w: missing ) in %q", ErrExpression, ev.src)
			}
			ev.next()
			return n, nil
		}
	}
	if t.kind == tokEOF {
		return quantity.Number{}, fmt.Errorf("%w: unexpected end of %q", ErrExpression, ev.src)
	}
	return quantity.Number{}, fmt.Errorf("%w: unexpected %q in %q", ErrExpression, t.text, ev.src)
}
