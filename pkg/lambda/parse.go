package lambda

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every ParseText error.
var ErrSyntax = errors.New("lambda syntax error")

// ParseText parses a closed term written with single-letter variables,
// \x.body abstractions and juxtaposition for application. An abstraction
// body extends as far right as possible. Whitespace is insignificant.
func ParseText(src string) (Term, error) {
	p := &textParser{src: src}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return t, nil
}

type textParser struct {
	src   string
	pos   int
	scope []byte // innermost binder last
}

func (p *textParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *textParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *textParser) peek() byte {
	p.skipSpace()
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

// expr parses a left-associated application sequence, stopping at ')' or
// the end of input.
func (p *textParser) expr() (Term, error) {
	var acc Term
	for {
		c := p.peek()
		if c == 0 || c == ')' {
			break
		}
		var t Term
		var err error
		if c == '\\' {
			t, err = p.lambda()
		} else {
			t, err = p.atom()
		}
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = t
		} else {
			acc = App{Fun: acc, Arg: t}
		}
	}
	if acc == nil {
		return nil, p.errorf("expected a term")
	}
	return acc, nil
}

func (p *textParser) lambda() (Term, error) {
	p.pos++ // '\'
	name := p.peek()
	if !isLetter(name) {
		return nil, p.errorf("expected a variable after '\\'")
	}
	p.pos++
	if p.peek() != '.' {
		return nil, p.errorf("expected '.'")
	}
	p.pos++
	p.scope = append(p.scope, name)
	body, err := p.expr()
	p.scope = p.scope[:len(p.scope)-1]
	if err != nil {
		return nil, err
	}
	return Lam{Body: body}, nil
}

func (p *textParser) atom() (Term, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		t, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return t, nil
	case isLetter(c):
		for i := len(p.scope) - 1; i >= 0; i-- {
			if p.scope[i] == c {
				p.pos++
				return Var{Index: len(p.scope) - 1 - i}, nil
			}
		}
		return nil, p.errorf("free variable %q", c)
	}
	return nil, p.errorf("unexpected %q", c)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
