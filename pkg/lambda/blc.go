package lambda

import (
	"errors"
	"fmt"
)

// ErrBLC is wrapped by every DecodeBLC error.
var ErrBLC = errors.New("malformed binary lambda term")

// DecodeBLC decodes one closed term from the front of bits and returns the
// unconsumed remainder. 00 is an abstraction, 01 an application and 1^n0
// the variable with index n-1.
func DecodeBLC(bits string) (Term, string, error) {
	d := &blcDecoder{bits: bits}
	t, err := d.term(0)
	if err != nil {
		return nil, "", err
	}
	return t, bits[d.pos:], nil
}

type blcDecoder struct {
	bits string
	pos  int
}

func (d *blcDecoder) next() (byte, error) {
	if d.pos >= len(d.bits) {
		return 0, fmt.Errorf("%w: unexpected end at bit %d", ErrBLC, d.pos)
	}
	b := d.bits[d.pos]
	if b != '0' && b != '1' {
		return 0, fmt.Errorf("%w: invalid character %q at bit %d", ErrBLC, b, d.pos)
	}
	d.pos++
	return b, nil
}

func (d *blcDecoder) term(depth int) (Term, error) {
	b, err := d.next()
	if err != nil {
		return nil, err
	}
	if b == '1' {
		start := d.pos - 1
		n := 1
		for {
			b, err := d.next()
			if err != nil {
				return nil, err
			}
			if b == '0' {
				break
			}
			n++
		}
		if n > depth {
			return nil, fmt.Errorf("%w: free variable %d at bit %d", ErrBLC, n-1, start)
		}
		return Var{Index: n - 1}, nil
	}
	b, err = d.next()
	if err != nil {
		return nil, err
	}
	if b == '0' {
		body, err := d.term(depth + 1)
		if err != nil {
			return nil, err
		}
		return Lam{Body: body}, nil
	}
	fun, err := d.term(depth)
	if err != nil {
		return nil, err
	}
	arg, err := d.term(depth)
	if err != nil {
		return nil, err
	}
	return App{Fun: fun, Arg: arg}, nil
}
