package lambda

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Comb is a combinatory-logic term: S, K, I, a variable left over from
// abstraction, or an application.
type Comb interface {
	// low is the smallest free variable index, or noFree.
	low() int
}

const noFree = math.MaxInt

// Prim is one of the primitive combinators.
type Prim byte

const (
	S Prim = 's'
	K Prim = 'k'
	I Prim = 'i'
)

// Ref is a variable that has not been abstracted yet.
type Ref int

// Ap is an application. Build it with Apply.
type Ap struct {
	Fun, Arg Comb
	lo       int
}

func (Prim) low() int  { return noFree }
func (r Ref) low() int { return int(r) }
func (a *Ap) low() int { return a.lo }

// Apply builds the application f x.
func Apply(f, x Comb) *Ap {
	return &Ap{Fun: f, Arg: x, lo: min(f.low(), x.low())}
}

// ToSKI translates a closed lambda term to S/K/I by bracket abstraction,
// with the K rule for unused variables and eta reduction for [x](f x).
func ToSKI(t Term) (Comb, error) {
	c := translate(t)
	if c.low() != noFree {
		return nil, fmt.Errorf("term is not closed: free variable %d", c.low())
	}
	return c, nil
}

func translate(t Term) Comb {
	switch t := t.(type) {
	case Var:
		return Ref(t.Index)
	case Lam:
		return abstract(translate(t.Body))
	case App:
		return Apply(translate(t.Fun), translate(t.Arg))
	}
	panic(fmt.Sprintf("unexpected term %T", t))
}

// abstract removes variable 0 from c and renumbers the rest down by one.
func abstract(c Comb) Comb {
	if c.low() != 0 {
		return shift(c)
	}
	switch c := c.(type) {
	case Ref:
		// c.low() == 0, so this is the bound variable itself.
		return I
	case *Ap:
		if r, ok := c.Arg.(Ref); ok && r == 0 && c.Fun.low() != 0 {
			return lower(c.Fun)
		}
		return Apply(Apply(S, abstract(c.Fun)), abstract(c.Arg))
	}
	panic(fmt.Sprintf("unexpected combinator %T", c))
}

// shift renumbers the free variables of c, none of which is 0, down by one
// and wraps the result in K.
func shift(c Comb) Comb {
	return Apply(K, lower(c))
}

func lower(c Comb) Comb {
	if c.low() == noFree {
		return c
	}
	switch c := c.(type) {
	case Ref:
		return c - 1
	case *Ap:
		return Apply(lower(c.Fun), lower(c.Arg))
	}
	return c
}

// WriteUnlambda prints c using ` for application and s, k, i for the
// primitives.
func WriteUnlambda(w io.StringWriter, c Comb) error {
	// Translated programs nest deeply; walk with an explicit stack.
	stack := []Comb{c}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var s string
		switch top := top.(type) {
		case Prim:
			s = string(rune(top))
		case *Ap:
			s = "`"
			stack = append(stack, top.Arg, top.Fun)
		case Ref:
			return fmt.Errorf("cannot print free variable %d", int(top))
		}
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// Unlambda returns c in Unlambda notation.
func Unlambda(c Comb) (string, error) {
	var sb strings.Builder
	if err := WriteUnlambda(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}
