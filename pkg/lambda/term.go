// Package lambda holds a small untyped lambda-calculus toolkit: a parser for
// the textual \x.body notation, a binary lambda calculus decoder, and
// translation to S/K/I combinators printed in Unlambda notation.
package lambda

import (
	"fmt"
	"strings"
)

// Term is the interface for all lambda terms. Variables are de Bruijn
// indices: 0 refers to the innermost enclosing abstraction.
type Term interface {
	implTerm()
	String() string
}

// Var is a bound variable
type Var struct {
	Index int
}

// Lam is an abstraction
type Lam struct {
	Body Term
}

// App is an application
type App struct {
	Fun, Arg Term
}

func (Var) implTerm() {}
func (Lam) implTerm() {}
func (App) implTerm() {}

func (v Var) String() string { return fmt.Sprint(v.Index) }
func (l Lam) String() string { return `\ ` + l.Body.String() }

func (a App) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	writeSpine(&sb, a)
	sb.WriteString(")")
	return sb.String()
}

func writeSpine(sb *strings.Builder, t Term) {
	if a, ok := t.(App); ok {
		writeSpine(sb, a.Fun)
		sb.WriteString(" ")
		sb.WriteString(a.Arg.String())
		return
	}
	sb.WriteString(t.String())
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch t := t.(type) {
	case Lam:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Fun) + Size(t.Arg)
	}
	return 1
}

// Closed reports whether t has no free variables.
func Closed(t Term) bool {
	return maxFree(t, 0) < 0
}

// maxFree returns the largest index that escapes depth binders, relative to
// the outside, or -1.
func maxFree(t Term, depth int) int {
	switch t := t.(type) {
	case Var:
		return t.Index - depth
	case Lam:
		return maxFree(t.Body, depth+1)
	case App:
		return max(maxFree(t.Fun, depth), maxFree(t.Arg, depth))
	}
	return -1
}
