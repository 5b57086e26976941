package lazyk

import (
	"errors"
	"fmt"

	"github.com/raymyers/ralph-elc/pkg/lambda"
)

// A small Lazy K evaluator: graph reduction over S, K and I, with the
// inc/number primitives Lazy K uses to read numerals back.

type nodeOp int

const (
	opApp nodeOp = iota
	opS
	opK
	opI
	opInc
	opNum
	opInd
)

type node struct {
	op   nodeOp
	l, r *node
	n    int
}

var errFuel = errors.New("reduction limit reached")

func app(l, r *node) *node { return &node{op: opApp, l: l, r: r} }
func prim(op nodeOp) *node  { return &node{op: op} }

func (n *node) follow() *node {
	for n.op == opInd {
		n = n.l
	}
	return n
}

func fromComb(c lambda.Comb) (*node, error) {
	switch c := c.(type) {
	case lambda.Prim:
		switch c {
		case lambda.S:
			return prim(opS), nil
		case lambda.K:
			return prim(opK), nil
		case lambda.I:
			return prim(opI), nil
		}
	case *lambda.Ap:
		f, err := fromComb(c.Fun)
		if err != nil {
			return nil, err
		}
		x, err := fromComb(c.Arg)
		if err != nil {
			return nil, err
		}
		return app(f, x), nil
	}
	return nil, fmt.Errorf("unexpected combinator %v", c)
}

type machine struct {
	fuel int
}

// whnf reduces root to weak head normal form, overwriting each redex with
// its result so shared subterms are reduced once.
func (m *machine) whnf(root *node) (*node, error) {
	var spine []*node
	cur := root
	for {
		cur = cur.follow()
		if cur.op == opApp {
			spine = append(spine, cur)
			cur = cur.l
			continue
		}
		if m.fuel--; m.fuel < 0 {
			return nil, errFuel
		}
		k := len(spine)
		switch cur.op {
		case opI:
			if k < 1 {
				return root.follow(), nil
			}
			a := spine[k-1]
			spine = spine[:k-1]
			a.op, a.l, a.r = opInd, a.r, nil
			cur = a
		case opK:
			if k < 2 {
				return root.follow(), nil
			}
			a1, a2 := spine[k-1], spine[k-2]
			spine = spine[:k-2]
			a2.op, a2.l, a2.r = opInd, a1.r, nil
			cur = a2
		case opS:
			if k < 3 {
				return root.follow(), nil
			}
			x, y, a3 := spine[k-1].r, spine[k-2].r, spine[k-3]
			spine = spine[:k-3]
			z := a3.r
			a3.l, a3.r = app(x, z), app(y, z)
			cur = a3
		case opInc:
			if k < 1 {
				return root.follow(), nil
			}
			a := spine[k-1]
			spine = spine[:k-1]
			v, err := m.whnf(a.r)
			if err != nil {
				return nil, err
			}
			if v.op != opNum {
				return nil, errors.New("inc applied to a non-number")
			}
			a.op, a.l, a.r, a.n = opNum, nil, nil, v.n+1
			cur = a
		case opNum:
			if k > 0 {
				return nil, errors.New("number applied as a function")
			}
			return cur, nil
		}
	}
}

// cons builds \f.f a b as S(SI(Ka))(Kb).
func cons(a, b *node) *node {
	return app(app(prim(opS), app(app(prim(opS), prim(opI)), app(prim(opK), a))), app(prim(opK), b))
}

// churchNumeral builds succ^n 0 with succ = S(S(KS)K).
func churchNumeral(n int) *node {
	succ := app(prim(opS), app(app(prim(opS), app(prim(opK), prim(opS))), prim(opK)))
	c := app(prim(opK), prim(opI))
	for range n {
		c = app(succ, c)
	}
	return c
}

// inputList is in as numerals followed by 256 forever.
func inputList(in []byte) *node {
	eof := &node{op: opInd}
	eof.l = cons(churchNumeral(256), eof)
	list := eof
	for i := len(in) - 1; i >= 0; i-- {
		list = cons(churchNumeral(int(in[i])), list)
	}
	return list
}

// runLazyK applies prog to in and collects output numerals until one is
// 256 or more.
func runLazyK(prog lambda.Comb, in []byte, fuel int) ([]byte, error) {
	p, err := fromComb(prog)
	if err != nil {
		return nil, err
	}
	m := &machine{fuel: fuel}
	result := app(p, inputList(in))
	var out []byte
	for {
		head := app(result, prim(opK))
		v, err := m.whnf(app(app(head, prim(opInc)), &node{op: opNum}))
		if err != nil {
			return out, err
		}
		if v.op != opNum {
			return out, errors.New("output element is not a numeral")
		}
		if v.n >= 256 {
			return out, nil
		}
		out = append(out, byte(v.n))
		result = app(result, app(prim(opK), prim(opI)))
	}
}
