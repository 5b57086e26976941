package grass

import (
	"fmt"

	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

// ref is the absolute environment position a value was bound at. Position
// 1 is the first ABI slot; a section's parameter and applications follow
// the globals.
type ref int

var (
	bigW   = frag.Text("W")
	smallW = frag.Text("w")
	define = frag.Text("vw")
)

// program accumulates sealed sections. depth is the number of globals
// bound so far, counting the ABI.
type program struct {
	depth int
	out   []frag.Frag
}

func newProgram() *program {
	return &program{depth: int(numSlots)}
}

func (p *program) global(s slot) ref {
	return ref(s + 1)
}

// open starts a section. Only one section may be open at a time.
func (p *program) open() *section {
	return &section{p: p, base: p.depth, bp: 1}
}

// seal closes s as a one-argument abstraction that evaluates to result and
// returns the position of the new global.
func (p *program) seal(s *section, result ref) ref {
	if s.last == 0 || s.last != result {
		s.app(p.global(slotID), result)
	}
	p.out = append(p.out, define, frag.Cat(s.body...))
	p.depth++
	return ref(p.depth)
}

// section is the body of one top-level abstraction. bp counts the bindings
// made inside it: 1 is the parameter, each application adds one.
type section struct {
	p        *program
	base, bp int
	last     ref
	body     []frag.Frag
}

func (s *section) top() int { return s.base + s.bp }

// index is the de Bruijn index of r from the current top of the
// environment.
func (s *section) index(r ref) int {
	idx := s.top() - int(r) + 1
	if r <= 0 || idx < 1 {
		panic(fmt.Sprintf("grass: reference %d outside environment of depth %d", r, s.top()))
	}
	return idx
}

// app emits f x and returns where the result is bound.
func (s *section) app(f, x ref) ref {
	s.body = append(s.body, frag.Repeat(s.index(f), bigW), frag.Repeat(s.index(x), smallW))
	s.bp++
	s.last = ref(s.top())
	return s.last
}

func (s *section) global(sl slot) ref { return s.p.global(sl) }

func (s *section) bool(b bool) ref {
	if b {
		return s.global(slotT)
	}
	return s.global(slotNil)
}

// tuple applies cons or cons4 to parts one at a time.
func (s *section) tuple(parts ...ref) ref {
	var acc ref
	switch len(parts) {
	case 2:
		acc = s.global(slotCons)
	case 4:
		acc = s.global(slotCons4)
	default:
		panic(fmt.Sprintf("grass: unsupported tuple arity: %d", len(parts)))
	}
	for _, part := range parts {
		acc = s.app(acc, part)
	}
	return acc
}

// int24 applies bit0/bit1 to nil, least significant bit first.
func (s *section) int24(n int) ref {
	n = ir.Wrap24(n)
	acc := s.global(slotNil)
	for i := 0; i < ir.WordBits; i++ {
		bit := s.global(slotBit0)
		if n>>i&1 == 1 {
			bit = s.global(slotBit1)
		}
		acc = s.app(bit, acc)
	}
	return acc
}

func (s *section) reg(r ir.Reg) ref {
	return s.global(slotRegA + slot(r.Check()))
}

func (s *section) value(v ir.Value) ref {
	if v.IsImm() {
		return s.int24(v.Imm)
	}
	return s.reg(v.Reg)
}

func (s *section) isImm(v ir.Value) ref {
	return s.bool(v.IsImm())
}
