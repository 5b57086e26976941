// Package church assembles programs for targets that Church-encode their
// input: booleans select one of two arguments, records are functions that
// apply a selector to their fields, and lists are chains of pairs ending in
// NIL. A Syntax spells these shapes for one concrete calculus; Encoder lays
// out instruction records on top of it.
package church

import (
	"fmt"

	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

// Syntax holds the fragments a target uses for primitive values and record
// framing.
type Syntax struct {
	True, Nil frag.Frag
	Regs      [ir.NumRegs]frag.Frag

	// Records: head, fields, tail.
	PairHead, QuadHead, TupleTail frag.Frag

	// Integers: IntHead (BitOpen bit)*24 IntNil BitClose*24 IntTail.
	IntHead, IntTail  frag.Frag
	BitOpen, BitClose frag.Frag
	Bit0, Bit1        frag.Frag
	IntNil            frag.Frag
	LSBFirst          bool
}

// Bool encodes b.
func (s *Syntax) Bool(b bool) frag.Frag {
	if b {
		return s.True
	}
	return s.Nil
}

// Reg encodes a register name.
func (s *Syntax) Reg(r ir.Reg) frag.Frag {
	return s.Regs[r.Check()]
}

// Int encodes n as a 24-bit word. n is wrapped first, so n and n+2^24
// encode identically.
func (s *Syntax) Int(n int) frag.Frag {
	n = ir.Wrap24(n)
	bits := make([]frag.Frag, 0, 2*ir.WordBits)
	for i := 0; i < ir.WordBits; i++ {
		shift := ir.WordBits - 1 - i
		if s.LSBFirst {
			shift = i
		}
		bit := s.Bit0
		if n>>shift&1 == 1 {
			bit = s.Bit1
		}
		bits = append(bits, s.BitOpen, bit)
	}
	return frag.Cat(
		s.IntHead,
		frag.Cat(bits...),
		s.IntNil,
		frag.Repeat(ir.WordBits, s.BitClose),
		s.IntTail,
	)
}

// IsImm encodes whether v is an immediate.
func (s *Syntax) IsImm(v ir.Value) frag.Frag {
	return s.Bool(v.IsImm())
}

// Value encodes an operand: a register name or a 24-bit integer.
func (s *Syntax) Value(v ir.Value) frag.Frag {
	if v.IsImm() {
		return s.Int(v.Imm)
	}
	return s.Reg(v.Reg)
}

// Tuple builds a record applying a selector to parts. Pairs and quads are
// the only arities a VM destructures.
func (s *Syntax) Tuple(parts ...frag.Frag) frag.Frag {
	var head frag.Frag
	switch len(parts) {
	case 2:
		head = s.PairHead
	case 4:
		head = s.QuadHead
	default:
		panic(fmt.Sprintf("unsupported tuple arity: %d", len(parts)))
	}
	return frag.Cat(head, frag.Cat(parts...), s.TupleTail)
}

// List builds a NIL-terminated chain of pairs. The output is flat: each
// cell's head is emitted before its item and all tails are emitted after
// the terminator.
func (s *Syntax) List(items []frag.Frag) frag.Frag {
	parts := make([]frag.Frag, 0, 2*len(items)+2)
	for _, item := range items {
		parts = append(parts, s.PairHead, item)
	}
	parts = append(parts, s.Nil, frag.Repeat(len(items), s.TupleTail))
	return frag.Cat(parts...)
}

// Data encodes the data section. An empty section is just NIL.
func (s *Syntax) Data(data []int) frag.Frag {
	items := make([]frag.Frag, len(data))
	for i, v := range data {
		items[i] = s.Int(v)
	}
	return s.List(items)
}

// Text encodes the text section as a list of pc chunks, each a list of
// instruction records built by enc.
func (s *Syntax) Text(text []ir.Inst, enc ir.Visitor[frag.Frag]) frag.Frag {
	chunks := ir.Chunks(text)
	items := make([]frag.Frag, len(chunks))
	for i, chunk := range chunks {
		insts := make([]frag.Frag, len(chunk))
		for j, inst := range chunk {
			insts[j] = ir.Visit(inst, enc)
		}
		items[i] = s.List(insts)
	}
	return s.List(items)
}
