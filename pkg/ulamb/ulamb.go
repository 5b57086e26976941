// Package ulamb emits programs for the Universal Lambda interpreter. The
// output is a BLC bit string of the form
//
//	0101 CORE data text
//
// where CORE is the VM supplied by the caller. Records use the same
// head-only framing as BLC, but the VM dispatches on its own tag set, so
// the instruction layout differs from the other Church targets.
package ulamb

import (
	"github.com/raymyers/ralph-elc/pkg/church"
	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

const (
	header = "0101"

	trueTerm = "0000110"
	nilTerm  = "000010"
	consHead = "00010110"
)

var syntax = &church.Syntax{
	True: frag.Text(trueTerm),
	Nil:  frag.Text(nilTerm),
	Regs: [ir.NumRegs]frag.Frag{
		ir.A:  frag.Text("000101100000100001011000001000010110000010000010"),
		ir.B:  frag.Text("0001011000001100001011000001000010110000010000010"),
		ir.C:  frag.Text("0001011000001000010110000011000010110000010000010"),
		ir.D:  frag.Text("00010110000011000010110000011000010110000010000010"),
		ir.SP: frag.Text("0001011000001000010110000010000101100000110000010"),
		ir.BP: frag.Text("00010110000011000010110000010000101100000110000010"),
	},
	PairHead: frag.Text(consHead),
	QuadHead: frag.Text("000101010110"),
	// An integer is a plain list of 24 booleans, least significant first.
	BitOpen:  frag.Text(consHead),
	Bit0:     frag.Text(nilTerm),
	Bit1:     frag.Text(trueTerm),
	IntNil:   frag.Text(nilTerm),
	LSBFirst: true,
}

// Instruction tags.
var (
	tagAdd     = frag.Text("00000000000000000010")
	tagStore   = frag.Text("000000000000000000110")
	tagMov     = frag.Text("0000000000000000001110")
	tagJmp     = frag.Text("00000000000000000011110")
	tagJumpCmp = frag.Text("000000000000000000111110")
	tagLoad    = frag.Text("0000000000000000001111110")
	tagCmp     = frag.Text("00000000000000000011111110")
	tagSub     = frag.Text("000000000000000000111111110")
	tagIO      = frag.Text("0000000000000000001111111110")
)

var conds = [ir.NumConds]frag.Frag{
	ir.CondEq: frag.Text("00000000000010"),
	ir.CondNe: frag.Text("000000000000110"),
	ir.CondLt: frag.Text("0000000000001110"),
	ir.CondGt: frag.Text("00000000000011110"),
	ir.CondLe: frag.Text("000000000000111110"),
	ir.CondGe: frag.Text("0000000000001111110"),
}

var (
	ioPutc = frag.Text("00000010")
	ioGetc = frag.Text("000000110")
	ioExit = frag.Text("0000001110")
)

type encoder struct {
	*church.Syntax
}

var _ ir.Visitor[frag.Frag] = encoder{}

func (e encoder) basic(tag frag.Frag, src ir.Value, dst ir.Reg) frag.Frag {
	return e.Tuple(tag, e.IsImm(src), e.Value(src), e.Reg(dst))
}

func (e encoder) Mov(dst ir.Reg, src ir.Value) frag.Frag { return e.basic(tagMov, src, dst) }
func (e encoder) Add(dst ir.Reg, src ir.Value) frag.Frag { return e.basic(tagAdd, src, dst) }
func (e encoder) Sub(dst ir.Reg, src ir.Value) frag.Frag { return e.basic(tagSub, src, dst) }
func (e encoder) Load(dst ir.Reg, addr ir.Value) frag.Frag { return e.basic(tagLoad, addr, dst) }
func (e encoder) Store(addr ir.Value, val ir.Reg) frag.Frag {
	return e.basic(tagStore, addr, val)
}

func (e encoder) Cmp(cc ir.Cond, dst ir.Reg, src ir.Value) frag.Frag {
	return e.Tuple(tagCmp, e.IsImm(src), e.Value(src), e.Tuple(conds[cc], e.Reg(dst)))
}

// JmpCmp nests (cond, dst, is-immediate, target); the field order differs
// from the lam/blc layout.
func (e encoder) JmpCmp(cc ir.Cond, dst ir.Reg, src, target ir.Value) frag.Frag {
	cond := e.Tuple(conds[cc], e.Reg(dst), e.IsImm(target), e.Value(target))
	return e.Tuple(tagJumpCmp, e.IsImm(src), e.Value(src), cond)
}

func (e encoder) Jmp(target ir.Value) frag.Frag {
	return e.Tuple(tagJmp, e.IsImm(target), e.Value(target), e.Nil)
}

func (e encoder) Putc(src ir.Value) frag.Frag {
	return e.Tuple(tagIO, e.IsImm(src), e.Value(src), ioPutc)
}

func (e encoder) Getc(dst ir.Reg) frag.Frag {
	return e.Tuple(tagIO, e.Nil, e.Reg(dst), ioGetc)
}

// Exit sets both flag fields to true; the VM ignores them.
func (e encoder) Exit() frag.Frag {
	return e.Tuple(tagIO, e.True, e.True, ioExit)
}

func (e encoder) Dump() frag.Frag {
	return e.Tuple(tagMov, e.Nil, e.Reg(ir.A), e.Reg(ir.A))
}

// Generate emits mod behind the core interpreter. core is inserted verbatim
// and must itself be a BLC bit string.
func Generate(mod *ir.Module, core string) frag.Frag {
	return frag.Cat(
		frag.Text(header),
		frag.Text(core),
		syntax.Data(mod.Data),
		syntax.Text(mod.Text, encoder{syntax}),
	)
}
