package church

import (
	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

// Tags are the opaque constants a VM dispatches on.
type Tags struct {
	Mov, AddSub, Store, Load, Jmp, Cmp, JmpCmp, IO frag.Frag

	Conds [ir.NumConds]frag.Frag

	Getc, Putc, Exit frag.Frag

	// Placeholder fills the unused payload slot of JMP.
	Placeholder frag.Frag
}

// Encoder builds one quad record per instruction:
//
//	(tag, is-immediate, operand, payload)
//
// The payload is the destination register for MOV/LOAD/STORE, a
// (dst, is-add) pair for ADD/SUB, a (cond, dst) pair for comparisons and a
// nested (cond, is-immediate, target, dst) quad for conditional jumps.
type Encoder struct {
	*Syntax
	Tags *Tags
}

var _ ir.Visitor[frag.Frag] = (*Encoder)(nil)

func (e *Encoder) basic(tag frag.Frag, src ir.Value, dst ir.Reg) frag.Frag {
	return e.Tuple(tag, e.IsImm(src), e.Value(src), e.Reg(dst))
}

func (e *Encoder) Mov(dst ir.Reg, src ir.Value) frag.Frag {
	return e.basic(e.Tags.Mov, src, dst)
}

func (e *Encoder) Load(dst ir.Reg, addr ir.Value) frag.Frag {
	return e.basic(e.Tags.Load, addr, dst)
}

func (e *Encoder) Store(addr ir.Value, val ir.Reg) frag.Frag {
	return e.basic(e.Tags.Store, addr, val)
}

func (e *Encoder) addsub(dst ir.Reg, src ir.Value, add bool) frag.Frag {
	return e.Tuple(e.Tags.AddSub, e.IsImm(src), e.Value(src), e.Tuple(e.Reg(dst), e.Bool(add)))
}

func (e *Encoder) Add(dst ir.Reg, src ir.Value) frag.Frag { return e.addsub(dst, src, true) }

func (e *Encoder) Sub(dst ir.Reg, src ir.Value) frag.Frag { return e.addsub(dst, src, false) }

func (e *Encoder) Cmp(cc ir.Cond, dst ir.Reg, src ir.Value) frag.Frag {
	return e.Tuple(e.Tags.Cmp, e.IsImm(src), e.Value(src), e.Tuple(e.Tags.Conds[cc], e.Reg(dst)))
}

func (e *Encoder) JmpCmp(cc ir.Cond, dst ir.Reg, src, target ir.Value) frag.Frag {
	cond := e.Tuple(e.Tags.Conds[cc], e.IsImm(target), e.Value(target), e.Reg(dst))
	return e.Tuple(e.Tags.JmpCmp, e.IsImm(src), e.Value(src), cond)
}

func (e *Encoder) Jmp(target ir.Value) frag.Frag {
	return e.Tuple(e.Tags.Jmp, e.IsImm(target), e.Value(target), e.Tags.Placeholder)
}

func (e *Encoder) Putc(src ir.Value) frag.Frag {
	return e.Tuple(e.Tags.IO, e.IsImm(src), e.Value(src), e.Tags.Putc)
}

func (e *Encoder) Getc(dst ir.Reg) frag.Frag {
	return e.Tuple(e.Tags.IO, e.Nil, e.Reg(dst), e.Tags.Getc)
}

func (e *Encoder) Exit() frag.Frag {
	return e.Tuple(e.Tags.IO, e.Nil, e.Nil, e.Tags.Exit)
}

// Dump is lowered to MOV A, A.
func (e *Encoder) Dump() frag.Frag {
	return e.Tuple(e.Tags.Mov, e.Nil, e.Reg(ir.A), e.Reg(ir.A))
}
