// Package grass emits programs in Grass, a language with no variable names:
// every reference is a unary de Bruijn index (W^n applies the n-th most
// recent value, w^n passes one). The output is the caller's prelude
// followed by one top-level abstraction per section:
//
//	prelude (v w (W+ w+)*)*
//
// The prelude must end with the definitions listed in ABI. Each section
// builds one value and is invoked later by applying it to itself; the last
// section applies the VM to the data and text lists.
package grass

import (
	"strings"

	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

type encoder struct {
	s *section
}

var _ ir.Visitor[ref] = encoder{}

func (e encoder) basic(tag slot, src ir.Value, dst ir.Reg) ref {
	s := e.s
	return s.tuple(s.global(tag), s.isImm(src), s.value(src), s.reg(dst))
}

func (e encoder) Mov(dst ir.Reg, src ir.Value) ref { return e.basic(slotMov, src, dst) }
func (e encoder) Load(dst ir.Reg, addr ir.Value) ref { return e.basic(slotLoad, addr, dst) }
func (e encoder) Store(addr ir.Value, val ir.Reg) ref { return e.basic(slotStore, addr, val) }

func (e encoder) addsub(dst ir.Reg, src ir.Value, add bool) ref {
	s := e.s
	return s.tuple(s.global(slotAddSub), s.isImm(src), s.value(src), s.tuple(s.reg(dst), s.bool(add)))
}

func (e encoder) Add(dst ir.Reg, src ir.Value) ref { return e.addsub(dst, src, true) }
func (e encoder) Sub(dst ir.Reg, src ir.Value) ref { return e.addsub(dst, src, false) }

func (e encoder) Cmp(cc ir.Cond, dst ir.Reg, src ir.Value) ref {
	s := e.s
	return s.tuple(s.global(slotCmp), s.isImm(src), s.value(src), s.tuple(s.global(slotEq+slot(cc)), s.reg(dst)))
}

func (e encoder) JmpCmp(cc ir.Cond, dst ir.Reg, src, target ir.Value) ref {
	s := e.s
	cond := s.tuple(s.global(slotEq+slot(cc)), s.isImm(target), s.value(target), s.reg(dst))
	return s.tuple(s.global(slotJmpCmp), s.isImm(src), s.value(src), cond)
}

func (e encoder) Jmp(target ir.Value) ref {
	s := e.s
	return s.tuple(s.global(slotJmp), s.isImm(target), s.value(target), s.global(slotPlaceholder))
}

func (e encoder) Putc(src ir.Value) ref {
	s := e.s
	return s.tuple(s.global(slotIO), s.isImm(src), s.value(src), s.global(slotPutc))
}

func (e encoder) Getc(dst ir.Reg) ref {
	s := e.s
	return s.tuple(s.global(slotIO), s.global(slotNil), s.reg(dst), s.global(slotGetc))
}

func (e encoder) Exit() ref {
	s := e.s
	return s.tuple(s.global(slotIO), s.global(slotNil), s.global(slotNil), s.global(slotExit))
}

func (e encoder) Dump() ref {
	s := e.s
	return s.tuple(s.global(slotMov), s.global(slotNil), s.reg(ir.A), s.reg(ir.A))
}

// list conses items onto nil from the last one back.
func (s *section) list(items []ref) ref {
	acc := s.global(slotNil)
	for _, item := range ir.Reversed(items) {
		acc = s.tuple(item, acc)
	}
	return acc
}

func (p *program) data(data []int) ref {
	s := p.open()
	acc := s.global(slotNil)
	for _, v := range ir.Reversed(data) {
		n := s.int24(v)
		acc = s.tuple(n, acc)
	}
	return p.seal(s, acc)
}

// chunk emits one section holding the instruction list of a pc.
func (p *program) chunk(insts []ir.Inst) ref {
	s := p.open()
	enc := encoder{s}
	acc := s.global(slotNil)
	for _, inst := range ir.Reversed(insts) {
		rec := ir.Visit(inst, enc)
		acc = s.tuple(rec, acc)
	}
	return p.seal(s, acc)
}

func (p *program) text(text []ir.Inst) ref {
	chunks := ir.Chunks(text)
	secs := make([]ref, len(chunks))
	for i := len(chunks) - 1; i >= 0; i-- {
		secs[i] = p.chunk(chunks[i])
	}
	s := p.open()
	vals := make([]ref, len(secs))
	for i, sec := range secs {
		vals[i] = s.app(sec, sec)
	}
	return p.seal(s, s.list(vals))
}

// Generate emits mod after prelude. Surrounding whitespace is trimmed from
// the prelude so the first section follows its last definition directly.
func Generate(mod *ir.Module, prelude string) frag.Frag {
	p := newProgram()
	data := p.data(mod.Data)
	text := p.text(mod.Text)

	s := p.open()
	acc := s.app(s.global(slotVM), s.global(slotEight))
	acc = s.app(acc, s.global(slotSixteen))
	acc = s.app(acc, s.app(data, data))
	acc = s.app(acc, s.app(text, text))
	p.seal(s, acc)

	return frag.Cat(frag.Text(strings.TrimSpace(prelude)), frag.Cat(p.out...))
}
