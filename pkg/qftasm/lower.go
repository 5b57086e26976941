package qftasm

import (
	"strings"

	"github.com/raymyers/ralph-elc/pkg/ir"
)

// lowerer expands one IR instruction into QFTASM lines. Temp and Temp2 are
// scratch; every other address it writes belongs to the instruction.
type lowerer struct{}

var _ ir.Visitor[[]Line] = lowerer{}

func (lowerer) Mov(dst ir.Reg, src ir.Value) []Line {
	return []Line{line(MNZ, imm(always), value(src), imm(regAddr(dst)), "MOV")}
}

func (lowerer) Add(dst ir.Reg, src ir.Value) []Line {
	d := regAddr(dst)
	return []Line{line(ADD, addr(d), value(src), imm(d), "ADD")}
}

func (lowerer) Sub(dst ir.Reg, src ir.Value) []Line {
	d := regAddr(dst)
	return []Line{line(SUB, addr(d), value(src), imm(d), "SUB")}
}

// Load and Store with a register address add MemOffset into Temp first.
func (lowerer) Load(dst ir.Reg, src ir.Value) []Line {
	d := imm(regAddr(dst))
	if src.IsImm() {
		return []Line{line(MNZ, imm(always), addr(mem(src.Imm)), d, "LOAD (imm)")}
	}
	return []Line{
		line(ADD, addr(regAddr(src.Reg)), imm(MemOffset), imm(Temp), "LOAD (reg)"),
		line(MNZ, imm(always), ptr(Temp), d, ""),
	}
}

func (lowerer) Store(dst ir.Value, val ir.Reg) []Line {
	v := addr(regAddr(val))
	if dst.IsImm() {
		return []Line{line(MNZ, imm(always), v, imm(mem(dst.Imm)), "STORE (imm)")}
	}
	return []Line{
		line(ADD, addr(regAddr(dst.Reg)), imm(MemOffset), imm(Temp), "STORE (reg)"),
		line(MNZ, imm(always), v, addr(Temp), ""),
	}
}

// Putc writes at the stdout cursor, moves it down and clears the new slot.
func (lowerer) Putc(src ir.Value) []Line {
	return []Line{
		line(MNZ, imm(always), value(src), addr(Stdout), "PUTC"),
		line(SUB, addr(Stdout), imm(1), imm(Stdout), ""),
		line(MNZ, imm(always), imm(0), addr(Stdout), ""),
	}
}

// Getc reads the byte at the stdin cursor: the low half of word cursor/2
// when the cursor is even, the high half when it is odd. The two paths are
// selected by a relative jump on the parity.
func (lowerer) Getc(dst ir.Reg) []Line {
	d := imm(regAddr(dst))
	return []Line{
		line(ANT, addr(Stdin), imm(0xfffe), imm(Temp), "GETC"),
		line(ANT, addr(Stdin), imm(1), imm(Temp2), "GETC"),
		line(SRU, imm(0), addr(Temp2), imm(Temp2), ""),
		nop,
		line(MNZ, addr(Temp), imm(4), imm(Temp), ""),
		line(ADD, addr(Temp), addr(PC), imm(PC), ""),
		nop,
		line(ANT, ptr(Temp2), imm(0xff00), d, ""),
		line(ADD, addr(PC), imm(4), imm(PC), ""),
		nop,
		line(ANT, ptr(Temp2), imm(0xff), imm(Temp2), "GETC"),
		line(SRE, imm(0), addr(Temp2), d, ""),
		nop,
		line(ADD, addr(Stdin), imm(1), imm(Stdin), ""),
	}
}

func (lowerer) Exit() []Line {
	return []Line{line(MNZ, imm(always), imm(halt), imm(PC), "EXIT"), nop}
}

func (lowerer) Dump() []Line { return nil }

// Cmp leaves 1 in dst when the condition holds and 0 otherwise. Ordered
// comparisons subtract and test the sign bit.
func (lowerer) Cmp(cc ir.Cond, dst ir.Reg, src ir.Value) []Line {
	d := regAddr(dst)
	s := value(src)
	tag := strings.ToUpper(cc.String())
	switch cc {
	case ir.CondEq:
		var out []Line
		if isZero(src) {
			out = []Line{line(MNZ, addr(d), imm(1), imm(d), "EQ (with 0)")}
		} else {
			out = []Line{
				line(XOR, s, addr(d), imm(d), "EQ"),
				line(MNZ, addr(d), imm(1), imm(d), ""),
			}
		}
		return append(out, line(XOR, imm(1), addr(d), imm(d), ""))
	case ir.CondNe:
		return []Line{
			line(XOR, s, addr(d), imm(d), "NE"),
			line(MNZ, addr(d), imm(1), imm(d), ""),
		}
	}

	// holds is the result when dst-src (or src-dst) is non-negative.
	holds, sub := 0, line(SUB, addr(d), s, imm(d), "")
	switch cc {
	case ir.CondGt:
		sub = line(SUB, s, addr(d), imm(d), "")
	case ir.CondLe:
		holds, sub = 1, line(SUB, s, addr(d), imm(d), "")
	case ir.CondGe:
		holds = 1
	}
	var out []Line
	if isZero(src) && (cc == ir.CondLt || cc == ir.CondGe) {
		out = []Line{line(MNZ, imm(always), imm(holds), imm(Temp), tag+" (with 0)")}
	} else {
		out = []Line{line(MNZ, imm(always), imm(holds), imm(Temp), tag), sub}
	}
	return append(out,
		line(MLZ, addr(d), imm(1-holds), imm(Temp), ""),
		line(MNZ, imm(always), addr(Temp), imm(d), ""),
	)
}

// JmpCmp computes the condition into Temp and then writes the target line
// to PC if Temp is nonzero.
func (lowerer) JmpCmp(cc ir.Cond, dst ir.Reg, src, jmp ir.Value) []Line {
	d := regAddr(dst)
	s := value(src)
	tag := "J" + strings.ToUpper(cc.String())
	zero := isZero(src)
	var out []Line
	switch cc {
	case ir.CondEq:
		if zero {
			out = []Line{
				line(MNZ, imm(always), imm(1), imm(Temp), tag+" (with 0)"),
				line(MNZ, addr(d), imm(0), imm(Temp), ""),
			}
		} else {
			out = []Line{
				line(XOR, s, addr(d), imm(Temp), tag),
				line(MNZ, addr(Temp), imm(1), imm(Temp), ""),
				line(XOR, imm(1), addr(Temp), imm(Temp), ""),
			}
		}
	case ir.CondNe:
		if zero {
			if jmp.IsImm() {
				return []Line{line(MNZ, addr(d), label(jmp.Imm), imm(PC), tag+" (with 0, imm)")}
			}
			return []Line{
				viaTable(jmp.Reg, Temp, tag+" (with 0, reg)"),
				line(MNZ, addr(d), ptr(Temp), imm(PC), ""),
			}
		}
		out = []Line{line(XOR, s, addr(d), imm(Temp), tag)}
	default:
		holds, sub := 0, line(SUB, addr(d), s, imm(Temp), "")
		switch cc {
		case ir.CondGt:
			sub = line(SUB, s, addr(d), imm(Temp), "")
		case ir.CondLe:
			holds, sub = 1, line(SUB, s, addr(d), imm(Temp), "")
		case ir.CondGe:
			holds = 1
		}
		sign := addr(Temp)
		if zero && (cc == ir.CondLt || cc == ir.CondGe) {
			out = []Line{line(MNZ, imm(always), imm(holds), imm(Temp2), tag+" (with 0)")}
			sign = addr(d)
		} else {
			out = []Line{line(MNZ, imm(always), imm(holds), imm(Temp2), tag), sub}
		}
		out = append(out,
			line(MLZ, sign, imm(1-holds), imm(Temp2), ""),
			line(MNZ, imm(always), addr(Temp2), imm(Temp), ""),
		)
	}
	return append(out, condJump(jmp)...)
}

// condJump jumps when Temp is nonzero. A register target is looked up
// through Temp2.
func condJump(jmp ir.Value) []Line {
	if jmp.IsImm() {
		return []Line{line(MNZ, addr(Temp), label(jmp.Imm), imm(PC), "(imm)")}
	}
	return []Line{
		viaTable(jmp.Reg, Temp2, "(reg)"),
		line(MNZ, addr(Temp), ptr(Temp2), imm(PC), ""),
	}
}

func (lowerer) Jmp(jmp ir.Value) []Line {
	if jmp.IsImm() {
		return []Line{line(MNZ, imm(always), label(jmp.Imm), imm(PC), "JMP (imm)")}
	}
	return []Line{
		viaTable(jmp.Reg, Temp, "JMP (reg)"),
		line(MNZ, imm(always), ptr(Temp), imm(PC), ""),
	}
}
