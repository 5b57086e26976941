package qftasm

import "github.com/raymyers/ralph-elc/pkg/ir"

// Fixed addresses. Registers A..SP live at 3..8.
const (
	PC     = 0
	Stdin  = 1
	Stdout = 2
	RegA   = 3
	Temp   = 9
	Temp2  = 10
)

// Buffers. The stdin cursor counts bytes from StdinBuffer*2; stdout grows
// downward from StdoutBuffer.
const (
	StdinBuffer  = 1310
	StdoutBuffer = 1846
)

// IR memory address a lives at MemOffset+a, wrapping at 2^16. When a
// module jumps through a register, the line for pc p is kept at
// JumpTable+p.
const (
	JumpTable = 11
	MemOffset = 4096

	maxJumpTable = StdinBuffer - JumpTable
)

const (
	// always is a condition word with the sign bit set, so MNZ and MLZ with
	// it as the first operand write unconditionally.
	always = 32768
	// halt is written to PC to end the program.
	halt = 65534
)

// Options control code generation.
type Options struct {
	// Raw keeps {pcN} jump placeholders instead of resolving them to line
	// numbers.
	Raw bool
	// NoPeephole disables the peephole optimizer.
	NoPeephole bool
}

// Narrow reinterprets a 24-bit IR word as a 16-bit machine word.
func Narrow(n int) int {
	if n < 0 {
		n += 1 << 16
	} else if n > 1<<23 {
		n = n - 1<<24 + 1<<16
	}
	return n & 0xffff
}

func regAddr(r ir.Reg) int {
	return RegA + int(r.Check())
}

// value is a value operand: the register's contents or the narrowed
// immediate.
func value(v ir.Value) Operand {
	if v.IsImm() {
		return imm(Narrow(v.Imm))
	}
	return addr(regAddr(v.Reg))
}

// mem is the machine address of IR address a.
func mem(a int) int {
	return (Narrow(a) + MemOffset) & 0xffff
}

// viaTable looks up the line for the pc in r and leaves its jump table
// slot in scratch.
func viaTable(r ir.Reg, scratch int, comment string) Line {
	return line(ADD, addr(regAddr(r)), imm(JumpTable), imm(scratch), comment)
}

func isZero(v ir.Value) bool {
	return v.IsImm() && v.Imm == 0
}
