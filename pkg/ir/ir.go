// Package ir defines the register-machine IR consumed by every back end.
// A Module is a list of 24-bit data words (position = address) and a list of
// pc-tagged instructions over six registers. Instructions sharing a pc form
// one atomic step of the target machine.
package ir

import "fmt"

// WordBits is the width of IR arithmetic.
const WordBits = 24

// WordMask masks a value to WordBits bits.
const WordMask = 1<<WordBits - 1

// Wrap24 reduces n modulo 2^24 into [0, 2^24).
func Wrap24(n int) int {
	return n & WordMask
}

// Reg is a machine register.
type Reg int

const (
	A Reg = iota
	B
	C
	D
	BP
	SP
)

// NumRegs is the number of registers.
const NumRegs = 6

var regNames = [NumRegs]string{"A", "B", "C", "D", "BP", "SP"}

func (r Reg) String() string {
	if r.Valid() {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", int(r))
}

// Valid reports whether r names one of the six registers.
func (r Reg) Valid() bool {
	return r >= A && r <= SP
}

// Check returns r, failing fatally when r is not a register.
func (r Reg) Check() Reg {
	if !r.Valid() {
		Fatal(ErrUnknownRegister, "%s", r)
	}
	return r
}

// ParseReg looks up a register by name.
func ParseReg(name string) (Reg, bool) {
	for i, n := range regNames {
		if n == name {
			return Reg(i), true
		}
	}
	return 0, false
}

// ValueKind discriminates Value. The zero kind is invalid.
type ValueKind int

const (
	InvalidValue ValueKind = iota
	RegValue
	ImmValue
)

// Value is an instruction operand: a register or an immediate.
type Value struct {
	Kind ValueKind
	Reg  Reg
	Imm  int
}

// R returns a register operand.
func R(r Reg) Value { return Value{Kind: RegValue, Reg: r} }

// Imm returns an immediate operand.
func Imm(n int) Value { return Value{Kind: ImmValue, Imm: n} }

// IsImm reports whether v is an immediate, failing fatally on a malformed
// value.
func (v Value) IsImm() bool {
	switch v.Kind {
	case RegValue:
		return false
	case ImmValue:
		return true
	}
	Fatal(ErrInvalidValue, "%s", v)
	return false
}

// MustReg returns the register of a register operand.
func (v Value) MustReg() Reg {
	if v.Kind != RegValue {
		Fatal(ErrInvalidValue, "expected register, got %s", v)
	}
	return v.Reg.Check()
}

func (v Value) String() string {
	switch v.Kind {
	case RegValue:
		return v.Reg.String()
	case ImmValue:
		return fmt.Sprint(v.Imm)
	}
	return fmt.Sprintf("<invalid kind %d>", int(v.Kind))
}

// Op is an IR opcode.
type Op int

const (
	MOV Op = iota
	ADD
	SUB
	LOAD
	STORE
	PUTC
	GETC
	EXIT
	JEQ
	JNE
	JLT
	JGT
	JLE
	JGE
	JMP
	EQ
	NE
	LT
	GT
	LE
	GE
	DUMP
)

// NumOps is the number of opcodes.
const NumOps = int(DUMP) + 1

var opNames = [NumOps]string{
	"mov", "add", "sub", "load", "store", "putc", "getc", "exit",
	"jeq", "jne", "jlt", "jgt", "jle", "jge", "jmp",
	"eq", "ne", "lt", "gt", "le", "ge", "dump",
}

func (op Op) String() string {
	if op >= 0 && int(op) < NumOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ParseOp looks up an opcode by its lower-case mnemonic.
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return 0, false
}

// Cond is a comparison code shared by EQ..GE and JEQ..JGE.
type Cond int

const (
	CondEq Cond = iota
	CondNe
	CondLt
	CondGt
	CondLe
	CondGe
)

// NumConds is the number of comparison codes.
const NumConds = 6

var condNames = [NumConds]string{"eq", "ne", "lt", "gt", "le", "ge"}

func (c Cond) String() string {
	if c >= 0 && int(c) < NumConds {
		return condNames[c]
	}
	return fmt.Sprintf("Cond(%d)", int(c))
}

// Holds evaluates the comparison on two unsigned 24-bit words.
func (c Cond) Holds(x, y int) bool {
	switch c {
	case CondEq:
		return x == y
	case CondNe:
		return x != y
	case CondLt:
		return x < y
	case CondGt:
		return x > y
	case CondLe:
		return x <= y
	case CondGe:
		return x >= y
	}
	panic(fmt.Sprintf("unhandled condition: %d", int(c)))
}

// Cond returns the comparison code of a comparison or conditional jump.
func (op Op) Cond() (Cond, bool) {
	switch {
	case op >= JEQ && op <= JGE:
		return Cond(op - JEQ), true
	case op >= EQ && op <= GE:
		return Cond(op - EQ), true
	}
	return 0, false
}

// IsJump reports whether op may transfer control.
func (op Op) IsJump() bool {
	return op >= JEQ && op <= JMP
}

// Inst is one IR instruction. Src and Dst name operand slots, not data
// flow: STORE writes register Dst to the address Src.
type Inst struct {
	Op  Op
	Dst Value
	Src Value
	Jmp Value
	PC  int
}

func (i Inst) String() string {
	switch i.Op {
	case MOV, ADD, SUB, LOAD, STORE, EQ, NE, LT, GT, LE, GE:
		return fmt.Sprintf("%s %s, %s", i.Op, i.Dst, i.Src)
	case PUTC:
		return fmt.Sprintf("%s %s", i.Op, i.Src)
	case GETC:
		return fmt.Sprintf("%s %s", i.Op, i.Dst)
	case JEQ, JNE, JLT, JGT, JLE, JGE:
		return fmt.Sprintf("%s %s, %s, %s", i.Op, i.Jmp, i.Dst, i.Src)
	case JMP:
		return fmt.Sprintf("%s %s", i.Op, i.Jmp)
	}
	return i.Op.String()
}

// Module is a compilation unit. Back ends treat it as read-only.
type Module struct {
	Data []int
	Text []Inst
}

// Validate checks that every instruction carries the operands its opcode
// needs.
func (m *Module) Validate() error {
	for n, inst := range m.Text {
		if err := validateInst(inst); err != nil {
			return fmt.Errorf("text[%d] (pc %d): %w", n, inst.PC, err)
		}
	}
	return nil
}

func validateInst(inst Inst) error {
	needReg := func(slot string, v Value) error {
		if v.Kind != RegValue || !v.Reg.Valid() {
			return fmt.Errorf("%s: %s operand must be a register", inst.Op, slot)
		}
		return nil
	}
	needValue := func(slot string, v Value) error {
		switch v.Kind {
		case RegValue:
			if !v.Reg.Valid() {
				return fmt.Errorf("%s: unknown register in %s", inst.Op, slot)
			}
			return nil
		case ImmValue:
			return nil
		}
		return fmt.Errorf("%s: missing %s operand", inst.Op, slot)
	}

	switch inst.Op {
	case MOV, ADD, SUB, LOAD, STORE, EQ, NE, LT, GT, LE, GE:
		if err := needReg("dst", inst.Dst); err != nil {
			return err
		}
		return needValue("src", inst.Src)
	case PUTC:
		return needValue("src", inst.Src)
	case GETC:
		return needReg("dst", inst.Dst)
	case JEQ, JNE, JLT, JGT, JLE, JGE:
		if err := needReg("dst", inst.Dst); err != nil {
			return err
		}
		if err := needValue("src", inst.Src); err != nil {
			return err
		}
		return needValue("jmp", inst.Jmp)
	case JMP:
		return needValue("jmp", inst.Jmp)
	case EXIT, DUMP:
		return nil
	}
	return fmt.Errorf("unknown opcode %s", inst.Op)
}
