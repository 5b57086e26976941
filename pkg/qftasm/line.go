// Package qftasm emits programs for the QFTASM assembly of the Quest for
// Tetris computer, and evaluates QFTASM programs.
//
// Each line is
//
//	N. OP a b c; comment
//
// and computes OP(a, b) into address c. Operands carry 0-3 dereferences
// (no prefix, A, B, C). The result of a line is written while the next line
// runs, so a jump executes one extra line before taking effect and lands
// one line past its target.
package qftasm

import (
	"fmt"
	"strings"
)

// Opcode is a QFTASM operation.
type Opcode int

const (
	MNZ Opcode = iota
	MLZ
	ADD
	SUB
	AND
	OR
	XOR
	ANT
	SL
	SRL
	SRA
	SRU
	SRE
	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	"MNZ", "MLZ", "ADD", "SUB", "AND", "OR", "XOR", "ANT", "SL", "SRL", "SRA", "SRU", "SRE",
}

func (op Opcode) String() string {
	if op >= 0 && op < numOpcodes {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// ParseOpcode looks up an opcode by mnemonic.
func ParseOpcode(s string) (Opcode, bool) {
	for i, name := range opcodeNames {
		if name == s {
			return Opcode(i), true
		}
	}
	return 0, false
}

// Operand is a literal with Mode dereferences applied. A Label operand
// names an IR pc and is replaced by a line number when the program is
// resolved.
type Operand struct {
	Mode  int
	Value int
	Label bool
}

func imm(v int) Operand  { return Operand{Value: v} }
func addr(a int) Operand { return Operand{Mode: 1, Value: a} }
func ptr(a int) Operand  { return Operand{Mode: 2, Value: a} }
func label(pc int) Operand {
	return Operand{Value: pc, Label: true}
}

var modePrefix = [...]string{"", "A", "B", "C"}

func (o Operand) String() string {
	if o.Label {
		return fmt.Sprintf("{pc%d}", o.Value)
	}
	return modePrefix[o.Mode] + fmt.Sprint(o.Value)
}

// Line is one instruction. Marks lists the IR pcs whose code starts right
// after this line.
type Line struct {
	Op      Opcode
	A, B, C Operand
	Comment string
	Marks   []int
}

func line(op Opcode, a, b, c Operand, comment string) Line {
	return Line{Op: op, A: a, B: b, C: c, Comment: comment}
}

var nop = line(MNZ, imm(0), imm(0), imm(0), "")

func (l Line) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s %s;", l.Op, l.A, l.B, l.C)
	if l.Comment != "" {
		sb.WriteString(" ")
		sb.WriteString(l.Comment)
	}
	for _, pc := range l.Marks {
		fmt.Fprintf(&sb, " pc == %d:", pc)
	}
	return sb.String()
}
