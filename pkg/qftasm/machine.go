package qftasm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/raymyers/ralph-elc/pkg/ir"
)

var (
	// ErrSyntax wraps every Parse error.
	ErrSyntax = errors.New("qftasm: syntax error")
	// ErrUnresolved is returned by Run on reaching a line that still has a
	// {pcN} placeholder.
	ErrUnresolved = errors.New("qftasm: unresolved jump label")
)

// Parse reads numbered QFTASM lines. Line numbers are not checked; blank
// lines are skipped.
func Parse(src string) ([]Line, error) {
	var prog []Line
	for n, text := range strings.Split(src, "\n") {
		l, ok, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n+1, err)
		}
		if ok {
			prog = append(prog, l)
		}
	}
	return prog, nil
}

func parseLine(text string) (Line, bool, error) {
	var l Line
	if i := strings.IndexByte(text, ';'); i >= 0 {
		l.Comment = strings.TrimSpace(text[i+1:])
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return l, false, nil
	}
	if len(fields) != 5 || !strings.HasSuffix(fields[0], ".") {
		return l, false, fmt.Errorf("want \"N. OP a b c\", got %q", strings.TrimSpace(text))
	}
	op, ok := ParseOpcode(fields[1])
	if !ok {
		return l, false, fmt.Errorf("unknown opcode %q", fields[1])
	}
	l.Op = op
	for i, dst := range []*Operand{&l.A, &l.B, &l.C} {
		o, err := parseOperand(fields[2+i])
		if err != nil {
			return l, false, err
		}
		*dst = o
	}
	return l, true, nil
}

func parseOperand(s string) (Operand, error) {
	var o Operand
	if strings.HasPrefix(s, "{pc") && strings.HasSuffix(s, "}") {
		pc, err := strconv.Atoi(s[3 : len(s)-1])
		if err != nil {
			return o, fmt.Errorf("bad label %q", s)
		}
		return label(pc), nil
	}
	if s != "" {
		if i := strings.IndexByte("ABC", s[0]); i >= 0 {
			o.Mode = i + 1
			s = s[1:]
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return o, fmt.Errorf("bad operand %q", s)
	}
	o.Value = v
	return o, nil
}

// Machine evaluates QFTASM. Each step fetches the line at PC, writes the
// previous line's result, reads operands, computes, and increments PC. It
// halts when PC is past the last line.
type Machine struct {
	RAM   []uint16
	Steps int

	prog    []Line
	pending bool
	val     uint16
	dst     uint16
}

// NewMachine returns a machine with zeroed RAM, ready to run prog from
// line 0.
func NewMachine(prog []Line) *Machine {
	return &Machine{RAM: make([]uint16, 1<<16), prog: prog}
}

// SetInput packs in into the stdin buffer, two bytes per word, low byte
// first.
func (m *Machine) SetInput(in []byte) {
	for i, b := range in {
		w := &m.RAM[StdinBuffer+i/2]
		if i%2 == 0 {
			*w = uint16(b)
		} else {
			*w |= uint16(b) << 8
		}
	}
}

// Output returns the bytes written to the stdout buffer.
func (m *Machine) Output() []byte {
	var out []byte
	for i := StdoutBuffer; i > int(m.RAM[Stdout]); i-- {
		out = append(out, byte(m.RAM[i]))
	}
	return out
}

func (m *Machine) read(o Operand) uint16 {
	v := uint16(o.Value)
	for range o.Mode {
		v = m.RAM[v]
	}
	return v
}

func eval(op Opcode, a, b uint16) (uint16, bool) {
	switch op {
	case MNZ:
		return b, a != 0
	case MLZ:
		return b, a&0x8000 != 0
	case ADD:
		return a + b, true
	case SUB:
		return a - b, true
	case AND:
		return a & b, true
	case OR:
		return a | b, true
	case XOR:
		return a ^ b, true
	case ANT:
		return a &^ b, true
	case SL:
		return a << b, true
	case SRL:
		return a >> b, true
	case SRA:
		return a&0x80 ^ a&(0x7f>>b), true
	case SRU:
		return b >> 1, true
	case SRE:
		return b >> 8, true
	}
	panic(fmt.Sprintf("qftasm: unknown opcode %d", int(op)))
}

// Run steps the machine until it halts. A maxSteps of zero means no limit.
func (m *Machine) Run(maxSteps int) error {
	for int(m.RAM[PC]) < len(m.prog) {
		if maxSteps > 0 && m.Steps >= maxSteps {
			return ir.ErrStepLimit
		}
		n := int(m.RAM[PC])
		l := m.prog[n]
		if l.A.Label || l.B.Label || l.C.Label {
			return fmt.Errorf("%w at line %d", ErrUnresolved, n)
		}
		if m.pending {
			m.RAM[m.dst] = m.val
		}
		a, b, c := m.read(l.A), m.read(l.B), m.read(l.C)
		m.val, m.pending = eval(l.Op, a, b)
		m.dst = c
		m.RAM[PC]++
		m.Steps++
	}
	return nil
}
