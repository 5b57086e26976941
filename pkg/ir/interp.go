package ir

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrStepLimit is returned by Run when the program does not exit within the
// step budget.
var ErrStepLimit = errors.New("step limit exceeded")

// Machine is the state of the reference interpreter.
type Machine struct {
	Regs   [NumRegs]int
	Mem    map[int]int
	Steps  int
	Exited bool
}

func (m *Machine) value(v Value) int {
	if v.IsImm() {
		return Wrap24(v.Imm)
	}
	return m.Regs[v.Reg.Check()]
}

// Run executes mod directly, reading GETC bytes from in and writing PUTC
// bytes to out. Memory starts as the data section. A maxSteps of zero means
// no limit. GETC at end of input yields 0.
func Run(mod *Module, in io.Reader, out io.Writer, maxSteps int) (*Machine, error) {
	m := &Machine{Mem: make(map[int]int, len(mod.Data))}
	for addr, v := range mod.Data {
		m.Mem[addr] = Wrap24(v)
	}

	// first index of each pc
	entry := make(map[int]int)
	for i, inst := range mod.Text {
		if _, ok := entry[inst.PC]; !ok {
			entry[inst.PC] = i
		}
	}

	br := bufio.NewReader(in)
	bw := bufio.NewWriter(out)
	defer bw.Flush()

	jump := func(target int) (int, error) {
		i, ok := entry[target]
		if !ok {
			return 0, fmt.Errorf("jump to undefined pc %d", target)
		}
		return i, nil
	}

	i := 0
	for i < len(mod.Text) {
		if maxSteps > 0 && m.Steps >= maxSteps {
			return m, ErrStepLimit
		}
		m.Steps++
		inst := mod.Text[i]
		i++
		switch inst.Op {
		case MOV:
			m.Regs[inst.Dst.MustReg()] = m.value(inst.Src)
		case ADD:
			r := inst.Dst.MustReg()
			m.Regs[r] = Wrap24(m.Regs[r] + m.value(inst.Src))
		case SUB:
			r := inst.Dst.MustReg()
			m.Regs[r] = Wrap24(m.Regs[r] - m.value(inst.Src))
		case LOAD:
			m.Regs[inst.Dst.MustReg()] = m.Mem[m.value(inst.Src)]
		case STORE:
			m.Mem[m.value(inst.Src)] = m.Regs[inst.Dst.MustReg()]
		case PUTC:
			if err := bw.WriteByte(byte(m.value(inst.Src))); err != nil {
				return m, err
			}
		case GETC:
			c, err := br.ReadByte()
			if err == io.EOF {
				c, err = 0, nil
			}
			if err != nil {
				return m, err
			}
			m.Regs[inst.Dst.MustReg()] = int(c)
		case EXIT:
			m.Exited = true
			return m, nil
		case DUMP:
		case EQ, NE, LT, GT, LE, GE:
			cc, _ := inst.Op.Cond()
			r := inst.Dst.MustReg()
			if cc.Holds(m.Regs[r], m.value(inst.Src)) {
				m.Regs[r] = 1
			} else {
				m.Regs[r] = 0
			}
		case JEQ, JNE, JLT, JGT, JLE, JGE:
			cc, _ := inst.Op.Cond()
			if cc.Holds(m.Regs[inst.Dst.MustReg()], m.value(inst.Src)) {
				next, err := jump(m.value(inst.Jmp))
				if err != nil {
					return m, err
				}
				i = next
			}
		case JMP:
			next, err := jump(m.value(inst.Jmp))
			if err != nil {
				return m, err
			}
			i = next
		default:
			Fatal(ErrUnknownOpcode, "%s", inst.Op)
		}
	}
	return m, nil
}
