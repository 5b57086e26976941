package qftasm

import (
	"errors"
	"fmt"

	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

var (
	// ErrUnknownTarget is returned when a jump names a pc no chunk starts.
	ErrUnknownTarget = errors.New("jump to undefined pc")
	// ErrJumpTableRange is returned when a module with register jumps has a
	// pc the jump table cannot hold.
	ErrJumpTableRange = errors.New("pc outside the jump table")
)

// emitter collects lines for one module.
type emitter struct {
	lines     []Line
	afterJump bool
}

func (e *emitter) emit(ls ...Line) {
	e.lines = append(e.lines, ls...)
	e.afterJump = false
}

// delay pads the slot after a jump so nothing of the fall-through path runs
// when it is taken.
func (e *emitter) delay() {
	if e.afterJump {
		e.emit(nop)
	}
}

// mark records that the code for pc starts after the last line.
func (e *emitter) mark(pc int) {
	last := &e.lines[len(e.lines)-1]
	last.Marks = append(last.Marks, pc)
}

func (e *emitter) prologue(data []int) {
	e.emit(
		line(MNZ, imm(always), imm(StdinBuffer*2), imm(Stdin), "Register initialization (stdin buffer pointer)"),
		line(MNZ, imm(always), imm(StdoutBuffer), imm(Stdout), "Register initialization (stdout buffer pointer)"),
	)
	comment := "Memory table"
	for mp, v := range data {
		if v == 0 {
			continue
		}
		e.emit(line(MNZ, imm(always), imm(Narrow(v)), imm(mem(mp)), comment))
		comment = ""
	}
}

// jumpTable stores, for each chunk's pc, the line a jump to it writes to
// PC.
func (e *emitter) jumpTable(chunks [][]ir.Inst) error {
	comment := "Jump table"
	for _, chunk := range chunks {
		pc := chunk[0].PC
		if pc < 0 || pc >= maxJumpTable {
			return fmt.Errorf("%w: %d", ErrJumpTableRange, pc)
		}
		e.emit(line(MNZ, imm(always), label(pc), imm(JumpTable+pc), comment))
		comment = ""
	}
	return nil
}

// jumpsViaRegister reports whether any jump in text takes its target from a
// register.
func jumpsViaRegister(text []ir.Inst) bool {
	for _, inst := range text {
		if inst.Op.IsJump() && !inst.Jmp.IsImm() {
			return true
		}
	}
	return false
}

func (e *emitter) chunk(insts []ir.Inst, opts Options) {
	for i := 0; i < len(insts); {
		e.delay()
		if !opts.NoPeephole {
			if ls, n := peephole(insts[i:]); n > 0 {
				e.emit(ls...)
				i += n
				continue
			}
		}
		e.emit(ir.Visit(insts[i], lowerer{})...)
		e.afterJump = insts[i].Op.IsJump()
		i++
	}
}

func (e *emitter) epilogue() {
	e.delay()
	e.emit(lowerer{}.Exit()...)
}

// resolve replaces label operands with the line carrying the pc's mark.
// Landing on that line resumes execution at the chunk's first line.
func resolve(lines []Line) error {
	at := make(map[int]int)
	for i, l := range lines {
		for _, pc := range l.Marks {
			at[pc] = i
		}
	}
	fix := func(o *Operand) error {
		if !o.Label {
			return nil
		}
		n, ok := at[o.Value]
		if !ok {
			return fmt.Errorf("%w %d", ErrUnknownTarget, o.Value)
		}
		*o = imm(n)
		return nil
	}
	for i := range lines {
		l := &lines[i]
		for _, o := range []*Operand{&l.A, &l.B, &l.C} {
			if err := fix(o); err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
		}
	}
	return nil
}

// Assemble lowers mod to QFTASM lines.
func Assemble(mod *ir.Module, opts Options) ([]Line, error) {
	e := &emitter{}
	e.prologue(mod.Data)
	chunks := ir.Chunks(mod.Text)
	if jumpsViaRegister(mod.Text) {
		if err := e.jumpTable(chunks); err != nil {
			return nil, err
		}
	}
	for _, chunk := range chunks {
		e.delay()
		e.mark(chunk[0].PC)
		e.chunk(chunk, opts)
	}
	e.epilogue()
	if !opts.Raw {
		if err := resolve(e.lines); err != nil {
			return nil, err
		}
	}
	return e.lines, nil
}

// Generate emits mod as numbered QFTASM lines.
func Generate(mod *ir.Module, opts Options) (frag.Frag, error) {
	lines, err := Assemble(mod, opts)
	if err != nil {
		return frag.Frag{}, err
	}
	out := make([]frag.Frag, len(lines))
	for i, l := range lines {
		out[i] = frag.Text(fmt.Sprintf("%d. %s", i, l))
	}
	return frag.Join(out, frag.Text("\n")), nil
}
