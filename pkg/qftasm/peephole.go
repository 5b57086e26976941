package qftasm

import "github.com/raymyers/ralph-elc/pkg/ir"

// peephole tries to fold the instructions at the head of window, which never
// extends past the current chunk. It returns the replacement lines and how
// many instructions they cover, or 0 when nothing matches.
func peephole(window []ir.Inst) ([]Line, int) {
	if len(window) < 2 {
		return nil, 0
	}
	first, second := window[0], window[1]

	// MOV r, x; ADD r, y
	if first.Op == ir.MOV && second.Op == ir.ADD && first.Dst == second.Dst &&
		second.Src != first.Dst {
		r := regAddr(second.Dst.MustReg())
		return []Line{line(ADD, value(first.Src), value(second.Src), imm(r), "MOV-ADD")}, 2
	}

	// LOAD d, [s]; MOV s, d; LOAD d, [t]
	if len(window) < 3 {
		return nil, 0
	}
	third := window[2]
	if first.Op != ir.LOAD || second.Op != ir.MOV || third.Op != ir.LOAD ||
		first.Src.IsImm() || third.Src.IsImm() ||
		second.Dst != first.Src || second.Src != first.Dst || third.Dst != first.Dst {
		return nil, 0
	}
	s := regAddr(first.Src.MustReg())
	d := regAddr(first.Dst.MustReg())
	deref := func(dst int, comment string) []Line {
		return []Line{
			line(ADD, addr(s), imm(MemOffset), imm(Temp), comment),
			line(MNZ, imm(always), ptr(Temp), imm(dst), ""),
		}
	}
	switch third.Src {
	case first.Src:
		return append(deref(s, "LOAD-MOV-LOAD (triplet)"), deref(d, "")...), 3
	case first.Dst:
		// The third load would read through the value the fold skips.
		return nil, 0
	}
	return deref(s, "LOAD-MOV-LOAD"), 2
}
