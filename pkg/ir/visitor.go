package ir

// Visitor is implemented by every instruction encoder, one method per opcode
// family. Adding a family here breaks the build of each encoder until it
// handles the new case.
type Visitor[T any] interface {
	Mov(dst Reg, src Value) T
	Add(dst Reg, src Value) T
	Sub(dst Reg, src Value) T
	Load(dst Reg, addr Value) T
	// Store writes register val to memory at addr. In Inst terms addr is
	// Src and val is Dst.
	Store(addr Value, val Reg) T
	Putc(src Value) T
	Getc(dst Reg) T
	Exit() T
	Dump() T
	Cmp(cc Cond, dst Reg, src Value) T
	JmpCmp(cc Cond, dst Reg, src Value, target Value) T
	Jmp(target Value) T
}

// Visit dispatches inst to the matching Visitor method.
func Visit[T any](inst Inst, v Visitor[T]) T {
	switch inst.Op {
	case MOV:
		return v.Mov(inst.Dst.MustReg(), inst.Src)
	case ADD:
		return v.Add(inst.Dst.MustReg(), inst.Src)
	case SUB:
		return v.Sub(inst.Dst.MustReg(), inst.Src)
	case LOAD:
		return v.Load(inst.Dst.MustReg(), inst.Src)
	case STORE:
		return v.Store(inst.Src, inst.Dst.MustReg())
	case PUTC:
		return v.Putc(inst.Src)
	case GETC:
		return v.Getc(inst.Dst.MustReg())
	case EXIT:
		return v.Exit()
	case DUMP:
		return v.Dump()
	case EQ, NE, LT, GT, LE, GE:
		cc, _ := inst.Op.Cond()
		return v.Cmp(cc, inst.Dst.MustReg(), inst.Src)
	case JEQ, JNE, JLT, JGT, JLE, JGE:
		cc, _ := inst.Op.Cond()
		return v.JmpCmp(cc, inst.Dst.MustReg(), inst.Src, inst.Jmp)
	case JMP:
		return v.Jmp(inst.Jmp)
	}
	Fatal(ErrUnknownOpcode, "%s", inst.Op)
	panic("unreachable")
}
