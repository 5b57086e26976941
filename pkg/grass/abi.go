package grass

// slot is a definition the prelude must provide. The prelude ends with one
// top-level definition per slot, in this order.
type slot int

const (
	slotNil slot = iota
	slotT
	slotCons
	slotCons4
	slotID
	slotBit0
	slotBit1
	slotRegA
	slotRegB
	slotRegC
	slotRegD
	slotRegBP
	slotRegSP
	slotMov
	slotAddSub
	slotStore
	slotLoad
	slotJmp
	slotCmp
	slotJmpCmp
	slotIO
	slotEq
	slotNe
	slotLt
	slotGt
	slotLe
	slotGe
	slotGetc
	slotPutc
	slotExit
	slotPlaceholder
	slotVM
	slotEight
	slotSixteen
	numSlots
)

// ABI names the definitions a prelude must end with, in order.
var ABI = [numSlots]string{
	"nil", "t", "cons", "cons4", "id", "bit0", "bit1",
	"regA", "regB", "regC", "regD", "regBP", "regSP",
	"mov", "addsub", "store", "load", "jmp", "cmp", "jmpcmp", "io",
	"eq", "ne", "lt", "gt", "le", "ge",
	"getc", "putc", "exit",
	"placeholder", "vm", "eight", "sixteen",
}

func (s slot) String() string { return ABI[s] }
