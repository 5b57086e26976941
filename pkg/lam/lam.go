// Package lam emits programs as textual lambda-calculus terms in \x.(...)
// syntax. The output applies a bundled interpreter to two numerals, the
// data list and the text list:
//
//	( VM EIGHT SIXTEEN data text )
package lam

import (
	"github.com/raymyers/ralph-elc/pkg/church"
	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

const (
	eight   = `(\x.\y.(((\x.\y.(x(x y)))(((\y.(y y))(\x.\y.(x(x y))))x))y))`
	sixteen = `((\x.(x x x))(\x.\y.(x(x y))))`

	trueTerm = `(\x.\y.x)`
	nilTerm  = `(\x.\y.y)`

	consHead = `(\f.(f`
	consTail = `))`
)

// syntax is the textual lambda spelling of Church values.
var syntax = &church.Syntax{
	True: frag.Text(trueTerm),
	Nil:  frag.Text(nilTerm),
	Regs: [ir.NumRegs]frag.Frag{
		ir.A:  frag.Text(`(\x.(x(\y.\z.y)(\y.\z.z)))`),
		ir.B:  frag.Text(`(\x.(x(\y.\z.z)(\x.(x(\z.\a.z)(\x.(x(\a.\b.a)(\a.\b.b)))))))`),
		ir.C:  frag.Text(`(\x.(x(\y.\z.z)(\x.(x(\z.\a.a)(\x.(x(\a.\b.b)(\x.(x(\b.\c.c)(\b.\c.c)))))))))`),
		ir.D:  frag.Text(`(\x.(x(\y.\z.z)(\x.(x(\z.\a.a)(\x.(x(\a.\b.a)(\a.\b.b)))))))`),
		ir.BP: frag.Text(`(\x.(x(\y.\z.z)(\x.(x(\z.\a.a)(\x.(x(\a.\b.b)(\x.(x(\b.\c.b)(\b.\c.c)))))))))`),
		ir.SP: frag.Text(`(\x.(x(\y.\z.z)(\x.(x(\z.\a.z)(\x.(x(\a.\b.b)(\a.\b.b)))))))`),
	},
	PairHead:  frag.Text(consHead),
	QuadHead:  frag.Text(consHead),
	TupleTail: frag.Text(consTail),
	IntHead:   frag.Text(`((\x.\y.`),
	IntTail:   frag.Text(`)(\x.\y.(y(\x.\a.x)x))(\x.\y.(y(\x.\a.a)x)))`),
	BitOpen:   frag.Text("("),
	BitClose:  frag.Text(")"),
	Bit0:      frag.Text("x"),
	Bit1:      frag.Text("y"),
	IntNil:    frag.Text(nilTerm),
}

// tags are the instruction, comparison and I/O selectors of the VM.
var tags = &church.Tags{
	IO:     frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.x)`),
	JmpCmp: frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.y)`),
	Cmp:    frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.z)`),
	Jmp:    frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.a)`),
	Load:   frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.b)`),
	Store:  frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.c)`),
	AddSub: frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.d)`),
	Mov:    frag.Text(`(\x.\y.\z.\a.\b.\c.\d.\e.e)`),
	Conds: [ir.NumConds]frag.Frag{
		ir.CondEq: frag.Text(`(\x.(x(\y.\z.y)(\y.\z.z)(\y.\z.z)))`),
		ir.CondLt: frag.Text(`(\x.(x(\y.\z.z)(\y.\z.y)(\y.\z.z)))`),
		ir.CondGt: frag.Text(`(\x.(x(\y.\z.z)(\y.\z.z)(\y.\z.y)))`),
		ir.CondNe: frag.Text(`(\x.(x(\y.\z.z)(\y.\z.y)(\y.\z.y)))`),
		ir.CondGe: frag.Text(`(\x.(x(\y.\z.y)(\y.\z.z)(\y.\z.y)))`),
		ir.CondLe: frag.Text(`(\x.(x(\y.\z.y)(\y.\z.y)(\y.\z.z)))`),
	},
	Getc:        frag.Text(`(\x.\y.\z.x)`),
	Putc:        frag.Text(`(\x.\y.\z.y)`),
	Exit:        frag.Text(`(\x.\y.\z.z)`),
	Placeholder: frag.Text(`(\x.x)`),
}

// Generate emits mod as a complete lambda term.
func Generate(mod *ir.Module) frag.Frag {
	enc := &church.Encoder{Syntax: syntax, Tags: tags}
	return frag.Cat(
		frag.Text("("),
		frag.Text(vm),
		frag.Text(eight),
		frag.Text(sixteen),
		syntax.Data(mod.Data),
		syntax.Text(mod.Text, enc),
		frag.Text(")"),
	)
}
