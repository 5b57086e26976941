// Package blc emits programs in binary lambda calculus: a string over {0,1}
// where 00 is an abstraction, 01 an application and 1^n0 the variable with
// de Bruijn index n. The output applies the bundled interpreter to two
// numerals, the data list and the text list.
package blc

import (
	"github.com/raymyers/ralph-elc/pkg/church"
	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
)

const (
	apply   = "01"
	eight   = "0000011100111001110011100111001110011100111010"
	sixteen = "010001011010100000011100111010"

	trueTerm = "0000110"
	nilTerm  = "000010"
)

var syntax = &church.Syntax{
	True: frag.Text(trueTerm),
	Nil:  frag.Text(nilTerm),
	Regs: [ir.NumRegs]frag.Frag{
		ir.A:  frag.Text("00010110000010000101100000110000010"),
		ir.B:  frag.Text("00010110000011000010110000011000010110000010000010"),
		ir.C:  frag.Text("00010110000011000010110000011000010110000011000010110000010000010"),
		ir.D:  frag.Text("0001011000001100001011000001000010110000010000010"),
		ir.BP: frag.Text("01010100011010000001110011101000000101100000110110000010"),
		ir.SP: frag.Text("00010110000011000010110000010000101100000110000010"),
	},
	// (lambda (f) (f x y)) and (lambda (f) (f x1 x2 x3 x4))
	PairHead: frag.Text("00010110"),
	QuadHead: frag.Text("000101010110"),
	// ((lambda (cons-t cons-nil) (F23 (... (F0 nil)))) cons-t cons-nil)
	IntHead: frag.Text("01000100"),
	IntTail: frag.Text("000010000001011000001011000000101100000110110"),
	BitOpen: frag.Text(apply),
	Bit0:    frag.Text("110"),
	Bit1:    frag.Text("10"),
}

var tags = &church.Tags{
	Mov:    frag.Text("000000000000000010"),
	AddSub: frag.Text("0000000000000000110"),
	Store:  frag.Text("00000000000000001110"),
	Load:   frag.Text("000000000000000011110"),
	Jmp:    frag.Text("0000000000000000111110"),
	Cmp:    frag.Text("00000000000000001111110"),
	JmpCmp: frag.Text("000000000000000011111110"),
	IO:     frag.Text("0000000000000000111111110"),
	Conds: [ir.NumConds]frag.Frag{
		ir.CondGt: frag.Text("00010101100000100000100000110"),
		ir.CondLt: frag.Text("00010101100000100000110000010"),
		ir.CondEq: frag.Text("00010101100000110000010000010"),
		ir.CondLe: frag.Text("000101011000001100000110000010"),
		ir.CondGe: frag.Text("000101011000001100000100000110"),
		ir.CondNe: frag.Text("000101011000001000001100000110"),
	},
	Getc:        frag.Text("0000001110"),
	Putc:        frag.Text("000000110"),
	Exit:        frag.Text("00000010"),
	Placeholder: frag.Text("10"),
}

// Generate emits mod as a closed BLC term.
func Generate(mod *ir.Module) frag.Frag {
	return generate(mod, vm)
}

// GenerateW emits mod for the w target: the same program applied to the
// wvm interpreter.
func GenerateW(mod *ir.Module) frag.Frag {
	return generate(mod, wvm)
}

func generate(mod *ir.Module, interp string) frag.Frag {
	enc := &church.Encoder{Syntax: syntax, Tags: tags}
	return frag.Cat(
		frag.Repeat(4, frag.Text(apply)),
		frag.Text(interp),
		frag.Text(eight),
		frag.Text(sixteen),
		syntax.Data(mod.Data),
		syntax.Text(mod.Text, enc),
	)
}
