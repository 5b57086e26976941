package ulamb

import (
	"strings"
	"testing"

	"github.com/raymyers/ralph-elc/pkg/ir"
	"github.com/raymyers/ralph-elc/pkg/lambda"
)

// identity stands in for the core interpreter so the output decodes as a
// single closed term.
const identity = "0010"

func TestGenerateDecodes(t *testing.T) {
	for _, name := range []string{"hello", "echo", "all_ops"} {
		t.Run(name, func(t *testing.T) {
			mod, err := ir.Load("../../testdata/" + name + ".yaml")
			if err != nil {
				t.Fatal(err)
			}
			out := Generate(mod, identity).String()
			if !strings.HasPrefix(out, header+identity) {
				t.Errorf("output should start with %q", header+identity)
			}
			_, rest, err := lambda.DecodeBLC(out)
			if err != nil {
				t.Fatalf("DecodeBLC: %v", err)
			}
			if rest != "" {
				t.Errorf("%d trailing bits", len(rest))
			}
		})
	}
}

func TestGenerateExit(t *testing.T) {
	mod := &ir.Module{Text: []ir.Inst{{Op: ir.EXIT}}}
	exit := "000101010110" + "0000000000000000001111111110" + trueTerm + trueTerm + "0000001110"
	want := header + identity +
		nilTerm + // data
		consHead + consHead + exit + nilTerm + nilTerm
	if got := Generate(mod, identity).String(); got != want {
		t.Errorf("Generate = %q\nwant      %q", got, want)
	}
}

func TestInt(t *testing.T) {
	got := syntax.Int(5).String()
	want := consHead + trueTerm + consHead + nilTerm + consHead + trueTerm +
		strings.Repeat(consHead+nilTerm, 21) + nilTerm
	if got != want {
		t.Errorf("Int(5) = %q, want %q", got, want)
	}
	if syntax.Int(-1).String() != syntax.Int(1<<24-1).String() {
		t.Error("Int(-1) != Int(2^24-1)")
	}
}

func TestEncoderLayouts(t *testing.T) {
	enc := encoder{syntax}
	a, b := syntax.Regs[ir.A].String(), syntax.Regs[ir.B].String()
	quad := "000101010110"

	tests := []struct {
		name string
		inst ir.Inst
		want string
	}{
		{"add", ir.Inst{Op: ir.ADD, Dst: ir.R(ir.A), Src: ir.R(ir.B)},
			quad + tagAdd.String() + nilTerm + b + a},
		{"sub", ir.Inst{Op: ir.SUB, Dst: ir.R(ir.A), Src: ir.R(ir.B)},
			quad + tagSub.String() + nilTerm + b + a},
		{"jcc", ir.Inst{Op: ir.JEQ, Dst: ir.R(ir.A), Src: ir.R(ir.B), Jmp: ir.R(ir.A)},
			quad + tagJumpCmp.String() + nilTerm + b + quad + conds[ir.CondEq].String() + a + nilTerm + a},
		{"jmp", ir.Inst{Op: ir.JMP, Jmp: ir.R(ir.B)},
			quad + tagJmp.String() + nilTerm + b + nilTerm},
		{"getc", ir.Inst{Op: ir.GETC, Dst: ir.R(ir.B)},
			quad + tagIO.String() + nilTerm + b + ioGetc.String()},
		{"dump", ir.Inst{Op: ir.DUMP},
			quad + tagMov.String() + nilTerm + a + a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ir.Visit(tt.inst, enc).String(); got != tt.want {
				t.Errorf("encode %s = %q, want %q", tt.inst, got, tt.want)
			}
		})
	}
}
