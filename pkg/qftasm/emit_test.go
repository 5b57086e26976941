package qftasm

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/raymyers/ralph-elc/pkg/ir"
)

func load(name string) *ir.Module {
	mod, err := ir.Load("../../testdata/" + name + ".yaml")
	Expect(err).NotTo(HaveOccurred())
	return mod
}

func generate(mod *ir.Module, opts Options) string {
	out, err := Generate(mod, opts)
	Expect(err).NotTo(HaveOccurred())
	return out.String()
}

// simulate assembles mod, parses the text back and runs it on input.
func simulate(mod *ir.Module, opts Options, input string) *Machine {
	prog, err := Parse(generate(mod, opts))
	Expect(err).NotTo(HaveOccurred())
	m := NewMachine(prog)
	m.SetInput([]byte(input))
	Expect(m.Run(100000)).To(Succeed())
	return m
}

func reference(mod *ir.Module, input string) (*ir.Machine, string) {
	var out bytes.Buffer
	im, err := ir.Run(mod, strings.NewReader(input), &out, 100000)
	Expect(err).NotTo(HaveOccurred())
	return im, out.String()
}

var _ = Describe("Narrow", func() {
	It("should reinterpret 24-bit words as 16-bit words", func() {
		for _, c := range []struct{ in, want int }{
			{0, 0},
			{5, 5},
			{-1, 65535},
			{-32768, 32768},
			{1<<24 - 1, 65535},
			{1<<24 - 2, 65534},
			{1 << 23, 0},
			{70000, 70000 - 65536},
			{-65536, 0},
		} {
			Expect(Narrow(c.in)).To(Equal(c.want), "Narrow(%d)", c.in)
		}
	})
})

var _ = Describe("Generate", func() {
	It("should emit the register prologue, memory table and exit", func() {
		data := make([]int, 22)
		data[20], data[21] = 5, -1
		Expect(generate(&ir.Module{Data: data}, Options{})).To(Equal(strings.Join([]string{
			"0. MNZ 32768 2620 1; Register initialization (stdin buffer pointer)",
			"1. MNZ 32768 1846 2; Register initialization (stdout buffer pointer)",
			"2. MNZ 32768 5 4116; Memory table",
			"3. MNZ 32768 65535 4117;",
			"4. MNZ 32768 65534 0; EXIT",
			"5. MNZ 0 0 0;",
		}, "\n")))
	})

	It("should mark chunks and pad after jumps", func() {
		lines := strings.Split(generate(load("echo"), Options{}), "\n")
		Expect(lines).To(HaveLen(29))
		Expect(lines[1]).To(HaveSuffix("(stdout buffer pointer) pc == 0:"))
		Expect(lines[18]).To(Equal("18. MNZ A9 24 0; (imm)"))
		Expect(lines[19]).To(Equal("19. MNZ 0 0 0; pc == 1:"))
		Expect(lines[23]).To(Equal("23. MNZ 32768 1 0; JMP (imm)"))
		Expect(lines[24]).To(Equal("24. MNZ 0 0 0; pc == 2:"))
	})

	It("should keep placeholders in raw mode", func() {
		out := generate(load("echo"), Options{Raw: true})
		Expect(out).To(ContainSubstring("18. MNZ A9 {pc2} 0; (imm)"))
		Expect(out).To(ContainSubstring("23. MNZ 32768 {pc0} 0; JMP (imm)"))
	})

	It("should reject jumps to undefined pcs unless raw", func() {
		mod := &ir.Module{Text: []ir.Inst{{Op: ir.JMP, Jmp: ir.Imm(5)}}}
		_, err := Generate(mod, Options{})
		Expect(err).To(MatchError(ErrUnknownTarget))
		Expect(generate(mod, Options{Raw: true})).To(ContainSubstring("{pc5}"))
	})

	It("should emit nothing for dump", func() {
		mod := &ir.Module{Text: []ir.Inst{{Op: ir.DUMP}}}
		Expect(strings.Split(generate(mod, Options{}), "\n")).To(HaveLen(4))
	})

	It("should narrow every immediate", func() {
		Expect(generate(load("all_ops"), Options{})).NotTo(MatchRegexp(`\d{6}`))
	})
})

var _ = Describe("Programs", func() {
	It("should print H and a newline", func() {
		mod := load("hello")
		m := simulate(mod, Options{}, "")
		_, want := reference(mod, "")
		Expect(string(m.Output())).To(Equal("H\n"))
		Expect(string(m.Output())).To(Equal(want))
	})

	for _, input := range []string{"", "a", "ok", "hi there\n"} {
		It(fmt.Sprintf("should echo %q", input), func() {
			mod := load("echo")
			m := simulate(mod, Options{}, input)
			_, want := reference(mod, input)
			Expect(string(m.Output())).To(Equal(want))
			Expect(string(m.Output())).To(Equal(input))
		})
	}

	Context("Peephole", func() {
		It("should leave the register file as the unoptimized program does", func() {
			mod := load("peephole")
			im, _ := reference(mod, "")
			opt := simulate(mod, Options{}, "")
			plain := simulate(mod, Options{NoPeephole: true}, "")
			for r := range ir.NumRegs {
				Expect(opt.RAM[RegA+r]).To(Equal(uint16(im.Regs[r])), "register %s", ir.Reg(r))
				Expect(plain.RAM[RegA+r]).To(Equal(uint16(im.Regs[r])), "register %s", ir.Reg(r))
			}
			for a := 90; a < 99; a++ {
				Expect(opt.RAM[MemOffset+a]).To(Equal(uint16(im.Mem[a])), "address %d", a)
				Expect(plain.RAM[MemOffset+a]).To(Equal(uint16(im.Mem[a])), "address %d", a)
			}
		})

		It("should fold the matching windows only", func() {
			out := generate(load("peephole"), Options{})
			Expect(strings.Count(out, "MOV-ADD")).To(Equal(2))
			Expect(strings.Count(out, "LOAD-MOV-LOAD (triplet)")).To(Equal(1))
			Expect(strings.Count(out, "LOAD-MOV-LOAD\n")).To(Equal(1))
			Expect(generate(load("peephole"), Options{NoPeephole: true})).NotTo(ContainSubstring("MOV-"))
		})
	})

	Context("Jump table", func() {
		It("should land on the chunk a register names", func() {
			mod := &ir.Module{Text: []ir.Inst{
				{PC: 0, Op: ir.MOV, Dst: ir.R(ir.A), Src: ir.Imm(2)},
				{PC: 0, Op: ir.JMP, Jmp: ir.R(ir.A)},
				{PC: 1, Op: ir.PUTC, Src: ir.Imm('x')},
				{PC: 1, Op: ir.EXIT},
				{PC: 2, Op: ir.PUTC, Src: ir.Imm('y')},
				{PC: 2, Op: ir.EXIT},
			}}
			_, want := reference(mod, "")
			Expect(want).To(Equal("y"))
			Expect(string(simulate(mod, Options{}, "").Output())).To(Equal(want))
		})

		It("should call and return through registers", func() {
			mod := load("jump_table")
			_, want := reference(mod, "")
			Expect(want).To(Equal("y\n"))
			Expect(string(simulate(mod, Options{}, "").Output())).To(Equal(want))
			Expect(string(simulate(mod, Options{NoPeephole: true}, "").Output())).To(Equal(want))
		})

		It("should list every chunk in the prologue", func() {
			out := generate(load("jump_table"), Options{Raw: true})
			Expect(out).To(ContainSubstring("MNZ 32768 {pc0} 11; Jump table"))
			for pc := 1; pc <= 6; pc++ {
				Expect(out).To(ContainSubstring(fmt.Sprintf("MNZ 32768 {pc%d} %d;", pc, JumpTable+pc)))
			}
		})

		It("should hold the resolved lines", func() {
			mod := load("jump_table")
			lines, err := Assemble(mod, Options{})
			Expect(err).NotTo(HaveOccurred())
			m := simulate(mod, Options{}, "")
			for i, l := range lines {
				for _, pc := range l.Marks {
					Expect(m.RAM[JumpTable+pc]).To(Equal(uint16(i)), "pc %d", pc)
				}
			}
		})

		It("should be left out without register jumps", func() {
			Expect(generate(load("echo"), Options{})).NotTo(ContainSubstring("Jump table"))
		})

		It("should reject pcs it cannot hold", func() {
			mod := &ir.Module{Text: []ir.Inst{
				{PC: 0, Op: ir.JMP, Jmp: ir.R(ir.A)},
				{PC: StdinBuffer, Op: ir.EXIT},
			}}
			_, err := Generate(mod, Options{})
			Expect(err).To(MatchError(ErrJumpTableRange))
		})
	})

	Context("Memory", func() {
		It("should keep low addresses apart from registers", func() {
			mod := load("low_memory")
			_, want := reference(mod, "")
			Expect(want).To(Equal("z0A7\n"))
			Expect(string(simulate(mod, Options{}, "").Output())).To(Equal(want))
			Expect(string(simulate(mod, Options{NoPeephole: true}, "").Output())).To(Equal(want))
		})

		It("should not run the memory table as code", func() {
			mod := &ir.Module{
				Data: []int{1},
				Text: []ir.Inst{
					{Op: ir.LOAD, Dst: ir.R(ir.A), Src: ir.Imm(0)},
					{Op: ir.ADD, Dst: ir.R(ir.A), Src: ir.Imm('0')},
					{Op: ir.PUTC, Src: ir.R(ir.A)},
					{Op: ir.EXIT},
				},
			}
			Expect(string(simulate(mod, Options{}, "").Output())).To(Equal("1"))
		})

		It("should offset every address", func() {
			m := simulate(load("countdown"), Options{}, "")
			Expect(m.RAM[MemOffset+16]).To(Equal(uint16(0)))
			Expect(m.RAM[16]).To(Equal(uint16(0)))
			Expect(string(m.Output())).To(Equal("54321\n"))
		})
	})

	Context("Comparisons", func() {
		values := []int{0, 1, 7, 100}
		forms := []struct {
			name string
			src  func(y int) ir.Value
		}{
			{"register", func(int) ir.Value { return ir.R(ir.B) }},
			{"immediate", ir.Imm},
		}

		for _, f := range forms {
			form, src := f.name, f.src
			for cc := ir.CondEq; cc <= ir.CondGe; cc++ {
				It("should set "+cc.String()+" with a "+form+" source", func() {
					for _, x := range values {
						for _, y := range values {
							mod := &ir.Module{Text: []ir.Inst{
								{Op: ir.MOV, Dst: ir.R(ir.A), Src: ir.Imm(x)},
								{Op: ir.MOV, Dst: ir.R(ir.B), Src: ir.Imm(y)},
								{Op: ir.EQ + ir.Op(cc), Dst: ir.R(ir.A), Src: src(y)},
								{Op: ir.EXIT},
							}}
							m := simulate(mod, Options{}, "")
							want := uint16(0)
							if cc.Holds(x, y) {
								want = 1
							}
							Expect(m.RAM[RegA]).To(Equal(want), "%d %s %d", x, cc, y)
						}
					}
				})

				It("should branch on "+cc.String()+" with a "+form+" source", func() {
					for _, x := range values {
						for _, y := range values {
							mod := &ir.Module{Text: []ir.Inst{
								{PC: 0, Op: ir.MOV, Dst: ir.R(ir.A), Src: ir.Imm(x)},
								{PC: 0, Op: ir.MOV, Dst: ir.R(ir.B), Src: ir.Imm(y)},
								{PC: 0, Op: ir.MOV, Dst: ir.R(ir.C), Src: ir.Imm(1)},
								{PC: 0, Op: ir.JEQ + ir.Op(cc), Dst: ir.R(ir.A), Src: src(y), Jmp: ir.Imm(2)},
								{PC: 1, Op: ir.MOV, Dst: ir.R(ir.C), Src: ir.Imm(0)},
								{PC: 1, Op: ir.EXIT},
								{PC: 2, Op: ir.EXIT},
							}}
							im, _ := reference(mod, "")
							m := simulate(mod, Options{}, "")
							Expect(m.RAM[RegA+int(ir.C)]).To(Equal(uint16(im.Regs[ir.C])), "%d %s %d", x, cc, y)
						}
					}
				})
			}
		}
	})
})
