package qftasm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/raymyers/ralph-elc/pkg/ir"
)

// result runs a single line followed by a no-op, so its write lands, and
// returns address 20.
func result(src string) uint16 {
	prog, err := Parse("0. " + src + "\n1. MNZ 0 0 0;")
	Expect(err).NotTo(HaveOccurred())
	m := NewMachine(prog)
	Expect(m.Run(10)).To(Succeed())
	return m.RAM[20]
}

var _ = Describe("Machine", func() {
	Context("Opcodes", func() {
		It("should move on nonzero", func() {
			Expect(result("MNZ 1 7 20;")).To(Equal(uint16(7)))
			Expect(result("MNZ 0 7 20;")).To(Equal(uint16(0)))
		})

		It("should move on negative", func() {
			Expect(result("MLZ 32768 7 20;")).To(Equal(uint16(7)))
			Expect(result("MLZ 32767 7 20;")).To(Equal(uint16(0)))
		})

		It("should wrap arithmetic to 16 bits", func() {
			Expect(result("ADD 65535 2 20;")).To(Equal(uint16(1)))
			Expect(result("SUB 1 2 20;")).To(Equal(uint16(65535)))
		})

		It("should compute bitwise operations", func() {
			Expect(result("AND 12 10 20;")).To(Equal(uint16(8)))
			Expect(result("OR 12 10 20;")).To(Equal(uint16(14)))
			Expect(result("XOR 12 10 20;")).To(Equal(uint16(6)))
			Expect(result("ANT 15 6 20;")).To(Equal(uint16(9)))
		})

		It("should shift", func() {
			Expect(result("SL 1 4 20;")).To(Equal(uint16(16)))
			Expect(result("SRL 256 4 20;")).To(Equal(uint16(16)))
			Expect(result("SRU 0 9 20;")).To(Equal(uint16(4)))
			Expect(result("SRE 0 768 20;")).To(Equal(uint16(3)))
			Expect(result("SRA 255 2 20;")).To(Equal(uint16(128 ^ 31)))
		})
	})

	Context("Operand modes", func() {
		var m *Machine

		run := func(src string) {
			prog, err := Parse("0. " + src + "\n1. MNZ 0 0 0;")
			Expect(err).NotTo(HaveOccurred())
			m = NewMachine(prog)
			m.RAM[30], m.RAM[40], m.RAM[50] = 40, 50, 60
			Expect(m.Run(10)).To(Succeed())
		}

		It("should dereference sources", func() {
			run("MNZ 1 A30 20;")
			Expect(m.RAM[20]).To(Equal(uint16(40)))
			run("MNZ 1 B30 20;")
			Expect(m.RAM[20]).To(Equal(uint16(50)))
			run("MNZ 1 C30 20;")
			Expect(m.RAM[20]).To(Equal(uint16(60)))
		})

		It("should dereference destinations", func() {
			run("MNZ 1 7 A30;")
			Expect(m.RAM[40]).To(Equal(uint16(7)))
			Expect(m.RAM[30]).To(Equal(uint16(40)))
		})
	})

	Context("Timing", func() {
		It("should make a write visible to the next line", func() {
			prog, err := Parse("0. MNZ 1 7 20;\n1. MNZ 1 A20 21;\n2. MNZ 0 0 0;")
			Expect(err).NotTo(HaveOccurred())
			m := NewMachine(prog)
			Expect(m.Run(10)).To(Succeed())
			Expect(m.RAM[21]).To(Equal(uint16(7)))
		})

		It("should run one line after a jump and land past the target", func() {
			prog, err := Parse(`0. MNZ 1 3 0;
1. MNZ 1 1 20; delay slot
2. MNZ 1 1 21;
3. MNZ 1 1 22;
4. MNZ 1 1 23;
5. MNZ 0 0 0;`)
			Expect(err).NotTo(HaveOccurred())
			m := NewMachine(prog)
			Expect(m.Run(10)).To(Succeed())
			Expect(m.RAM[20:24]).To(Equal([]uint16{1, 0, 0, 1}))
			Expect(m.Steps).To(Equal(4))
		})

		It("should stop at the step limit", func() {
			prog, err := Parse("0. MNZ 1 0 0;\n1. MNZ 1 0 0;")
			Expect(err).NotTo(HaveOccurred())
			m := NewMachine(prog)
			Expect(m.Run(100)).To(MatchError(ir.ErrStepLimit))
			Expect(m.Steps).To(Equal(100))
		})
	})

	Context("I/O buffers", func() {
		It("should pack input two bytes per word", func() {
			m := NewMachine(nil)
			m.SetInput([]byte("abc"))
			Expect(m.RAM[StdinBuffer]).To(Equal(uint16('a' | 'b'<<8)))
			Expect(m.RAM[StdinBuffer+1]).To(Equal(uint16('c')))
		})

		It("should read output down from the buffer start", func() {
			m := NewMachine(nil)
			m.RAM[StdoutBuffer], m.RAM[StdoutBuffer-1] = 'o', 'k'
			m.RAM[Stdout] = StdoutBuffer - 2
			Expect(string(m.Output())).To(Equal("ok"))
		})
	})

	Context("Parse", func() {
		It("should keep comments and skip blank lines", func() {
			prog, err := Parse("0. ADD A3 B4 C5; sum pc == 2:\n\n1. SUB 1 -1 2;")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog).To(HaveLen(2))
			Expect(prog[0]).To(Equal(Line{
				Op: ADD, A: Operand{Mode: 1, Value: 3}, B: Operand{Mode: 2, Value: 4}, C: Operand{Mode: 3, Value: 5},
				Comment: "sum pc == 2:",
			}))
			Expect(prog[1].B).To(Equal(Operand{Value: -1}))
		})

		It("should read jump placeholders", func() {
			prog, err := Parse("0. MNZ 32768 {pc12} 0; JMP (imm)")
			Expect(err).NotTo(HaveOccurred())
			Expect(prog[0].B).To(Equal(Operand{Value: 12, Label: true}))
		})

		It("should reject malformed lines", func() {
			for _, src := range []string{
				"0. FOO 1 2 3;",
				"0. MNZ 1 2;",
				"MNZ 1 2 3;",
				"0. MNZ 1 D2 3;",
				"0. MNZ 1 {pcx} 3;",
			} {
				_, err := Parse(src)
				Expect(err).To(MatchError(ErrSyntax), src)
			}
		})

		It("should refuse to run unresolved placeholders", func() {
			prog, err := Parse("0. MNZ 32768 {pc0} 0;")
			Expect(err).NotTo(HaveOccurred())
			Expect(NewMachine(prog).Run(10)).To(MatchError(ErrUnresolved))
		})
	})
})
