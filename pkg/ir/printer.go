package ir

import (
	"fmt"
	"io"
)

// Printer outputs a Module in a readable assembly-like form.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new IR printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintModule outputs the data section followed by the text section, one
// chunk per pc.
func (p *Printer) PrintModule(m *Module) {
	fmt.Fprintf(p.w, ".data\n")
	for addr, v := range m.Data {
		fmt.Fprintf(p.w, "\t%d\t# %d\n", v, addr)
	}
	fmt.Fprintf(p.w, ".text\n")
	for _, chunk := range Chunks(m.Text) {
		fmt.Fprintf(p.w, "pc%d:\n", chunk[0].PC)
		for _, inst := range chunk {
			fmt.Fprintf(p.w, "\t%s\n", inst)
		}
	}
}
