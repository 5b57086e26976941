// Package frag provides the output fragment type shared by every back end.
// A Frag is an immutable rope: back ends compose fragments with Cat and
// Repeat while encoding, and the driver writes the finished program once.
package frag

import (
	"bufio"
	"io"
	"strings"
)

// Frag is a program fragment. The zero value is the empty fragment.
type Frag struct {
	text  string
	parts []Frag
	count int // repetitions of parts; unused for leaves
}

// Text returns a leaf fragment holding s.
func Text(s string) Frag {
	return Frag{text: s}
}

// Cat concatenates fragments in order.
func Cat(parts ...Frag) Frag {
	switch len(parts) {
	case 0:
		return Frag{}
	case 1:
		return parts[0]
	}
	return Frag{parts: parts, count: 1}
}

// Repeat returns f repeated n times. n <= 0 yields the empty fragment.
func Repeat(n int, f Frag) Frag {
	if n <= 0 {
		return Frag{}
	}
	if n == 1 {
		return f
	}
	if f.parts == nil {
		return Text(strings.Repeat(f.text, n))
	}
	return Frag{parts: []Frag{f}, count: n}
}

// Join concatenates fragments with sep between consecutive elements.
func Join(parts []Frag, sep Frag) Frag {
	if len(parts) == 0 {
		return Frag{}
	}
	out := make([]Frag, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return Cat(out...)
}

// Len returns the length of the fragment in bytes.
func (f Frag) Len() int {
	if f.parts == nil {
		return len(f.text)
	}
	n := 0
	for _, p := range f.parts {
		n += p.Len()
	}
	return n * f.count
}

// IsEmpty reports whether the fragment produces no output.
func (f Frag) IsEmpty() bool {
	return f.Len() == 0
}

// String flattens the fragment.
func (f Frag) String() string {
	var sb strings.Builder
	sb.Grow(f.Len())
	f.write(&sb)
	return sb.String()
}

// WriteTo writes the fragment to w. It implements io.WriterTo.
func (f Frag) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countWriter{w: bw}
	f.write(cw)
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, cw.err
}

func (f Frag) write(w io.StringWriter) {
	if f.parts == nil {
		if f.text != "" {
			w.WriteString(f.text)
		}
		return
	}
	for i := 0; i < f.count; i++ {
		for _, p := range f.parts {
			p.write(w)
		}
	}
}

type countWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countWriter) WriteString(s string) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	c.err = err
	return n, err
}
