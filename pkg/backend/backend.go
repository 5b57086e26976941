// Package backend selects a code generator by name and runs it on a module.
package backend

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/raymyers/ralph-elc/pkg/blc"
	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/grass"
	"github.com/raymyers/ralph-elc/pkg/ir"
	"github.com/raymyers/ralph-elc/pkg/lam"
	"github.com/raymyers/ralph-elc/pkg/lazyk"
	"github.com/raymyers/ralph-elc/pkg/qftasm"
	"github.com/raymyers/ralph-elc/pkg/ulamb"
)

var (
	ErrUnknownTarget = errors.New("unknown target")
	ErrNoPrelude     = errors.New("target needs a prelude")
)

// Backend turns a module into a target program.
type Backend interface {
	Name() string
	Generate(mod *ir.Module) (frag.Frag, error)
}

// Options configure the targets that take any.
type Options struct {
	// Prelude is the runtime the ulamb and grass outputs are appended to.
	Prelude []byte
	QFTASM  qftasm.Options
}

// Target describes a registered code generator.
type Target struct {
	Name        string
	Description string
	Prelude     bool
	generate    func(mod *ir.Module, opts Options) (frag.Frag, error)
}

func infallible(gen func(*ir.Module) frag.Frag) func(*ir.Module, Options) (frag.Frag, error) {
	return func(mod *ir.Module, _ Options) (frag.Frag, error) {
		return gen(mod), nil
	}
}

// Targets lists every target in a fixed order.
var Targets = []Target{
	{
		Name:        "lam",
		Description: "lambda calculus text with the VM inlined",
		generate:    infallible(lam.Generate),
	},
	{
		Name:        "blc",
		Description: "binary lambda calculus bit string",
		generate:    infallible(blc.Generate),
	},
	{
		Name:        "w",
		Description: "binary lambda calculus bit string for the w interpreter",
		generate:    infallible(blc.GenerateW),
	},
	{
		Name:        "ulamb",
		Description: "Universal Lambda bit string after a runtime core",
		Prelude:     true,
		generate: func(mod *ir.Module, opts Options) (frag.Frag, error) {
			return ulamb.Generate(mod, string(opts.Prelude)), nil
		},
	},
	{
		Name:        "lazy",
		Description: "Lazy K program in Unlambda notation",
		generate: func(mod *ir.Module, _ Options) (frag.Frag, error) {
			return lazyk.Generate(mod)
		},
	},
	{
		Name:        "grass",
		Description: "Grass program after a runtime prelude",
		Prelude:     true,
		generate: func(mod *ir.Module, opts Options) (frag.Frag, error) {
			return grass.Generate(mod, string(opts.Prelude)), nil
		},
	},
	{
		Name:        "qftasm",
		Description: "QFTASM assembly for the Quest for Tetris computer",
		generate: func(mod *ir.Module, opts Options) (frag.Frag, error) {
			return qftasm.Generate(mod, opts.QFTASM)
		},
	},
}

type backend struct {
	target Target
	opts   Options
}

func (b *backend) Name() string { return b.target.Name }

func (b *backend) Generate(mod *ir.Module) (frag.Frag, error) {
	return b.target.generate(mod, b.opts)
}

// New returns the target called name.
func New(name string, opts Options) (Backend, error) {
	for _, t := range Targets {
		if t.Name != name {
			continue
		}
		if t.Prelude && len(opts.Prelude) == 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrNoPrelude)
		}
		return &backend{target: t, opts: opts}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTarget, name)
}

// Compile generates mod with be and writes the result to w. Nothing is
// written unless generation succeeds. An *ir.FatalError raised while
// encoding is returned as an error; any other panic propagates.
func Compile(w io.Writer, be Backend, mod *ir.Module, logger *slog.Logger) error {
	logger.Debug("compiling",
		"target", be.Name(),
		"data", len(mod.Data),
		"insts", len(mod.Text),
		"chunks", len(ir.Chunks(mod.Text)))
	out, err := generate(be, mod)
	if err != nil {
		return fmt.Errorf("%s: %w", be.Name(), err)
	}
	n, err := out.WriteTo(w)
	if err != nil {
		return err
	}
	logger.Debug("compiled", "target", be.Name(), "bytes", n)
	return nil
}

func generate(be Backend, mod *ir.Module) (out frag.Frag, err error) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*ir.FatalError)
			if !ok {
				panic(r)
			}
			err = fe
		}
	}()
	return be.Generate(mod)
}
