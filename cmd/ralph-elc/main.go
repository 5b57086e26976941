package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/raymyers/ralph-elc/pkg/backend"
	"github.com/raymyers/ralph-elc/pkg/ir"
	"github.com/raymyers/ralph-elc/pkg/qftasm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tebeka/atexit"
)

var version = "0.1.0"

// Compile flags
var (
	target      string
	outFile     string
	preludeFile string
	qftasmRaw   bool
	qftasmNoOpt bool
	dIR         bool
	verbose     bool
)

// maxSteps bounds interp and qfsim; zero means no limit.
var maxSteps int

func main() {
	atexit.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// singleDashFlags may be given with one dash, as in -dir.
var singleDashFlags = []string{"dir"}

// normalizeFlags rewrites single-dash long flags to their double-dash form.
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = arg
		for _, name := range singleDashFlags {
			if arg == "-"+name {
				result[i] = "--" + name
				break
			}
		}
	}
	return result
}

// dashFlagNames makes qftasm_raw and qftasm-raw the same flag.
func dashFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ralph-elc [file]",
		Short: "ralph-elc compiles ELVM IR modules to esoteric targets",
		Long: `ralph-elc reads an ELVM IR module in YAML form and emits it as a
lambda calculus, binary lambda calculus, Universal Lambda, Lazy K, Grass
or QFTASM program. With no file the module is read from stdin.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mod, err := loadModule(args, cmd.InOrStdin(), errOut)
			if err != nil {
				return err
			}
			if dIR {
				ir.NewPrinter(out).PrintModule(mod)
				return nil
			}
			return doCompile(mod, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetGlobalNormalizationFunc(dashFlagNames)

	rootCmd.Flags().StringVarP(&target, "target", "t", "lam", "Output target (see 'ralph-elc targets')")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.Flags().StringVar(&preludeFile, "prelude", "", "Runtime prelude for the ulamb and grass targets")
	rootCmd.Flags().BoolVar(&qftasmRaw, "qftasm-raw", false, "Keep {pcN} jump placeholders in QFTASM output")
	rootCmd.Flags().BoolVar(&qftasmNoOpt, "qftasm-no-opt", false, "Disable the QFTASM peephole optimizer")
	rootCmd.Flags().BoolVar(&dIR, "dir", false, "Dump the IR module instead of compiling")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log compilation details to stderr")

	rootCmd.AddCommand(newTargetsCmd(out), newInterpCmd(out, errOut), newQfsimCmd(out, errOut))
	return rootCmd
}

func newTargetsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List output targets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range backend.Targets {
				desc := t.Description
				if t.Prelude {
					desc += " (needs --prelude)"
				}
				fmt.Fprintf(out, "%-8s %s\n", t.Name, desc)
			}
		},
	}
}

func newInterpCmd(out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interp file",
		Short: "Run an IR module with the reference interpreter, feeding it stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mod, err := ir.Load(args[0])
			if err != nil {
				return fail(errOut, err)
			}
			m, err := ir.Run(mod, cmd.InOrStdin(), out, maxSteps)
			if err != nil {
				return fail(errOut, fmt.Errorf("interp: %w", err))
			}
			newLogger(errOut).Debug("interp done", "steps", m.Steps, "exited", m.Exited)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop after this many instructions (0 for no limit)")
	return cmd
}

func newQfsimCmd(out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qfsim file",
		Short: "Run QFTASM output, feeding it stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fail(errOut, fmt.Errorf("error reading %s: %w", args[0], err))
			}
			prog, err := qftasm.Parse(string(src))
			if err != nil {
				return fail(errOut, err)
			}
			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fail(errOut, err)
			}
			m := qftasm.NewMachine(prog)
			m.SetInput(input)
			if err := m.Run(maxSteps); err != nil {
				return fail(errOut, fmt.Errorf("qfsim: %w", err))
			}
			newLogger(errOut).Debug("qfsim done", "lines", len(prog), "steps", m.Steps)
			_, err = out.Write(m.Output())
			return err
		},
	}
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop after this many steps (0 for no limit)")
	return cmd
}

// fail reports err the way every command does and returns it.
func fail(errOut io.Writer, err error) error {
	fmt.Fprintf(errOut, "ralph-elc: %v\n", err)
	return err
}

func newLogger(errOut io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadModule reads the module named by args, or stdin when there is none.
func loadModule(args []string, stdin io.Reader, errOut io.Writer) (*ir.Module, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fail(errOut, err)
		}
		mod, err := ir.ParseYAML(src)
		if err != nil {
			return nil, fail(errOut, fmt.Errorf("<stdin>: %w", err))
		}
		return mod, nil
	}
	mod, err := ir.Load(args[0])
	if err != nil {
		return nil, fail(errOut, err)
	}
	return mod, nil
}

func backendOptions() (backend.Options, error) {
	opts := backend.Options{
		QFTASM: qftasm.Options{Raw: qftasmRaw, NoPeephole: qftasmNoOpt},
	}
	if preludeFile != "" {
		prelude, err := os.ReadFile(preludeFile)
		if err != nil {
			return opts, fmt.Errorf("error reading prelude: %w", err)
		}
		opts.Prelude = prelude
	}
	return opts, nil
}

func doCompile(mod *ir.Module, out, errOut io.Writer) error {
	opts, err := backendOptions()
	if err != nil {
		return fail(errOut, err)
	}
	be, err := backend.New(target, opts)
	if err != nil {
		return fail(errOut, err)
	}
	logger := newLogger(errOut)
	compile := func(w io.Writer) error {
		return backend.Compile(w, be, mod, logger)
	}
	if outFile != "" {
		err = writeFile(outFile, compile)
	} else {
		err = compile(out)
	}
	if err != nil {
		return fail(errOut, err)
	}
	return nil
}

// ErrNoOutput is returned when the output path names a directory.
var ErrNoOutput = errors.New("output path is a directory")

// writeFile writes path through a temporary file in the same directory and
// renames it into place once write succeeds. The temporary file is removed
// on failure and, through atexit, if the process exits first.
func writeFile(path string, write func(io.Writer) error) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNoOutput, path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	atexit.Register(func() { os.Remove(name) })

	err = write(tmp)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
