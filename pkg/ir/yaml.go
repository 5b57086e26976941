package ir

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlModule is the on-disk form of a Module:
//
//	data: [0, 72, -1]
//	text:
//	  - {pc: 0, op: mov, dst: A, src: 72}
//	  - {pc: 0, op: putc, src: A}
//	  - {pc: 1, op: jeq, dst: A, src: 0, jmp: 3}
type yamlModule struct {
	Data []int      `yaml:"data"`
	Text []yamlInst `yaml:"text"`
}

type yamlInst struct {
	PC  int        `yaml:"pc"`
	Op  string     `yaml:"op"`
	Dst *yamlValue `yaml:"dst"`
	Src *yamlValue `yaml:"src"`
	Jmp *yamlValue `yaml:"jmp"`
}

type yamlValue struct {
	v Value
}

func (y *yamlValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a register name or an integer", n.Line)
	}
	switch n.Tag {
	case "!!int":
		var imm int
		if err := n.Decode(&imm); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		y.v = Imm(imm)
	case "!!str":
		r, ok := ParseReg(strings.ToUpper(n.Value))
		if !ok {
			return fmt.Errorf("line %d: unknown register %q", n.Line, n.Value)
		}
		y.v = R(r)
	default:
		return fmt.Errorf("line %d: unsupported operand %q", n.Line, n.Value)
	}
	return nil
}

// ParseYAML decodes and validates a Module.
func ParseYAML(src []byte) (*Module, error) {
	var ym yamlModule
	if err := yaml.Unmarshal(src, &ym); err != nil {
		return nil, fmt.Errorf("parse module: %w", err)
	}
	mod := &Module{Data: ym.Data}
	for n, yi := range ym.Text {
		op, ok := ParseOp(strings.ToLower(yi.Op))
		if !ok {
			return nil, fmt.Errorf("text[%d]: unknown op %q", n, yi.Op)
		}
		inst := Inst{Op: op, PC: yi.PC}
		if yi.Dst != nil {
			inst.Dst = yi.Dst.v
		}
		if yi.Src != nil {
			inst.Src = yi.Src.v
		}
		if yi.Jmp != nil {
			inst.Jmp = yi.Jmp.v
		}
		mod.Text = append(mod.Text, inst)
	}
	if err := mod.Validate(); err != nil {
		return nil, err
	}
	return mod, nil
}

// Load reads a Module from a YAML file.
func Load(path string) (*Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mod, err := ParseYAML(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mod, nil
}
