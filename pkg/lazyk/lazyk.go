// Package lazyk emits Lazy K programs as combinator terms in Unlambda
// notation. The lambda-calculus rendering of the program is wrapped to
// speak Lazy K's numeral I/O and translated to S/K/I by bracket
// abstraction.
package lazyk

import (
	"fmt"
	"strings"

	"github.com/raymyers/ralph-elc/pkg/frag"
	"github.com/raymyers/ralph-elc/pkg/ir"
	"github.com/raymyers/ralph-elc/pkg/lam"
	"github.com/raymyers/ralph-elc/pkg/lambda"
)

// Generate emits mod as a single combinator expression.
func Generate(mod *ir.Module) (frag.Frag, error) {
	term, err := lambda.ParseText(lam.Generate(mod).String())
	if err != nil {
		return frag.Frag{}, fmt.Errorf("lazyk: parsing lambda form: %w", err)
	}
	c, err := lambda.ToSKI(adaptIO(term))
	if err != nil {
		return frag.Frag{}, fmt.Errorf("lazyk: %w", err)
	}
	var sb strings.Builder
	if err := lambda.WriteUnlambda(&sb, c); err != nil {
		return frag.Frag{}, fmt.Errorf("lazyk: %w", err)
	}
	return frag.Text(sb.String()), nil
}
