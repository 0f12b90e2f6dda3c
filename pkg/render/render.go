// Package render is a thin rendering layer on top of expr.Node's own
// String()/LaTeX() methods, adding the two display knobs spec.md marks
// as caller options rather than baked-in defaults: explicit plus-minus
// (printing "a + -b" instead of collapsing it to "a - b") and LaTeX
// color-by-change-group, which wraps a specific subtree in a
// \textcolor{...}{...} directive. Grounded in pkg/expr/print.go's flat
// per-kind type switch, reimplemented here so these two knobs can change
// behavior mid-traversal instead of being hardcoded into Node.String().
package render

import (
	"strings"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// config collects what the functional options below set.
type config struct {
	explicitPlusMinus bool
	groups            map[expr.Node]int
	palette           []string
}

var defaultPalette = []string{"red", "blue", "teal", "purple", "orange", "magenta"}

// Option configures a single ASCII or LaTeX render call.
type Option func(*config)

// WithExplicitPlusMinus renders "a + -b" instead of collapsing a
// UnaryMinus addend into "a - b", per spec.md §6's caller opt-out.
func WithExplicitPlusMinus() Option {
	return func(c *config) { c.explicitPlusMinus = true }
}

// WithColorGroup marks subtree for LaTeX color-coding under group: every
// LaTeX render of subtree (matched by identity, not structural equality —
// it must be the exact Node value from the tree being rendered) is
// wrapped in \textcolor{<palette[group]>}{...}. ASCII rendering ignores
// color groups entirely; there is no ASCII color convention.
func WithColorGroup(subtree expr.Node, group int) Option {
	return func(c *config) {
		if c.groups == nil {
			c.groups = make(map[expr.Node]int)
		}
		c.groups[subtree] = group
	}
}

// WithPalette overrides the default color names color groups cycle
// through (red, blue, teal, ...).
func WithPalette(colors ...string) Option {
	return func(c *config) { c.palette = colors }
}

func newConfig(opts []Option) *config {
	c := &config{palette: defaultPalette}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) colorOf(n expr.Node) (string, bool) {
	if c.groups == nil {
		return "", false
	}
	group, ok := c.groups[n]
	if !ok || len(c.palette) == 0 {
		return "", false
	}
	return c.palette[group%len(c.palette)], true
}

// ASCII renders n as plain-ASCII math, honoring WithExplicitPlusMinus.
// Color-group options have no effect on ASCII output.
func ASCII(n expr.Node, opts ...Option) string {
	return renderASCII(n, newConfig(opts), 0)
}

// LaTeX renders n as LaTeX math, honoring both WithExplicitPlusMinus and
// WithColorGroup.
func LaTeX(n expr.Node, opts ...Option) string {
	return renderLaTeX(n, newConfig(opts), 0)
}

// --- ASCII ---

func wrapASCII(n expr.Node, c *config, minPrec int) string {
	if op, ok := n.(*expr.Operator); ok && precedence(op.Op) < minPrec {
		return "(" + renderASCII(n, c, 0) + ")"
	}
	return renderASCII(n, c, 0)
}

func precedence(op expr.Op) int {
	switch op {
	case expr.OpAdd, expr.OpSub:
		return 1
	case expr.OpMul, expr.OpDiv:
		return 2
	case expr.OpPow:
		return 3
	default:
		return 0
	}
}

func renderASCII(n expr.Node, c *config, minPrec int) string {
	switch v := n.(type) {
	case *expr.Constant:
		return v.String()
	case *expr.Symbol:
		return v.String()
	case *expr.UnaryMinus:
		if c.explicitPlusMinus {
			return "-" + wrapASCII(v.Child, c, precedence(expr.OpAdd)+1)
		}
		switch child := v.Child.(type) {
		case *expr.Operator:
			return "-(" + renderASCII(child, c, 0) + ")"
		default:
			return "-" + renderASCII(child, c, 0)
		}
	case *expr.Parenthesis:
		return "(" + renderASCII(v.Content, c, 0) + ")"
	case *expr.Function:
		if v.Name == expr.FuncAbs {
			return "|" + renderASCII(v.Arg, c, 0) + "|"
		}
		return string(v.Name) + "(" + renderASCII(v.Arg, c, 0) + ")"
	case *expr.Operator:
		return renderOperatorASCII(v, c)
	default:
		return n.String()
	}
}

func renderOperatorASCII(o *expr.Operator, c *config) string {
	switch o.Op {
	case expr.OpAdd:
		return joinAddASCII(o.Children, c)
	case expr.OpMul:
		if o.Implicit && len(o.Children) == 2 {
			return wrapASCII(o.Children[0], c, precedence(expr.OpMul)) +
				implicitJoin(o.Children[0]) +
				wrapASCII(o.Children[1], c, precedence(expr.OpMul))
		}
		parts := make([]string, len(o.Children))
		for i, ch := range o.Children {
			parts[i] = wrapASCII(ch, c, precedence(expr.OpMul))
		}
		return strings.Join(parts, "·")
	case expr.OpDiv:
		if expr.IsConstantFraction(o) {
			return renderASCII(o.Children[0], c, 0) + "/" + renderASCII(o.Children[1], c, 0)
		}
		return wrapASCII(o.Children[0], c, precedence(expr.OpDiv)) + " / " + wrapASCII(o.Children[1], c, precedence(expr.OpDiv)+1)
	case expr.OpPow:
		base := wrapASCII(o.Children[0], c, precedence(expr.OpPow)+1)
		exp := renderASCII(o.Children[1], c, 0)
		if _, ok := o.Children[1].(*expr.Operator); ok {
			exp = "(" + exp + ")"
		}
		return base + "^" + exp
	default: // OpSub — transient, pre-flatten only
		return wrapASCII(o.Children[0], c, precedence(expr.OpAdd)) + " - " + wrapASCII(o.Children[1], c, precedence(expr.OpAdd)+1)
	}
}

func joinAddASCII(children []expr.Node, c *config) string {
	var b strings.Builder
	for i, ch := range children {
		if um, ok := ch.(*expr.UnaryMinus); ok && !c.explicitPlusMinus {
			if i > 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString("-")
			}
			b.WriteString(wrapASCII(um.Child, c, precedence(expr.OpAdd)+1))
			continue
		}
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(wrapASCII(ch, c, precedence(expr.OpAdd)))
	}
	return b.String()
}

func implicitJoin(coef expr.Node) string {
	if expr.IsConstantFraction(coef) {
		return " "
	}
	if c, ok := coef.(*expr.Constant); ok && !c.Value.IsInt() {
		return " "
	}
	return ""
}
