package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

func wrapLaTeX(n expr.Node, c *config, minPrec int) string {
	if op, ok := n.(*expr.Operator); ok && precedence(op.Op) < minPrec {
		return "(" + renderLaTeX(n, c, 0) + ")"
	}
	return renderLaTeX(n, c, 0)
}

// renderLaTeX renders n and, if n carries a color-group assignment,
// wraps the result in \textcolor{...}{...} after the inner rendering is
// computed — so a colored subtree's own nested structure (parens,
// fractions) renders normally and the color wraps the whole thing once.
func renderLaTeX(n expr.Node, c *config, minPrec int) string {
	inner := renderLaTeXUncolored(n, c)
	if color, ok := c.colorOf(n); ok {
		return fmt.Sprintf("\\textcolor{%s}{%s}", color, inner)
	}
	return inner
}

func renderLaTeXUncolored(n expr.Node, c *config) string {
	switch v := n.(type) {
	case *expr.Constant:
		return constantLaTeX(v)
	case *expr.Symbol:
		return v.Name
	case *expr.UnaryMinus:
		if c.explicitPlusMinus {
			return "-" + wrapLaTeX(v.Child, c, precedence(expr.OpAdd)+1)
		}
		switch child := v.Child.(type) {
		case *expr.Operator:
			return "-(" + renderLaTeX(child, c, 0) + ")"
		default:
			return "-" + renderLaTeX(child, c, 0)
		}
	case *expr.Parenthesis:
		return "\\left(" + renderLaTeX(v.Content, c, 0) + "\\right)"
	case *expr.Function:
		if v.Name == expr.FuncAbs {
			return "\\left|" + renderLaTeX(v.Arg, c, 0) + "\\right|"
		}
		return "\\" + string(v.Name) + "{(" + renderLaTeX(v.Arg, c, 0) + ")}"
	case *expr.Operator:
		return renderOperatorLaTeX(v, c)
	default:
		return n.LaTeX()
	}
}

func constantLaTeX(v *expr.Constant) string {
	if v.Value.IsInt() {
		return v.Value.Num().String()
	}
	neg := ""
	num := v.Value.Num()
	if num.Sign() < 0 {
		neg = "-"
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", neg, new(big.Int).Abs(num).String(), v.Value.Denom().String())
}

func renderOperatorLaTeX(o *expr.Operator, c *config) string {
	switch o.Op {
	case expr.OpAdd:
		return joinAddLaTeX(o.Children, c)
	case expr.OpMul:
		if o.Implicit && len(o.Children) == 2 {
			return wrapLaTeX(o.Children[0], c, precedence(expr.OpMul)) + " " + wrapLaTeX(o.Children[1], c, precedence(expr.OpMul))
		}
		parts := make([]string, len(o.Children))
		for i, ch := range o.Children {
			parts[i] = wrapLaTeX(ch, c, precedence(expr.OpMul))
		}
		return strings.Join(parts, " \\cdot ")
	case expr.OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", renderLaTeX(o.Children[0], c, 0), renderLaTeX(o.Children[1], c, 0))
	case expr.OpPow:
		return fmt.Sprintf("{%s}^{%s}", wrapLaTeX(o.Children[0], c, precedence(expr.OpPow)+1), renderLaTeX(o.Children[1], c, 0))
	default: // OpSub — transient, pre-flatten only
		return wrapLaTeX(o.Children[0], c, precedence(expr.OpAdd)) + " - " + wrapLaTeX(o.Children[1], c, precedence(expr.OpAdd)+1)
	}
}

func joinAddLaTeX(children []expr.Node, c *config) string {
	var b strings.Builder
	for i, ch := range children {
		if um, ok := ch.(*expr.UnaryMinus); ok && !c.explicitPlusMinus {
			if i > 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString("-")
			}
			b.WriteString(wrapLaTeX(um.Child, c, precedence(expr.OpAdd)+1))
			continue
		}
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(wrapLaTeX(ch, c, precedence(expr.OpAdd)))
	}
	return b.String()
}
