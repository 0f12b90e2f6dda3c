package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// precedence orders operators for ASCII/LaTeX parenthesization decisions:
// a child is wrapped in parens only when its own precedence is looser than
// the slot it sits in. Operator.Op itself doesn't carry precedence (OpSub
// is transient and never appears post-flatten), so it's computed here
// rather than stored on the node, mirroring the teacher's separate
// unaryOpNames/binaryOpSymbols lookup tables in pkg/expr/print.go.
func precedence(op Op) int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

func wrapASCII(child Node, minPrec int) string {
	if op, ok := child.(*Operator); ok && precedence(op.Op) < minPrec {
		return "(" + child.String() + ")"
	}
	return child.String()
}

func wrapLaTeX(child Node, minPrec int) string {
	if op, ok := child.(*Operator); ok && precedence(op.Op) < minPrec {
		return "(" + child.LaTeX() + ")"
	}
	return child.LaTeX()
}

// String renders the constant in lowest terms, e.g. "3", "2/3", "-1/4".
func (c *Constant) String() string {
	if c.Value.IsInt() {
		return c.Value.Num().String()
	}
	return c.Value.RatString()
}

func (c *Constant) LaTeX() string {
	if c.Value.IsInt() {
		return c.Value.Num().String()
	}
	neg := ""
	num := c.Value.Num()
	if num.Sign() < 0 {
		neg = "-"
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", neg, new(big.Int).Abs(num).String(), c.Value.Denom().String())
}

func (s *Symbol) String() string { return s.Name }
func (s *Symbol) LaTeX() string  { return s.Name }

// String renders "-x" for a leaf child and "-(a+b)" for an operator child,
// per spec.md §6's unary-minus parenthesization rule.
func (u *UnaryMinus) String() string {
	switch c := u.Child.(type) {
	case *Operator:
		return "-(" + c.String() + ")"
	default:
		return "-" + c.String()
	}
}

func (u *UnaryMinus) LaTeX() string {
	switch c := u.Child.(type) {
	case *Operator:
		return "-(" + c.LaTeX() + ")"
	default:
		return "-" + c.LaTeX()
	}
}

func (p *Parenthesis) String() string { return "(" + p.Content.String() + ")" }
func (p *Parenthesis) LaTeX() string  { return "\\left(" + p.Content.LaTeX() + "\\right)" }

func (f *Function) String() string {
	switch f.Name {
	case FuncAbs:
		return "|" + f.Arg.String() + "|"
	default:
		return string(f.Name) + "(" + f.Arg.String() + ")"
	}
}

func (f *Function) LaTeX() string {
	switch f.Name {
	case FuncAbs:
		return "\\left|" + f.Arg.LaTeX() + "\\right|"
	default:
		return "\\" + string(f.Name) + "{(" + f.Arg.LaTeX() + ")}"
	}
}

// implicitCoefficientJoin decides the separator between an implicit-
// multiplication coefficient and the rest of a polynomial term: no
// separator after a plain integer ("5x^3"), one space after a fraction
// ("3/2 x", "2/3 x^2") so the digits of the denominator never run into
// the symbol.
func implicitCoefficientJoin(coef Node) string {
	if IsConstantFraction(coef) {
		return " "
	}
	if c, ok := coef.(*Constant); ok && !c.Value.IsInt() {
		return " "
	}
	return ""
}

func (o *Operator) String() string {
	switch o.Op {
	case OpAdd:
		return joinAddASCII(o.Children)
	case OpMul:
		if o.Implicit && len(o.Children) == 2 {
			return wrapASCII(o.Children[0], precedence(OpMul)) +
				implicitCoefficientJoin(o.Children[0]) +
				wrapASCII(o.Children[1], precedence(OpMul))
		}
		parts := make([]string, len(o.Children))
		for i, c := range o.Children {
			parts[i] = wrapASCII(c, precedence(OpMul))
		}
		return strings.Join(parts, "·")
	case OpDiv:
		if IsConstantFraction(o) {
			return o.Children[0].String() + "/" + o.Children[1].String()
		}
		return wrapASCII(o.Children[0], precedence(OpDiv)) + " / " + wrapASCII(o.Children[1], precedence(OpDiv)+1)
	case OpPow:
		base := wrapASCII(o.Children[0], precedence(OpPow)+1)
		exp := o.Children[1].String()
		if _, ok := o.Children[1].(*Operator); ok {
			exp = "(" + exp + ")"
		}
		return base + "^" + exp
	default: // OpSub — transient, pre-flatten only
		return wrapASCII(o.Children[0], precedence(OpAdd)) + " - " + wrapASCII(o.Children[1], precedence(OpAdd)+1)
	}
}

// joinAddASCII prints "a + b" but "a - b" whenever a child is a UnaryMinus,
// realizing the RESOLVE_ADD_UNARY_MINUS display rule without mutating the
// tree: a + UnaryMinus(b) is still Operator{OpAdd,[a, UnaryMinus{b}]}
// internally, it simply prints with a minus sign and no unary "-(b)".
func joinAddASCII(children []Node) string {
	var b strings.Builder
	for i, c := range children {
		if um, ok := c.(*UnaryMinus); ok {
			if i > 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString("-")
			}
			b.WriteString(wrapASCII(um.Child, precedence(OpAdd)+1))
			continue
		}
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(wrapASCII(c, precedence(OpAdd)))
	}
	return b.String()
}

func (o *Operator) LaTeX() string {
	switch o.Op {
	case OpAdd:
		return joinAddLaTeX(o.Children)
	case OpMul:
		if o.Implicit && len(o.Children) == 2 {
			return wrapLaTeX(o.Children[0], precedence(OpMul)) + " " + wrapLaTeX(o.Children[1], precedence(OpMul))
		}
		parts := make([]string, len(o.Children))
		for i, c := range o.Children {
			parts[i] = wrapLaTeX(c, precedence(OpMul))
		}
		return strings.Join(parts, " \\cdot ")
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", o.Children[0].LaTeX(), o.Children[1].LaTeX())
	case OpPow:
		return fmt.Sprintf("{%s}^{%s}", wrapLaTeX(o.Children[0], precedence(OpPow)+1), o.Children[1].LaTeX())
	default:
		return fmt.Sprintf("{%s} - {%s}", o.Children[0].LaTeX(), o.Children[1].LaTeX())
	}
}

func joinAddLaTeX(children []Node) string {
	var b strings.Builder
	for i, c := range children {
		if um, ok := c.(*UnaryMinus); ok {
			if i > 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString("-")
			}
			b.WriteString(wrapLaTeX(um.Child, precedence(OpAdd)+1))
			continue
		}
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(wrapLaTeX(c, precedence(OpAdd)))
	}
	return b.String()
}
