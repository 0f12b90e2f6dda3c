package rules

import (
	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Distribute expands a factor across a parenthesized or bare sum it
// multiplies against: a * (b + c) -> a*b + a*c. Only one '+' operand in
// the product is expanded per firing, leaving any remaining factors for
// the next pass.
func Distribute(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpMul {
		return n, changekind.Unknown, false
	}
	for i, c := range o.Children {
		sum, ok := sumOperands(c)
		if !ok {
			continue
		}
		others := make([]expr.Node, 0, len(o.Children)-1)
		for k, oc := range o.Children {
			if k != i {
				others = append(others, oc)
			}
		}
		terms := make([]expr.Node, len(sum))
		for k, addend := range sum {
			factors := append(append([]expr.Node{}, others...), addend)
			terms[k] = &expr.Operator{Op: expr.OpMul, Children: factors}
		}
		return &expr.Operator{Op: expr.OpAdd, Children: terms}, changekind.Distribute, true
	}
	return n, changekind.Unknown, false
}

// sumOperands unwraps a bare or parenthesized '+' into its addends.
func sumOperands(n expr.Node) ([]expr.Node, bool) {
	switch v := n.(type) {
	case *expr.Parenthesis:
		return sumOperands(v.Content)
	case *expr.Operator:
		if v.Op == expr.OpAdd {
			return v.Children, true
		}
	}
	return nil, false
}
