package rules

import (
	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// DoubleUnaryMinus collapses a UnaryMinus of a UnaryMinus: -(-x) -> x.
func DoubleUnaryMinus(n expr.Node) (expr.Node, changekind.Kind, bool) {
	u, ok := n.(*expr.UnaryMinus)
	if !ok {
		return n, changekind.Unknown, false
	}
	inner, ok := u.Child.(*expr.UnaryMinus)
	if !ok {
		return n, changekind.Unknown, false
	}
	return inner.Child, changekind.DoubleUnaryMinus, true
}

// AbsoluteValue resolves abs(c) for a constant c to its non-negative value,
// |-3| -> 3, |3| -> 3.
func AbsoluteValue(n expr.Node) (expr.Node, changekind.Kind, bool) {
	f, ok := n.(*expr.Function)
	if !ok || f.Name != expr.FuncAbs {
		return n, changekind.Unknown, false
	}
	v, ok := f.Arg.Eval()
	if !ok {
		return n, changekind.Unknown, false
	}
	return &expr.Constant{Value: v.Abs(v)}, changekind.AbsoluteValue, true
}
