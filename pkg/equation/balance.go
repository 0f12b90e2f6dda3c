package equation

import (
	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// AddToBothSides returns the equation with term added to both sides.
func (e Equation) AddToBothSides(term expr.Node) (Equation, changekind.Kind) {
	return Equation{
		LHS:        expr.NewOperator(expr.OpAdd, e.LHS, term.Clone()),
		Comparator: e.Comparator,
		RHS:        expr.NewOperator(expr.OpAdd, e.RHS, term.Clone()),
	}, changekind.AddToBothSides
}

// SubtractFromBothSides returns the equation with term subtracted from
// both sides.
func (e Equation) SubtractFromBothSides(term expr.Node) (Equation, changekind.Kind) {
	return Equation{
		LHS:        expr.NewOperator(expr.OpAdd, e.LHS, &expr.UnaryMinus{Child: term.Clone()}),
		Comparator: e.Comparator,
		RHS:        expr.NewOperator(expr.OpAdd, e.RHS, &expr.UnaryMinus{Child: term.Clone()}),
	}, changekind.SubtractFromBothSides
}

// MultiplyBothSides returns the equation with both sides multiplied by
// factor. A negative factor flips the comparator for an inequality.
func (e Equation) MultiplyBothSides(factor expr.Node) (Equation, changekind.Kind) {
	cmp := e.Comparator
	if neg, ok := isNegativeConstant(factor); ok && neg {
		cmp = cmp.Reverse()
	}
	return Equation{
		LHS:        expr.NewOperator(expr.OpMul, e.LHS, factor.Clone()),
		Comparator: cmp,
		RHS:        expr.NewOperator(expr.OpMul, e.RHS, factor.Clone()),
	}, changekind.MultiplyBothSides
}

// DivideFromBothSides returns the equation with both sides divided by
// divisor. A negative divisor flips the comparator for an inequality.
func (e Equation) DivideFromBothSides(divisor expr.Node) (Equation, changekind.Kind) {
	cmp := e.Comparator
	if neg, ok := isNegativeConstant(divisor); ok && neg {
		cmp = cmp.Reverse()
	}
	return Equation{
		LHS:        expr.NewOperator(expr.OpDiv, e.LHS, divisor.Clone()),
		Comparator: cmp,
		RHS:        expr.NewOperator(expr.OpDiv, e.RHS, divisor.Clone()),
	}, changekind.DivideFromBothSides
}

// SwapSides returns the equation with LHS and RHS exchanged, flipping an
// inequality's direction (a < b becomes b > a).
func (e Equation) SwapSides() (Equation, changekind.Kind) {
	return Equation{LHS: e.RHS, Comparator: e.Comparator.Flip(), RHS: e.LHS}, changekind.SwapSides
}

func isNegativeConstant(n expr.Node) (neg bool, ok bool) {
	v, evalOK := n.Eval()
	if !evalOK {
		return false, false
	}
	return v.Sign() < 0, true
}
