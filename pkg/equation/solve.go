package equation

import (
	"context"
	"fmt"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
	"github.com/mathsteps-go/mathsteps/pkg/solver"
)

// EquationStep is a solver.Step for a whole Equation rather than a bare
// expression: Before/After are full "lhs cmp rhs" snapshots.
type EquationStep struct {
	Before Equation
	After  Equation
	Kind   string
}

// Solve isolates symbol on one side of the equation, returning its final
// value and the trace of balance operations and per-side simplifications
// that led there. It only handles a linear equation in symbol: the symbol
// may not appear in a denominator, and at most one side may contain it
// after simplification, matching the capability spec.md §5's Open
// Questions section settles on (ReasonIncapable otherwise).
func Solve(ctx context.Context, eq Equation, symbol string) (expr.Node, []EquationStep, error) {
	var trace []EquationStep
	current := eq

	for i := 0; i < solver.MaxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, trace, err
		}

		lhs, lhsTrace, err := solver.Simplify(ctx, current.LHS)
		if err != nil {
			return nil, trace, err
		}
		rhs, rhsTrace, err := solver.Simplify(ctx, current.RHS)
		if err != nil {
			return nil, trace, err
		}
		simplified := Equation{LHS: lhs, Comparator: current.Comparator, RHS: rhs}
		if len(lhsTrace) > 0 || len(rhsTrace) > 0 {
			trace = append(trace, EquationStep{Before: current, After: simplified, Kind: "SIMPLIFY_SIDE"})
			current = simplified
			continue
		}
		current = simplified

		lhsHasSym := expr.ContainsSymbol(current.LHS)
		rhsHasSym := expr.ContainsSymbol(current.RHS)

		if lhsHasSym && rhsHasSym {
			return nil, trace, &solver.ErrUnsolvable{
				Reason: solver.ReasonIncapable,
				Detail: fmt.Sprintf("%s appears on both sides", symbol),
			}
		}

		if !lhsHasSym && !rhsHasSym {
			holds, ok := current.evalHolds()
			if !ok {
				return nil, trace, &solver.ErrUnsolvable{Reason: solver.ReasonIncapable, Detail: "equation is not numeric on either side"}
			}
			if holds {
				return current.RHS, trace, nil
			}
			return nil, trace, &solver.ErrUnsolvable{Reason: solver.ReasonNoSolution, Detail: current.String()}
		}

		if rhsHasSym && !lhsHasSym {
			swapped, kind := current.SwapSides()
			trace = append(trace, EquationStep{Before: current, After: swapped, Kind: kind.String()})
			current = swapped
			continue
		}

		if bad, detail := symbolInDenominator(current.LHS, symbol); bad {
			return nil, trace, &solver.ErrUnsolvable{Reason: solver.ReasonIncapable, Detail: detail}
		}

		next, kind, ok := isolateStep(current)
		if !ok {
			if _, isSymbol := current.LHS.(*expr.Symbol); isSymbol {
				return current.RHS, trace, nil
			}
			// isolateStep doesn't recognize this LHS shape (e.g. degree>1 like
			// x^2, or a fraction with the symbol in the numerator like 2x/3) —
			// that's unsolved, not solved, even though no further balance
			// operation applies.
			return nil, trace, &solver.ErrUnsolvable{
				Reason: solver.ReasonIncapable,
				Detail: fmt.Sprintf("cannot isolate %s from %s", symbol, current.LHS.String()),
			}
		}
		trace = append(trace, EquationStep{Before: current, After: next, Kind: kind})
		current = next
	}

	return nil, trace, &solver.ErrRuleLoop{Cap: solver.MaxSteps}
}

// evalHolds reports whether a fully-constant equation holds, used once
// neither side contains the target symbol (identity vs. contradiction).
func (e Equation) evalHolds() (bool, bool) {
	l, lok := e.LHS.Eval()
	r, rok := e.RHS.Eval()
	if !lok || !rok {
		return false, false
	}
	switch e.Comparator {
	case Eq:
		return l.Cmp(r) == 0, true
	case Lt:
		return l.Cmp(r) < 0, true
	case Lte:
		return l.Cmp(r) <= 0, true
	case Gt:
		return l.Cmp(r) > 0, true
	case Gte:
		return l.Cmp(r) >= 0, true
	default:
		return false, false
	}
}

func symbolInDenominator(n expr.Node, symbol string) (bool, string) {
	switch v := n.(type) {
	case *expr.Operator:
		if v.Op == expr.OpDiv && expr.ContainsSymbol(v.Children[1]) {
			return true, fmt.Sprintf("%s appears in a denominator", symbol)
		}
		for _, c := range v.Children {
			if bad, detail := symbolInDenominator(c, symbol); bad {
				return true, detail
			}
		}
	case *expr.UnaryMinus:
		return symbolInDenominator(v.Child, symbol)
	case *expr.Parenthesis:
		return symbolInDenominator(v.Content, symbol)
	case *expr.Function:
		return symbolInDenominator(v.Arg, symbol)
	}
	return false, ""
}

// isolateStep peels one balance operation off the symbol's side: a
// flattened LHS of symbolTerm + c1 + c2 + ... subtracts the combined
// non-symbol addends from both sides; a flattened LHS of
// coef1 * coef2 * ... * symbolTerm divides both sides by the combined
// non-symbol factors; a bare UnaryMinus negates both sides by multiplying
// by -1. It assumes LHS is already normalize.Flatten'd, per solver.Simplify
// having just run on it.
func isolateStep(eq Equation) (Equation, string, bool) {
	switch lhs := eq.LHS.(type) {
	case *expr.Operator:
		switch lhs.Op {
		case expr.OpAdd:
			if nonSymbol := nonSymbolChildren(lhs.Children); len(nonSymbol) > 0 {
				next, kind := eq.SubtractFromBothSides(rebuildFlat(expr.OpAdd, nonSymbol))
				return next, kind.String(), true
			}
		case expr.OpMul:
			if nonSymbol := nonSymbolChildren(lhs.Children); len(nonSymbol) > 0 {
				next, kind := eq.DivideFromBothSides(rebuildFlat(expr.OpMul, nonSymbol))
				return next, kind.String(), true
			}
		}
	case *expr.UnaryMinus:
		// -symbol = rhs  =>  symbol = -rhs, the direct algebraic result of
		// multiplying both sides by -1 (an inequality's direction flips).
		next := Equation{LHS: lhs.Child, Comparator: eq.Comparator.Reverse(), RHS: &expr.UnaryMinus{Child: eq.RHS}}
		return next, changekind.MultiplyBothSides.String(), true
	}
	return Equation{}, "", false
}

func nonSymbolChildren(children []expr.Node) []expr.Node {
	out := make([]expr.Node, 0, len(children))
	for _, c := range children {
		if !expr.ContainsSymbol(c) {
			out = append(out, c)
		}
	}
	return out
}

func rebuildFlat(op expr.Op, nodes []expr.Node) expr.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &expr.Operator{Op: op, Children: nodes}
}
