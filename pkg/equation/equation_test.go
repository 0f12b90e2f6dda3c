package equation

import (
	"context"
	"testing"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
	"github.com/mathsteps-go/mathsteps/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sym(name string) *expr.Symbol { return &expr.Symbol{Name: name} }

func TestEquationString(t *testing.T) {
	eq := Equation{LHS: sym("x"), Comparator: Eq, RHS: expr.NewConstantInt(5)}
	assert.Equal(t, "x = 5", eq.String())
}

func TestComparatorFlipAndReverse(t *testing.T) {
	assert.Equal(t, Gt, Lt.Flip())
	assert.Equal(t, Gt, Lt.Reverse())
	assert.Equal(t, Eq, Eq.Flip())
}

func TestSwapSides(t *testing.T) {
	eq := Equation{LHS: expr.NewConstantInt(5), Comparator: Eq, RHS: sym("x")}
	swapped, kind := eq.SwapSides()
	assert.Equal(t, "SWAP_SIDES", kind.String())
	assert.Equal(t, "x = 5", swapped.String())
}

func TestSolveAddToBothSides(t *testing.T) {
	// x - 3 = 7  =>  x = 10
	eq := Equation{
		LHS:        expr.NewOperator(expr.OpAdd, sym("x"), &expr.UnaryMinus{Child: expr.NewConstantInt(3)}),
		Comparator: Eq,
		RHS:        expr.NewConstantInt(7),
	}
	result, trace, err := Solve(context.Background(), eq, "x")
	require.NoError(t, err)
	assert.NotEmpty(t, trace)
	assert.Equal(t, "10", result.String())
}

func TestSolveDivideBothSides(t *testing.T) {
	// 2x = 8  =>  x = 4
	eq := Equation{
		LHS:        &expr.Operator{Op: expr.OpMul, Implicit: true, Children: []expr.Node{expr.NewConstantInt(2), sym("x")}},
		Comparator: Eq,
		RHS:        expr.NewConstantInt(8),
	}
	result, _, err := Solve(context.Background(), eq, "x")
	require.NoError(t, err)
	assert.Equal(t, "4", result.String())
}

func TestSolveSwapsSidesWhenSymbolOnRHS(t *testing.T) {
	// 7 = x - 3  =>  x = 10
	eq := Equation{
		LHS:        expr.NewConstantInt(7),
		Comparator: Eq,
		RHS:        expr.NewOperator(expr.OpAdd, sym("x"), &expr.UnaryMinus{Child: expr.NewConstantInt(3)}),
	}
	result, _, err := Solve(context.Background(), eq, "x")
	require.NoError(t, err)
	assert.Equal(t, "10", result.String())
}

func TestSolveNoSolution(t *testing.T) {
	eq := Equation{LHS: expr.NewConstantInt(1), Comparator: Eq, RHS: expr.NewConstantInt(2)}
	_, _, err := Solve(context.Background(), eq, "x")
	require.Error(t, err)
	var unsolvable *solver.ErrUnsolvable
	require.ErrorAs(t, err, &unsolvable)
	assert.Equal(t, solver.ReasonNoSolution, unsolvable.Reason)
}

func TestSolveSymbolInDenominatorIsIncapable(t *testing.T) {
	eq := Equation{
		LHS:        expr.NewOperator(expr.OpDiv, expr.NewConstantInt(1), sym("x")),
		Comparator: Eq,
		RHS:        expr.NewConstantInt(2),
	}
	_, _, err := Solve(context.Background(), eq, "x")
	require.Error(t, err)
	var unsolvable *solver.ErrUnsolvable
	require.ErrorAs(t, err, &unsolvable)
	assert.Equal(t, solver.ReasonIncapable, unsolvable.Reason)
}

func TestSolveDegreeAboveOneIsIncapable(t *testing.T) {
	// x^2 = 4: isolateStep has no balance operation for a bare power, so
	// this must report incapable rather than returning RHS as if solved.
	eq := Equation{
		LHS:        expr.NewOperator(expr.OpPow, sym("x"), expr.NewConstantInt(2)),
		Comparator: Eq,
		RHS:        expr.NewConstantInt(4),
	}
	_, _, err := Solve(context.Background(), eq, "x")
	require.Error(t, err)
	var unsolvable *solver.ErrUnsolvable
	require.ErrorAs(t, err, &unsolvable)
	assert.Equal(t, solver.ReasonIncapable, unsolvable.Reason)
}

func TestSolveSymbolOnBothSidesIsIncapable(t *testing.T) {
	eq := Equation{LHS: sym("x"), Comparator: Eq, RHS: sym("x")}
	_, _, err := Solve(context.Background(), eq, "x")
	require.Error(t, err)
	var unsolvable *solver.ErrUnsolvable
	require.ErrorAs(t, err, &unsolvable)
	assert.Equal(t, solver.ReasonIncapable, unsolvable.Reason)
}
