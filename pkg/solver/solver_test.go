package solver

import (
	"context"
	"strings"
	"testing"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sym(name string) *expr.Symbol { return &expr.Symbol{Name: name} }

func TestAdvanceFiresOneRule(t *testing.T) {
	n := expr.NewOperator(expr.OpAdd, expr.NewConstantInt(2), expr.NewConstantInt(3))
	result, kind, changed := Advance(n)
	require.True(t, changed)
	assert.Equal(t, changekind.Arithmetic, kind)
	assert.Equal(t, "5", result.String())
}

func TestSimplifyReachesFixedPoint(t *testing.T) {
	// (2 + 3) * x -> 5 * x in one rule firing (the arithmetic fold); the
	// leftover parentheses are dropped by normalization, which is not a step.
	n := expr.NewOperator(expr.OpMul,
		&expr.Parenthesis{Content: expr.NewOperator(expr.OpAdd, expr.NewConstantInt(2), expr.NewConstantInt(3))},
		sym("x"))
	final, trace, err := Simplify(context.Background(), n)
	require.NoError(t, err)
	assert.NotEmpty(t, trace)
	assert.Equal(t, "5·x", final.String())
}

func TestSimplifyCombinesLikeTerms(t *testing.T) {
	n := expr.NewOperator(expr.OpAdd,
		&expr.Operator{Op: expr.OpMul, Implicit: true, Children: []expr.Node{expr.NewConstantInt(2), sym("x")}},
		&expr.Operator{Op: expr.OpMul, Implicit: true, Children: []expr.Node{expr.NewConstantInt(3), sym("x")}})
	final, _, err := Simplify(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, "5x", final.String())
}

func TestSimplifyRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := expr.NewOperator(expr.OpAdd, expr.NewConstantInt(2), expr.NewConstantInt(3))
	_, _, err := Simplify(ctx, n)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteTextTrace(t *testing.T) {
	n := expr.NewOperator(expr.OpAdd, expr.NewConstantInt(2), expr.NewConstantInt(3))
	_, trace, err := Simplify(context.Background(), n)
	require.NoError(t, err)

	var b strings.Builder
	WriteTextTrace(&b, trace)
	assert.Contains(t, b.String(), "ARITHMETIC")
}

func TestWriteJSONTrace(t *testing.T) {
	n := expr.NewOperator(expr.OpAdd, expr.NewConstantInt(2), expr.NewConstantInt(3))
	_, trace, err := Simplify(context.Background(), n)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, WriteJSONTrace(&b, trace))
	assert.Contains(t, b.String(), `"kind": "ARITHMETIC"`)
}
