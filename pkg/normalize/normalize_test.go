package normalize

import (
	"testing"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNestedAdd(t *testing.T) {
	// (a + b) + c -> a + b + c
	inner := expr.NewOperator(expr.OpAdd, &expr.Symbol{Name: "a"}, &expr.Symbol{Name: "b"})
	n := expr.NewOperator(expr.OpAdd, inner, &expr.Symbol{Name: "c"})

	got := Flatten(n)
	op, ok := got.(*expr.Operator)
	require.True(t, ok)
	assert.Equal(t, expr.OpAdd, op.Op)
	assert.Len(t, op.Children, 3)
}

func TestFlattenSubtractionBecomesUnaryMinus(t *testing.T) {
	n := expr.NewOperator(expr.OpSub, &expr.Symbol{Name: "x"}, expr.NewConstantInt(3))
	got := Flatten(n)
	op, ok := got.(*expr.Operator)
	require.True(t, ok)
	assert.Equal(t, expr.OpAdd, op.Op)
	require.Len(t, op.Children, 2)
	_, ok = op.Children[1].(*expr.UnaryMinus)
	assert.True(t, ok)
}

func TestRemoveUnnecessaryParensOnLeaf(t *testing.T) {
	n := &expr.Parenthesis{Content: &expr.Symbol{Name: "x"}}
	got := RemoveUnnecessaryParens(n)
	assert.Equal(t, "x", got.String())
}

func TestRemoveUnnecessaryParensKeepsIntentional(t *testing.T) {
	// (x + 1) * 2 keeps its parens: '+' is looser than '*'
	inner := &expr.Parenthesis{Content: expr.NewOperator(expr.OpAdd, &expr.Symbol{Name: "x"}, expr.NewConstantInt(1))}
	n := expr.NewOperator(expr.OpMul, inner, expr.NewConstantInt(2))
	got := RemoveUnnecessaryParens(n)
	assert.Equal(t, "(x + 1)·2", got.String())
}
