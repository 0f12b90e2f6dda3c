package expr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func x() *Symbol { return &Symbol{Name: "x"} }

func TestConstantString(t *testing.T) {
	cases := []struct {
		v    *big.Rat
		want string
	}{
		{big.NewRat(5, 1), "5"},
		{big.NewRat(-5, 1), "-5"},
		{big.NewRat(2, 3), "2/3"},
		{big.NewRat(-2, 3), "-2/3"},
	}
	for _, tc := range cases {
		c := &Constant{Value: tc.v}
		assert.Equal(t, tc.want, c.String())
	}
}

func TestConstantLaTeX(t *testing.T) {
	assert.Equal(t, "5", (&Constant{Value: big.NewRat(5, 1)}).LaTeX())
	assert.Equal(t, "\\frac{2}{3}", (&Constant{Value: big.NewRat(2, 3)}).LaTeX())
	assert.Equal(t, "-\\frac{2}{3}", (&Constant{Value: big.NewRat(-2, 3)}).LaTeX())
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "x", x().String())
	assert.Equal(t, "x", x().LaTeX())
}

func TestOperatorStringAdd(t *testing.T) {
	// x + (-3) prints as "x - 3"
	n := NewOperator(OpAdd, x(), &UnaryMinus{Child: NewConstantInt(3)})
	assert.Equal(t, "x - 3", n.String())

	// -x + y prints as "-x + y"
	n2 := NewOperator(OpAdd, &UnaryMinus{Child: x()}, &Symbol{Name: "y"})
	assert.Equal(t, "-x + y", n2.String())
}

func TestOperatorStringMulImplicitTerm(t *testing.T) {
	// 5x^3 — implicit, plain-integer coefficient: no separator
	term := &Operator{Op: OpMul, Implicit: true, Children: []Node{
		NewConstantInt(5),
		NewOperator(OpPow, x(), NewConstantInt(3)),
	}}
	assert.Equal(t, "5x^3", term.String())

	// 3/2 x — implicit, fraction coefficient: single space
	term2 := &Operator{Op: OpMul, Implicit: true, Children: []Node{
		NewConstantFrac(3, 2),
		x(),
	}}
	assert.Equal(t, "3/2 x", term2.String())
}

func TestOperatorStringMulGeneral(t *testing.T) {
	// general n-ary multiplication joins with "·"
	n := NewOperator(OpMul, NewConstantInt(2), NewOperator(OpPow, x(), NewConstantInt(3)), &Symbol{Name: "y"})
	assert.Equal(t, "2·x^3·y", n.String())
}

func TestOperatorStringDiv(t *testing.T) {
	// constant fraction: unspaced
	frac := NewOperator(OpDiv, NewConstantInt(2), NewConstantInt(3))
	assert.Equal(t, "2/3", frac.String())

	// general division: spaced
	gen := NewOperator(OpDiv, x(), NewConstantInt(2))
	assert.Equal(t, "x / 2", gen.String())
}

func TestOperatorStringPow(t *testing.T) {
	n := NewOperator(OpPow, x(), NewConstantInt(3))
	assert.Equal(t, "x^3", n.String())

	// non-atomic exponent parenthesized in ASCII
	inner := NewOperator(OpAdd, x(), NewConstantInt(1))
	n2 := NewOperator(OpPow, x(), inner)
	assert.Equal(t, "x^(x + 1)", n2.String())
}

func TestUnaryMinusString(t *testing.T) {
	assert.Equal(t, "-x", (&UnaryMinus{Child: x()}).String())

	op := NewOperator(OpAdd, x(), NewConstantInt(1))
	um := &UnaryMinus{Child: op}
	assert.Equal(t, "-(x + 1)", um.String())
}

func TestFunctionAbsString(t *testing.T) {
	f := &Function{Name: FuncAbs, Arg: &UnaryMinus{Child: x()}}
	assert.Equal(t, "|-x|", f.String())
	assert.Equal(t, "\\left|-x\\right|", f.LaTeX())
}

func TestParenthesisString(t *testing.T) {
	p := &Parenthesis{Content: NewOperator(OpAdd, x(), NewConstantInt(1))}
	assert.Equal(t, "(x + 1)", p.String())
}

func TestClone(t *testing.T) {
	original := NewOperator(OpAdd, x(), NewConstantInt(2))
	cloned := original.Clone()
	assert.Equal(t, original.String(), cloned.String())

	cloned.(*Operator).Children[1] = NewConstantInt(99)
	assert.NotEqual(t, original.String(), cloned.String())
}

func TestNodeCountAndDepth(t *testing.T) {
	leaf := x()
	assert.Equal(t, 1, leaf.NodeCount())
	assert.Equal(t, 0, leaf.Depth())

	tree := NewOperator(OpAdd, x(), NewOperator(OpMul, NewConstantInt(2), x()))
	assert.Equal(t, 5, tree.NodeCount())
	assert.Equal(t, 2, tree.Depth())
}

func TestEqual(t *testing.T) {
	a := NewOperator(OpAdd, x(), NewConstantInt(1))
	b := NewOperator(OpAdd, x(), NewConstantInt(1))
	c := NewOperator(OpAdd, NewConstantInt(1), x())

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "structural equality is not commutative")
}

func TestShapePredicates(t *testing.T) {
	assert.True(t, IsConstant(NewConstantInt(3)))
	assert.False(t, IsConstant(x()))

	frac := NewOperator(OpDiv, NewConstantInt(2), NewConstantInt(3))
	assert.True(t, IsConstantFraction(frac))
	assert.False(t, IsConstantFraction(NewOperator(OpDiv, x(), NewConstantInt(3))))

	assert.True(t, ContainsSymbol(NewOperator(OpAdd, x(), NewConstantInt(1))))
	assert.False(t, ContainsSymbol(NewOperator(OpAdd, NewConstantInt(2), NewConstantInt(1))))
}

func TestEval(t *testing.T) {
	// (2 + 3) * 4 / 2 - 1 = 9
	n := NewOperator(OpSub,
		NewOperator(OpDiv,
			NewOperator(OpMul, NewOperator(OpAdd, NewConstantInt(2), NewConstantInt(3)), NewConstantInt(4)),
			NewConstantInt(2)),
		NewConstantInt(1))
	v, ok := n.Eval()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(9, 1), v)
}

func TestEvalFailsOnSymbol(t *testing.T) {
	_, ok := NewOperator(OpAdd, x(), NewConstantInt(1)).Eval()
	assert.False(t, ok)
}

func TestEvalDivisionByZero(t *testing.T) {
	n := NewOperator(OpDiv, NewConstantInt(1), NewConstantInt(0))
	_, ok := n.Eval()
	assert.False(t, ok)
}

func TestEvalPow(t *testing.T) {
	n := NewOperator(OpPow, NewConstantInt(2), NewConstantInt(-2))
	v, ok := n.Eval()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(1, 4), v)
}

func TestAsTermAndRebuild(t *testing.T) {
	cases := []struct {
		name string
		n    Node
	}{
		{"bare symbol", x()},
		{"power", NewOperator(OpPow, x(), NewConstantInt(3))},
		{"coefficient", &Operator{Op: OpMul, Implicit: true, Children: []Node{NewConstantInt(5), x()}}},
		{"negative coefficient", &UnaryMinus{Child: x()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term, ok := AsTerm(tc.n)
			require.True(t, ok)
			rebuilt := term.Rebuild()
			assert.Equal(t, tc.n.String(), rebuilt.String())
		})
	}
}

func TestTermCoefValue(t *testing.T) {
	term, ok := AsTerm(&Operator{Op: OpMul, Implicit: true, Children: []Node{NewConstantFrac(2, 3), x()}})
	require.True(t, ok)
	v, ok := term.CoefValue()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(2, 3), v)
}

func TestExponentEqual(t *testing.T) {
	assert.True(t, ExponentEqual(nil, NewConstantInt(1)))
	assert.True(t, ExponentEqual(NewConstantInt(1), nil))
	assert.False(t, ExponentEqual(nil, NewConstantInt(2)))
	assert.True(t, ExponentEqual(NewConstantInt(3), NewConstantInt(3)))
}
