package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) string {
	t.Helper()
	n, err := Expression(src)
	require.NoError(t, err, "parsing %q", src)
	return n.String()
}

func TestParseSimpleAddition(t *testing.T) {
	assert.Equal(t, "x + 2", mustParse(t, "x+2"))
}

func TestParseSubtractionBecomesUnaryMinusOnPrint(t *testing.T) {
	assert.Equal(t, "x - 3", mustParse(t, "x - 3"))
}

func TestParseImplicitMultiplication(t *testing.T) {
	n, err := Expression("2x")
	require.NoError(t, err)
	assert.Equal(t, "2x", n.String())
}

func TestParsePrecedence(t *testing.T) {
	assert.Equal(t, "2 + 3·x", mustParse(t, "2+3*x"))
}

func TestParseExponent(t *testing.T) {
	n, err := Expression("x^2")
	require.NoError(t, err)
	assert.Equal(t, "x^2", n.String())
}

func TestParseParens(t *testing.T) {
	assert.Equal(t, "(x + 1)·2", mustParse(t, "(x+1)*2"))
}

func TestParseFraction(t *testing.T) {
	assert.Equal(t, "2/3", mustParse(t, "2/3"))
}

func TestParseLatexFrac(t *testing.T) {
	n, err := Expression(`\frac{2}{3} + x^2`)
	require.NoError(t, err)
	assert.Equal(t, "2/3 + x^2", n.String())
}

func TestParseLatexCdot(t *testing.T) {
	n, err := Expression(`2 \cdot x`)
	require.NoError(t, err)
	assert.Equal(t, "2·x", n.String())
}

func TestParseAbsoluteValueBars(t *testing.T) {
	n, err := Expression("|x - 2|")
	require.NoError(t, err)
	assert.Equal(t, "|x - 2|", n.String())
}

func TestParseDecimalLiteral(t *testing.T) {
	n, err := Expression("0.25")
	require.NoError(t, err)
	assert.Equal(t, "1/4", n.String())
}

func TestParseUnaryMinus(t *testing.T) {
	n, err := Expression("-x")
	require.NoError(t, err)
	assert.Equal(t, "-x", n.String())
}

func TestParseTrailingGarbageErrors(t *testing.T) {
	_, err := Expression("2 + 3)")
	require.Error(t, err)
}

func TestParseEquationEq(t *testing.T) {
	eq, err := Equation("2x + 3 = 7")
	require.NoError(t, err)
	assert.Equal(t, "2x + 3 = 7", eq.String())
}

func TestParseEquationInequality(t *testing.T) {
	eq, err := Equation("x - 1 <= 5")
	require.NoError(t, err)
	assert.Equal(t, "x - 1 <= 5", eq.String())
}

func TestParseEquationLatexLeq(t *testing.T) {
	eq, err := Equation(`x \leq 5`)
	require.NoError(t, err)
	assert.Equal(t, "x <= 5", eq.String())
}
