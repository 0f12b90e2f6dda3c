package exprgen

import (
	"math/rand"
	"testing"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesIncludesBothGenerators(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "arithmetic")
	assert.Contains(t, names, "polynomial")
}

func TestGetUnknownGenerator(t *testing.T) {
	_, err := Get("nonexistent")
	require.Error(t, err)
}

func TestArithmeticGeneratorProducesNoSymbols(t *testing.T) {
	g, err := Get("arithmetic")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		n := g.RandomTree(rng, 4)
		assert.False(t, expr.ContainsSymbol(n), "arithmetic tree %s should never contain a symbol", n.String())
	}
}

func TestPolynomialGeneratorProducesPrintableTrees(t *testing.T) {
	g, err := Get("polynomial")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		n := g.RandomTree(rng, 4)
		require.NotEmpty(t, n.String())
	}
}

func TestTermProducesRecognizableTerm(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		n := Term(rng)
		require.NotEmpty(t, n.String())
		_, ok := expr.AsTerm(n)
		assert.True(t, ok, "Term produced %s, which AsTerm does not recognize", n.String())
	}
}
