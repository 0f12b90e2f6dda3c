package exprgen

import (
	"math/rand"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

func init() {
	Register("polynomial", func() Generator { return &PolynomialGenerator{} })
}

// PolynomialGenerator produces single-variable polynomial terms with
// small integer coefficients and exponents, grounded in
// pkg/pool/moderate.go's wider operator mix (adds OpPow to the basic
// four). The variable is always "x": spec.md's polynomial-term shape is
// single-symbol, so a generator with more than one free variable would
// generate trees no rule in pkg/rules can ever fully reduce.
type PolynomialGenerator struct{}

func (g *PolynomialGenerator) Name() string { return "polynomial" }

func (g *PolynomialGenerator) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Float64() < 0.5 {
		return &expr.Symbol{Name: "x"}
	}
	return expr.NewConstantInt(int64(rng.Intn(10) + 1))
}

func (g *PolynomialGenerator) RandomUnary(rng *rand.Rand) UnaryOp {
	return OpNegate
}

var polynomialBinary = []expr.Op{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv, expr.OpPow}

func (g *PolynomialGenerator) RandomBinary(rng *rand.Rand) expr.Op {
	return polynomialBinary[rng.Intn(len(polynomialBinary))]
}

func (g *PolynomialGenerator) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(g, rng, maxDepth)
}

// Term builds a single canonical polynomial term coef*x^exponent, coef
// and exponent both small positive integers, for tests that want a
// guaranteed-recognizable expr.Term rather than a free-form tree.
func Term(rng *rand.Rand) expr.Node {
	coef := int64(rng.Intn(9) + 1)
	exponent := rng.Intn(4) + 1
	t := expr.Term{Coef: expr.NewConstantInt(coef), Symbol: "x"}
	if exponent != 1 {
		t.Exponent = expr.NewConstantInt(int64(exponent))
	}
	return t.Rebuild()
}
