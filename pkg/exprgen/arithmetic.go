package exprgen

import (
	"math/rand"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

func init() {
	Register("arithmetic", func() Generator { return &ArithmeticGenerator{} })
}

// ArithmeticGenerator produces closed numeric expressions: small integer
// constants combined with the four basic operators, grounded in
// pkg/pool/conservative.go's leaf/operator weighting (no symbols).
type ArithmeticGenerator struct{}

func (g *ArithmeticGenerator) Name() string { return "arithmetic" }

func (g *ArithmeticGenerator) RandomLeaf(rng *rand.Rand) expr.Node {
	return expr.NewConstantInt(int64(rng.Intn(10) + 1))
}

func (g *ArithmeticGenerator) RandomUnary(rng *rand.Rand) UnaryOp {
	return OpNegate
}

var arithmeticBinary = []expr.Op{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv}

func (g *ArithmeticGenerator) RandomBinary(rng *rand.Rand) expr.Op {
	return arithmeticBinary[rng.Intn(len(arithmeticBinary))]
}

func (g *ArithmeticGenerator) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(g, rng, maxDepth)
}
