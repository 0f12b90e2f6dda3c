// Package exprgen generates random expr.Node trees for property-based
// tests (spec.md §8's "Property-based targets": random integer-constant
// expressions, and single-variable polynomials with small integer
// coefficients). Repurposes the teacher's pkg/pool Register/Get/Names
// registry and RandomLeaf/RandomUnary/RandomBinary/RandomTree interface
// shape verbatim, restricted to the node kinds this domain has — no
// factorial, alternating sign, or sqrt, since those are Non-goals here.
package exprgen

import (
	"fmt"
	"math/rand"

	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// UnaryOp enumerates this domain's unary operators. Negation is the only
// one, but the method stays in the Generator interface for shape parity
// with the teacher's four-method Pool interface.
type UnaryOp byte

const OpNegate UnaryOp = 0

// Generator provides random building blocks for constructing expr.Node
// trees, mirroring pkg/pool.Pool's shape in the teacher.
type Generator interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Node
	RandomUnary(rng *rand.Rand) UnaryOp
	RandomBinary(rng *rand.Rand) expr.Op
	RandomTree(rng *rand.Rand, maxDepth int) expr.Node
}

var registry = map[string]func() Generator{}

// Register adds a generator constructor to the registry.
func Register(name string, constructor func() Generator) {
	registry[name] = constructor
}

// Get returns a generator by name.
func Get(name string) (Generator, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered generator names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

// randomTree is shared by every Generator's RandomTree, biasing toward
// leaves at shallow depth to keep generated trees small, mirroring
// pkg/pool.go's randomTree helper.
func randomTree(g Generator, rng *rand.Rand, maxDepth int) expr.Node {
	if maxDepth <= 1 {
		return g.RandomLeaf(rng)
	}
	r := rng.Float64()
	switch {
	case r < 0.4:
		return g.RandomLeaf(rng)
	case r < 0.6:
		child := randomTree(g, rng, maxDepth-1)
		return &expr.UnaryMinus{Child: child}
	default:
		op := g.RandomBinary(rng)
		left := randomTree(g, rng, maxDepth-1)
		right := randomTree(g, rng, maxDepth-1)
		if op == expr.OpPow {
			// A random power exponent explodes fast; keep it a small
			// non-negative integer constant rather than another subtree.
			right = expr.NewConstantInt(int64(rng.Intn(4)))
		}
		return expr.NewOperator(op, left, right)
	}
}
