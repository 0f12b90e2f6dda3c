package rules

import (
	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Cancel removes an identical factor p from both numerator and denominator
// of a division, p/p -> 1 in the trivial case and (p*q)/p -> q in general.
// p may be any subtree; the match is structural (expr.Equal), not
// algebraic, per spec.md's scope.
func Cancel(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpDiv {
		return n, changekind.Unknown, false
	}
	numFactors, numIsProduct := factorsOf(o.Children[0])
	denFactors, denIsProduct := factorsOf(o.Children[1])
	if !numIsProduct {
		numFactors = []expr.Node{o.Children[0]}
	}
	if !denIsProduct {
		denFactors = []expr.Node{o.Children[1]}
	}

	for ni, nf := range numFactors {
		for di, df := range denFactors {
			if !nf.Equal(df) {
				continue
			}
			remNum := removeAt(numFactors, ni)
			remDen := removeAt(denFactors, di)
			return buildCancelResult(remNum, remDen), changekind.Cancel, true
		}
	}
	return n, changekind.Unknown, false
}

func factorsOf(n expr.Node) ([]expr.Node, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpMul {
		return nil, false
	}
	return o.Children, true
}

func removeAt(nodes []expr.Node, idx int) []expr.Node {
	out := make([]expr.Node, 0, len(nodes)-1)
	for i, n := range nodes {
		if i != idx {
			out = append(out, n)
		}
	}
	return out
}

func buildCancelResult(num, den []expr.Node) expr.Node {
	numNode := productOrOne(num)
	denNode := productOrOne(den)
	if isOne(denNode) {
		return numNode
	}
	return &expr.Operator{Op: expr.OpDiv, Children: []expr.Node{numNode, denNode}}
}

func productOrOne(factors []expr.Node) expr.Node {
	switch len(factors) {
	case 0:
		return expr.NewConstantInt(1)
	case 1:
		return factors[0]
	default:
		return &expr.Operator{Op: expr.OpMul, Children: factors}
	}
}

func isOne(n expr.Node) bool {
	c, ok := n.(*expr.Constant)
	return ok && c.Value.IsInt() && c.Value.Num().Sign() == 1 && c.Value.Num().Int64() == 1
}
