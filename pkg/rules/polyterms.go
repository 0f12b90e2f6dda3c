package rules

import (
	"math/big"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// CombineLikeTerms merges the first two addends of a flattened '+' that are
// polynomial terms in the same symbol with equal exponents: 2x + 3x -> 5x,
// x - x -> 0 (a pair whose coefficients sum to 0 is dropped, leaving 0
// only when nothing else remains). Constant addends are left for
// the arithmetic rule.
func CombineLikeTerms(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpAdd {
		return n, changekind.Unknown, false
	}
	terms := make([]expr.Term, len(o.Children))
	recognized := make([]bool, len(o.Children))
	for i, c := range o.Children {
		if t, ok := expr.AsTerm(c); ok {
			terms[i] = t
			recognized[i] = true
		}
	}

	for i := 0; i < len(o.Children); i++ {
		if !recognized[i] {
			continue
		}
		for j := i + 1; j < len(o.Children); j++ {
			if !recognized[j] {
				continue
			}
			if terms[i].Symbol != terms[j].Symbol || !expr.ExponentEqual(terms[i].Exponent, terms[j].Exponent) {
				continue
			}
			ci, iOK := terms[i].CoefValue()
			cj, jOK := terms[j].CoefValue()
			if !iOK || !jOK {
				continue
			}
			sum := new(big.Rat).Add(ci, cj)
			if sum.Sign() == 0 {
				if children := foldPair(expr.OpAdd, o.Children, i, j, sum); len(children) > 0 {
					return rebuildAdd(children), changekind.CombineLikeTerms, true
				}
				return expr.NewConstantInt(0), changekind.CombineLikeTerms, true
			}
			merged := expr.Term{Coef: &expr.Constant{Value: sum}, Symbol: terms[i].Symbol, Exponent: terms[i].Exponent}
			children := dropTwo(o.Children, i, j, merged.Rebuild())
			return rebuildAdd(children), changekind.CombineLikeTerms, true
		}
	}
	return n, changekind.Unknown, false
}

// MultiplyPolyTerms combines two polynomial-term factors in a flattened
// '*': x^2 * x^3 -> x^5, 2x * 3x -> 6x^2, grounded in the same-symbol
// exponent-addition rule spec.md §3 describes.
func MultiplyPolyTerms(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpMul {
		return n, changekind.Unknown, false
	}
	terms := make([]expr.Term, len(o.Children))
	recognized := make([]bool, len(o.Children))
	for i, c := range o.Children {
		if t, ok := expr.AsTerm(c); ok {
			terms[i] = t
			recognized[i] = true
		}
	}

	for i := 0; i < len(o.Children); i++ {
		if !recognized[i] {
			continue
		}
		for j := i + 1; j < len(o.Children); j++ {
			if !recognized[j] || terms[i].Symbol != terms[j].Symbol {
				continue
			}
			ci, iOK := terms[i].CoefValue()
			cj, jOK := terms[j].CoefValue()
			if !iOK || !jOK {
				continue
			}
			coefVal := new(big.Rat).Mul(ci, cj)
			expSum := addExponents(terms[i].Exponent, terms[j].Exponent)
			merged := expr.Term{Coef: &expr.Constant{Value: coefVal}, Symbol: terms[i].Symbol, Exponent: expSum}
			children := dropTwo(o.Children, i, j, merged.Rebuild())
			return rebuildMul(children), changekind.MultiplyPolyTerms, true
		}
	}
	return n, changekind.Unknown, false
}

// DividePolyTerm divides one polynomial term by another of the same
// symbol, subtracting exponents: x^5 / x^2 -> x^3.
func DividePolyTerm(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpDiv {
		return n, changekind.Unknown, false
	}
	numTerm, numOK := expr.AsTerm(o.Children[0])
	denTerm, denOK := expr.AsTerm(o.Children[1])
	if !numOK || !denOK || numTerm.Symbol != denTerm.Symbol || numTerm.Symbol == "" {
		return n, changekind.Unknown, false
	}
	numCoef, ok1 := numTerm.CoefValue()
	denCoef, ok2 := denTerm.CoefValue()
	if !ok1 || !ok2 || denCoef.Sign() == 0 {
		return n, changekind.Unknown, false
	}
	coefVal := new(big.Rat).Quo(numCoef, denCoef)
	expDiff := subExponents(numTerm.Exponent, denTerm.Exponent)
	merged := expr.Term{Symbol: numTerm.Symbol, Exponent: expDiff}
	if coefVal.Cmp(big.NewRat(1, 1)) != 0 {
		merged.Coef = &expr.Constant{Value: coefVal}
	}
	return merged.Rebuild(), changekind.DividePolyTerm, true
}

func exponentValue(e expr.Node) *big.Rat {
	if e == nil {
		return big.NewRat(1, 1)
	}
	if c, ok := e.(*expr.Constant); ok {
		return c.Value
	}
	return nil
}

// exponentNode turns a possibly-implicit exponent into an explicit node,
// for building a symbolic sum/difference that can't be folded numerically.
func exponentNode(e expr.Node) expr.Node {
	if e == nil {
		return expr.NewConstantInt(1)
	}
	return e
}

// addExponents combines two exponents for x^a * x^b -> x^(a+b). When both
// are constant it folds the sum outright; otherwise — a or b symbolic,
// e.g. x^a * x^b with a variable a — it builds the OpAdd expression
// itself, rather than silently dropping one or both exponents.
func addExponents(a, b expr.Node) expr.Node {
	av, bv := exponentValue(a), exponentValue(b)
	if av == nil || bv == nil {
		return &expr.Operator{Op: expr.OpAdd, Children: []expr.Node{exponentNode(a), exponentNode(b)}}
	}
	sum := new(big.Rat).Add(av, bv)
	if sum.Cmp(big.NewRat(1, 1)) == 0 {
		return nil
	}
	return &expr.Constant{Value: sum}
}

// subExponents is addExponents for x^a / x^b -> x^(a-b).
func subExponents(a, b expr.Node) expr.Node {
	av, bv := exponentValue(a), exponentValue(b)
	if av == nil || bv == nil {
		return &expr.Operator{Op: expr.OpSub, Children: []expr.Node{exponentNode(a), exponentNode(b)}}
	}
	diff := new(big.Rat).Sub(av, bv)
	if diff.Cmp(big.NewRat(1, 1)) == 0 {
		return nil
	}
	return &expr.Constant{Value: diff}
}
