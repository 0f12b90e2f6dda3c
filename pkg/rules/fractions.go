package rules

import (
	"math/big"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// AddFractions combines two constant-fraction addends that already share a
// denominator: a/c + b/c -> (a+b)/c. CommonDenominator handles the case
// where denominators differ.
func AddFractions(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpAdd {
		return n, changekind.Unknown, false
	}
	for i := 0; i < len(o.Children); i++ {
		a, aDen, aOK := fractionParts(o.Children[i])
		if !aOK {
			continue
		}
		for j := i + 1; j < len(o.Children); j++ {
			b, bDen, bOK := fractionParts(o.Children[j])
			if !bOK || aDen.Cmp(bDen) != 0 {
				continue
			}
			sumNum := new(big.Int).Add(a, b)
			replacement := expr.NewOperator(expr.OpDiv,
				&expr.Constant{Value: new(big.Rat).SetInt(sumNum)},
				&expr.Constant{Value: new(big.Rat).SetInt(aDen)})
			children := dropTwo(o.Children, i, j, replacement)
			return rebuildAdd(children), changekind.AddFractions, true
		}
	}
	return n, changekind.Unknown, false
}

// CommonDenominator rewrites a/b + c/d (b != d) to (a*d)/(b*d) + (c*b)/(b*d),
// the prerequisite step before AddFractions can combine them.
func CommonDenominator(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpAdd {
		return n, changekind.Unknown, false
	}
	for i := 0; i < len(o.Children); i++ {
		a, aDen, aOK := fractionParts(o.Children[i])
		if !aOK {
			continue
		}
		for j := i + 1; j < len(o.Children); j++ {
			b, bDen, bOK := fractionParts(o.Children[j])
			if !bOK || aDen.Cmp(bDen) == 0 {
				continue
			}
			newDen := new(big.Int).Mul(aDen, bDen)
			newA := new(big.Int).Mul(a, bDen)
			newB := new(big.Int).Mul(b, aDen)

			children := make([]expr.Node, len(o.Children))
			copy(children, o.Children)
			children[i] = expr.NewOperator(expr.OpDiv,
				&expr.Constant{Value: new(big.Rat).SetInt(newA)},
				&expr.Constant{Value: new(big.Rat).SetInt(newDen)})
			children[j] = expr.NewOperator(expr.OpDiv,
				&expr.Constant{Value: new(big.Rat).SetInt(newB)},
				&expr.Constant{Value: new(big.Rat).SetInt(newDen)})
			return rebuildAdd(children), changekind.CommonDenominator, true
		}
	}
	return n, changekind.Unknown, false
}

// MultiplyFractions combines two constant-fraction factors in a product:
// (a/b) * (c/d) -> (a*c)/(b*d).
func MultiplyFractions(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok || o.Op != expr.OpMul {
		return n, changekind.Unknown, false
	}
	for i := 0; i < len(o.Children); i++ {
		if !expr.IsConstantFraction(o.Children[i]) {
			continue
		}
		for j := i + 1; j < len(o.Children); j++ {
			if !expr.IsConstantFraction(o.Children[j]) {
				continue
			}
			aNum, aDen := fractionInts(o.Children[i])
			bNum, bDen := fractionInts(o.Children[j])
			newNum := new(big.Int).Mul(aNum, bNum)
			newDen := new(big.Int).Mul(aDen, bDen)
			replacement := expr.NewOperator(expr.OpDiv,
				&expr.Constant{Value: new(big.Rat).SetInt(newNum)},
				&expr.Constant{Value: new(big.Rat).SetInt(newDen)})
			children := dropTwo(o.Children, i, j, replacement)
			return rebuildMul(children), changekind.MultiplyFractions, true
		}
	}
	return n, changekind.Unknown, false
}

// SimplifyFraction reduces a constant fraction to lowest terms, e.g.
// 4/6 -> 2/3, and collapses an integral fraction like 6/3 to the bare
// Constant 2.
func SimplifyFraction(n expr.Node) (expr.Node, changekind.Kind, bool) {
	if !expr.IsConstantFraction(n) {
		return n, changekind.Unknown, false
	}
	num, den := fractionInts(n)
	if den.Sign() == 0 {
		return n, changekind.Unknown, false
	}
	reduced := new(big.Rat).SetFrac(num, den)
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	if g.Cmp(big.NewInt(1)) == 0 && den.Sign() > 0 {
		// already in lowest terms with a positive denominator
		return n, changekind.Unknown, false
	}
	if reduced.IsInt() {
		return &expr.Constant{Value: reduced}, changekind.SimplifyFraction, true
	}
	return expr.NewOperator(expr.OpDiv,
		&expr.Constant{Value: new(big.Rat).SetInt(reduced.Num())},
		&expr.Constant{Value: new(big.Rat).SetInt(reduced.Denom())}), changekind.SimplifyFraction, true
}

// --- helpers ---

func fractionParts(n expr.Node) (num, den *big.Int, ok bool) {
	if !expr.IsConstantFraction(n) {
		return nil, nil, false
	}
	num, den = fractionInts(n)
	return num, den, true
}

func fractionInts(n expr.Node) (num, den *big.Int) {
	o := n.(*expr.Operator)
	return o.Children[0].(*expr.Constant).Value.Num(), o.Children[1].(*expr.Constant).Value.Num()
}

func dropTwo(children []expr.Node, i, j int, replacement expr.Node) []expr.Node {
	out := make([]expr.Node, 0, len(children)-1)
	for k, c := range children {
		switch k {
		case i:
			out = append(out, replacement)
		case j:
			// skip, folded into replacement
		default:
			out = append(out, c)
		}
	}
	return out
}

func rebuildAdd(children []expr.Node) expr.Node {
	if len(children) == 1 {
		return children[0]
	}
	return &expr.Operator{Op: expr.OpAdd, Children: children}
}

func rebuildMul(children []expr.Node) expr.Node {
	if len(children) == 1 {
		return children[0]
	}
	return &expr.Operator{Op: expr.OpMul, Children: children}
}
