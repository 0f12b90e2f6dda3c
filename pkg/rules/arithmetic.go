package rules

import (
	"math/big"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Arithmetic folds the first pair of closed numeric operands it finds in
// an Add or Mul node's children — a bare Constant, but also a signed or
// parenthesized one like "-3", since "x + (-3) + 3" must fold its two
// numeric addends together to ever reach a fixed point — one pair at a
// time, the way the fraction and poly-term rules fold one pair at a time.
// It also folds a Constant^Constant node outright. Division is left to
// the fraction rules, since a constant '/' is itself a meaningful
// fraction, not noise to fold away. Fraction and poly-term rules precede
// this one in the fixed order, so they get first chance at a constant
// subtree that they can say something more specific about.
func Arithmetic(n expr.Node) (expr.Node, changekind.Kind, bool) {
	o, ok := n.(*expr.Operator)
	if !ok {
		return n, changekind.Unknown, false
	}

	if o.Op == expr.OpPow {
		if len(o.Children) == 2 && expr.IsConstant(o.Children[0]) && expr.IsConstant(o.Children[1]) {
			if v, ok := o.Eval(); ok {
				return &expr.Constant{Value: v}, changekind.Arithmetic, true
			}
		}
		return n, changekind.Unknown, false
	}

	if o.Op != expr.OpAdd && o.Op != expr.OpMul {
		return n, changekind.Unknown, false
	}

	for i := 0; i < len(o.Children); i++ {
		if !isFoldable(o.Children[i]) {
			continue
		}
		for j := i + 1; j < len(o.Children); j++ {
			if !isFoldable(o.Children[j]) {
				continue
			}
			pair := &expr.Operator{Op: o.Op, Children: []expr.Node{o.Children[i], o.Children[j]}}
			v, ok := pair.Eval()
			if !ok {
				continue
			}
			children := foldPair(o.Op, o.Children, i, j, v)
			if len(children) == 0 {
				return identityFor(o.Op), changekind.Arithmetic, true
			}
			if o.Op == expr.OpAdd {
				return rebuildAdd(children), changekind.Arithmetic, true
			}
			return rebuildMul(children), changekind.Arithmetic, true
		}
	}
	return n, changekind.Unknown, false
}

// foldPair drops children[i] and children[j], replacing them with a
// Constant(v) node — unless v is the operator's identity element (0 for
// Add, 1 for Mul), in which case the pair simply vanishes rather than
// leaving a literal "+ 0" or "* 1" behind.
func foldPair(op expr.Op, children []expr.Node, i, j int, v *big.Rat) []expr.Node {
	isIdentity := (op == expr.OpAdd && v.Sign() == 0) || (op == expr.OpMul && v.Cmp(big.NewRat(1, 1)) == 0)
	if isIdentity {
		out := make([]expr.Node, 0, len(children)-2)
		for k, c := range children {
			if k != i && k != j {
				out = append(out, c)
			}
		}
		return out
	}
	return dropTwo(children, i, j, &expr.Constant{Value: v})
}

// isFoldable reports whether n is a closed numeric subexpression — not
// just a bare Constant, but also a signed or parenthesized one like
// "-3" or "(3)" — so that "x + (-3) + 3" can fold its two numeric
// addends together instead of only ever matching a bare Constant pair.
func isFoldable(n expr.Node) bool {
	if expr.ContainsSymbol(n) {
		return false
	}
	_, ok := n.Eval()
	return ok
}

func identityFor(op expr.Op) expr.Node {
	if op == expr.OpAdd {
		return expr.NewConstantInt(0)
	}
	return expr.NewConstantInt(1)
}
