package expr

import "math/big"

// Term is the polynomial-term lens over a subtree: coef * symbol^exponent,
// with coef and exponent optionally implicit (1). It is a read-only view,
// not a node kind — AsTerm recognizes the shape, Term.Rebuild produces the
// canonical subtree back. Modeled on the coefficient/non-numerical-factor
// split of tinkerator-algex's terms.Term (other_examples), adapted to a
// single symbol instead of an arbitrary factor slice since this spec's
// polynomial terms are single-variable.
type Term struct {
	Negative bool  // true when the coefficient carries an implicit/explicit minus sign
	Coef     Node  // Constant or constant-fraction Operator; nil means implicit 1
	Symbol   string
	Exponent Node // nil means implicit 1
}

// AsTerm recognizes n as a polynomial term per spec.md §3's bottom-up
// decision: a lone Symbol, Symbol^exponent, Constant*(one of those), or a
// UnaryMinus of one of those (which negates the coefficient).
func AsTerm(n Node) (Term, bool) {
	switch v := n.(type) {
	case *Symbol:
		return Term{Symbol: v.Name}, true

	case *UnaryMinus:
		t, ok := AsTerm(v.Child)
		if !ok {
			return Term{}, false
		}
		t.Negative = !t.Negative
		return t, true

	case *Operator:
		if v.Op == OpPow && len(v.Children) == 2 {
			if sym, ok := v.Children[0].(*Symbol); ok {
				return Term{Symbol: sym.Name, Exponent: v.Children[1]}, true
			}
			return Term{}, false
		}
		if v.Op == OpMul && len(v.Children) == 2 {
			a, b := v.Children[0], v.Children[1]
			if isCoefficientShape(a) {
				if t, ok := AsTerm(b); ok && t.Coef == nil {
					t.Coef = a
					return t, true
				}
			}
			if isCoefficientShape(b) {
				if t, ok := AsTerm(a); ok && t.Coef == nil {
					t.Coef = b
					return t, true
				}
			}
		}
		return Term{}, false

	default:
		return Term{}, false
	}
}

// isCoefficientShape reports whether n is a Constant or a constant fraction —
// the two shapes spec.md §3 allows as a polynomial-term coefficient.
func isCoefficientShape(n Node) bool {
	return IsConstant(n) || IsConstantFraction(n)
}

// CoefValue returns the term's coefficient as an exact rational, folding
// in Negative and treating a nil Coef as 1. It only succeeds when Coef (if
// present) is a plain Constant or a fully-constant fraction; a symbolic
// coefficient (not possible per AsTerm's recognition rules, but checked
// defensively) returns ok=false.
func (t Term) CoefValue() (*big.Rat, bool) {
	v := big.NewRat(1, 1)
	if t.Coef != nil {
		switch c := t.Coef.(type) {
		case *Constant:
			v = new(big.Rat).Set(c.Value)
		case *Operator:
			if c.Op == OpDiv && len(c.Children) == 2 {
				num, numOK := c.Children[0].(*Constant)
				den, denOK := c.Children[1].(*Constant)
				if !numOK || !denOK || den.Value.Sign() == 0 {
					return nil, false
				}
				v = new(big.Rat).Quo(num.Value, den.Value)
			} else {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	if t.Negative {
		v.Neg(v)
	}
	return v, true
}

// ExponentEqual reports whether two (possibly nil/implicit-1) exponents
// are structurally identical, the comparison combineLikeTerms groups by.
func ExponentEqual(a, b Node) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		// An implicit 1 only matches an explicit Constant 1.
		present := a
		if present == nil {
			present = b
		}
		c, ok := present.(*Constant)
		return ok && c.Value.Cmp(big.NewRat(1, 1)) == 0
	}
	return a.Equal(b)
}

// Rebuild constructs the canonical subtree for the term: coef * symbol^exp,
// omitting an implicit coefficient of 1 and an implicit exponent of 1. The
// coefficient (when rational) is first folded with the Negative flag into
// one signed value; a negative result is then emitted as a UnaryMinus
// wrapped around the term with the positive coefficient, so a rebuilt term
// never has both a UnaryMinus wrapper and a negative coefficient.
func (t Term) Rebuild() Node {
	var symPart Node = &Symbol{Name: t.Symbol}
	if t.Exponent != nil {
		if c, ok := t.Exponent.(*Constant); !ok || c.Value.Cmp(big.NewRat(1, 1)) != 0 {
			symPart = NewOperator(OpPow, symPart, t.Exponent)
		}
	}

	coefVal, coefIsRat := t.CoefValue()
	if !coefIsRat {
		// Defensive fallback; AsTerm never produces a non-rational Coef.
		if t.Coef == nil {
			return symPart
		}
		return NewOperator(OpMul, t.Coef, symPart)
	}

	if coefVal.Cmp(big.NewRat(1, 1)) == 0 {
		return symPart
	}
	if coefVal.Cmp(big.NewRat(-1, 1)) == 0 {
		return &UnaryMinus{Child: symPart}
	}

	neg := coefVal.Sign() < 0
	abs := new(big.Rat).Abs(coefVal)
	var coefNode Node
	if abs.IsInt() {
		coefNode = &Constant{Value: abs}
	} else {
		coefNode = NewOperator(OpDiv, &Constant{Value: new(big.Rat).SetInt(abs.Num())}, &Constant{Value: new(big.Rat).SetInt(abs.Denom())})
	}
	product := &Operator{Op: OpMul, Implicit: true, Children: []Node{coefNode, symPart}}
	if neg {
		return &UnaryMinus{Child: product}
	}
	return product
}
