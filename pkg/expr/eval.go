package expr

import "math/big"

// Eval folds a constant-only subtree to an exact rational, failing (ok=false)
// the moment it meets a Symbol, a non-integer power, or a division by zero.
// It backs the rules package's arithmetic folding and the equation solver's
// constant-only fast path; it never approximates, mirroring the exact
// big.Rat arithmetic robpike-ivy's value/bigrat.go performs instead of
// falling back to float64.
func (c *Constant) Eval() (*big.Rat, bool) {
	return new(big.Rat).Set(c.Value), true
}

func (s *Symbol) Eval() (*big.Rat, bool) {
	return nil, false
}

func (u *UnaryMinus) Eval() (*big.Rat, bool) {
	v, ok := u.Child.Eval()
	if !ok {
		return nil, false
	}
	return new(big.Rat).Neg(v), true
}

func (p *Parenthesis) Eval() (*big.Rat, bool) {
	return p.Content.Eval()
}

func (f *Function) Eval() (*big.Rat, bool) {
	v, ok := f.Arg.Eval()
	if !ok {
		return nil, false
	}
	switch f.Name {
	case FuncAbs:
		return new(big.Rat).Abs(v), true
	default:
		return nil, false
	}
}

func (o *Operator) Eval() (*big.Rat, bool) {
	switch o.Op {
	case OpAdd:
		sum := big.NewRat(0, 1)
		for _, c := range o.Children {
			v, ok := c.Eval()
			if !ok {
				return nil, false
			}
			sum.Add(sum, v)
		}
		return sum, true

	case OpMul:
		prod := big.NewRat(1, 1)
		for _, c := range o.Children {
			v, ok := c.Eval()
			if !ok {
				return nil, false
			}
			prod.Mul(prod, v)
		}
		return prod, true

	case OpSub:
		if len(o.Children) != 2 {
			return nil, false
		}
		l, ok := o.Children[0].Eval()
		if !ok {
			return nil, false
		}
		r, ok := o.Children[1].Eval()
		if !ok {
			return nil, false
		}
		return new(big.Rat).Sub(l, r), true

	case OpDiv:
		if len(o.Children) != 2 {
			return nil, false
		}
		l, ok := o.Children[0].Eval()
		if !ok {
			return nil, false
		}
		r, ok := o.Children[1].Eval()
		if !ok || r.Sign() == 0 {
			return nil, false
		}
		return new(big.Rat).Quo(l, r), true

	case OpPow:
		if len(o.Children) != 2 {
			return nil, false
		}
		base, ok := o.Children[0].Eval()
		if !ok {
			return nil, false
		}
		expVal, ok := o.Children[1].Eval()
		if !ok || !expVal.IsInt() {
			return nil, false
		}
		exp := expVal.Num().Int64()
		return ratPow(base, exp)

	default:
		return nil, false
	}
}

// ratPow raises base to an integer power by repeated squaring, inverting
// for negative exponents. base==0 with a negative exponent fails.
func ratPow(base *big.Rat, exp int64) (*big.Rat, bool) {
	if exp < 0 {
		if base.Sign() == 0 {
			return nil, false
		}
		pos, ok := ratPow(base, -exp)
		if !ok {
			return nil, false
		}
		return new(big.Rat).Inv(pos), true
	}
	result := big.NewRat(1, 1)
	b := new(big.Rat).Set(base)
	for exp > 0 {
		if exp%2 == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
		exp /= 2
	}
	return result, true
}
