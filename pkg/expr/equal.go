package expr

// Equal reports structural equality: same kind, same operator, same
// children in the same order, equal rational value for constants. This
// backs like-term grouping, division cancellation's exact-node match, and
// the "p/p when p is any identical subtree" rule. It does not apply any
// algebraic identity — (x+1) and (1+x) are not Equal.
func (c *Constant) Equal(other Node) bool {
	o, ok := other.(*Constant)
	return ok && c.Value.Cmp(o.Value) == 0
}

func (s *Symbol) Equal(other Node) bool {
	o, ok := other.(*Symbol)
	return ok && s.Name == o.Name
}

func (u *UnaryMinus) Equal(other Node) bool {
	o, ok := other.(*UnaryMinus)
	return ok && u.Child.Equal(o.Child)
}

func (p *Parenthesis) Equal(other Node) bool {
	o, ok := other.(*Parenthesis)
	return ok && p.Content.Equal(o.Content)
}

func (f *Function) Equal(other Node) bool {
	o, ok := other.(*Function)
	return ok && f.Name == o.Name && f.Arg.Equal(o.Arg)
}

func (op *Operator) Equal(other Node) bool {
	o, ok := other.(*Operator)
	if !ok || op.Op != o.Op || len(op.Children) != len(o.Children) {
		return false
	}
	for i, c := range op.Children {
		if !c.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
