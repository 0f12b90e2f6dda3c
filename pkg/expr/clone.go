package expr

import "math/big"

func (c *Constant) Clone() Node {
	return &Constant{Value: new(big.Rat).Set(c.Value)}
}

func (s *Symbol) Clone() Node {
	return &Symbol{Name: s.Name}
}

func (u *UnaryMinus) Clone() Node {
	return &UnaryMinus{Child: u.Child.Clone()}
}

func (p *Parenthesis) Clone() Node {
	return &Parenthesis{Content: p.Content.Clone()}
}

func (f *Function) Clone() Node {
	return &Function{Name: f.Name, Arg: f.Arg.Clone()}
}

func (o *Operator) Clone() Node {
	children := make([]Node, len(o.Children))
	for i, c := range o.Children {
		children[i] = c.Clone()
	}
	return &Operator{Op: o.Op, Implicit: o.Implicit, Children: children}
}

// NodeCount and Depth mirror the teacher's per-kind recursive walks
// (pkg/expr/node.go's ExprNode methods), generalized to this node set.

func (c *Constant) NodeCount() int { return 1 }
func (s *Symbol) NodeCount() int   { return 1 }
func (u *UnaryMinus) NodeCount() int {
	return 1 + u.Child.NodeCount()
}
func (p *Parenthesis) NodeCount() int {
	return 1 + p.Content.NodeCount()
}
func (f *Function) NodeCount() int {
	return 1 + f.Arg.NodeCount()
}
func (o *Operator) NodeCount() int {
	n := 1
	for _, c := range o.Children {
		n += c.NodeCount()
	}
	return n
}

func (c *Constant) Depth() int { return 0 }
func (s *Symbol) Depth() int   { return 0 }
func (u *UnaryMinus) Depth() int {
	return 1 + u.Child.Depth()
}
func (p *Parenthesis) Depth() int {
	return 1 + p.Content.Depth()
}
func (f *Function) Depth() int {
	return 1 + f.Arg.Depth()
}
func (o *Operator) Depth() int {
	max := 0
	for _, c := range o.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}
