// Package normalize applies the structural rewrites that must hold before
// and after every rule fires: flattening n-ary +/*, eliminating transient
// subtraction, and stripping redundant parentheses. Folding pure-constant
// arithmetic is not done here; it is the rules.Arithmetic rule. None of
// these carry a changekind.Kind of their own — spec.md
// treats them as housekeeping the solver runs between rule applications,
// not steps a learner sees.
package normalize

import "github.com/mathsteps-go/mathsteps/pkg/expr"

// Flatten rebuilds n bottom-up so that no '+' has a '+' child and no '*'
// has a non-implicit '*' child, and every OpSub becomes
// Operator{OpAdd, [a, UnaryMinus{b}]}. An implicit product ("2x") keeps
// its Implicit flag and is not merged into an enclosing '*'.
// This is the first pass a freshly parsed or rule-produced tree goes
// through, matching the teacher's bottom-up recursive-rebuild style in
// pkg/expr/simplify.go.
func Flatten(n expr.Node) expr.Node {
	switch v := n.(type) {
	case *expr.Constant, *expr.Symbol:
		return n

	case *expr.UnaryMinus:
		return &expr.UnaryMinus{Child: Flatten(v.Child)}

	case *expr.Parenthesis:
		return &expr.Parenthesis{Content: Flatten(v.Content)}

	case *expr.Function:
		return &expr.Function{Name: v.Name, Arg: Flatten(v.Arg)}

	case *expr.Operator:
		return flattenOperator(v)

	default:
		return n
	}
}

func flattenOperator(o *expr.Operator) expr.Node {
	children := make([]expr.Node, len(o.Children))
	for i, c := range o.Children {
		children[i] = Flatten(c)
	}

	switch o.Op {
	case expr.OpSub:
		if len(children) != 2 {
			return &expr.Operator{Op: o.Op, Implicit: o.Implicit, Children: children}
		}
		return flattenOperator(&expr.Operator{Op: expr.OpAdd, Children: []expr.Node{
			children[0], &expr.UnaryMinus{Child: children[1]},
		}})

	case expr.OpAdd, expr.OpMul:
		flat := make([]expr.Node, 0, len(children))
		for _, c := range children {
			if co, ok := c.(*expr.Operator); ok && co.Op == o.Op && !co.Implicit {
				flat = append(flat, co.Children...)
				continue
			}
			flat = append(flat, c)
		}
		if len(flat) == 1 {
			return flat[0]
		}
		return &expr.Operator{Op: o.Op, Implicit: o.Implicit, Children: flat}

	default:
		return &expr.Operator{Op: o.Op, Implicit: o.Implicit, Children: children}
	}
}
