package normalize

import "github.com/mathsteps-go/mathsteps/pkg/expr"

// RemoveUnnecessaryParens strips a Parenthesis wrapper whenever its content
// binds at least as tightly as the slot it sits in: a parenthesized single
// leaf or a parenthesized subtree that is itself the sole operand of a
// looser-or-equal-precedence parent is indistinguishable in meaning from
// the bare content. Parens around a lower-precedence child of a
// higher-precedence operator (e.g. "(x + 1) * 2") are intentional and
// survive.
func RemoveUnnecessaryParens(n expr.Node) expr.Node {
	return removeParens(n, -1)
}

// removeParens walks n, dropping a Parenthesis when its content's own
// precedence is >= minPrec (the precedence demanded by its position).
func removeParens(n expr.Node, minPrec int) expr.Node {
	switch v := n.(type) {
	case *expr.Constant, *expr.Symbol:
		return n

	case *expr.UnaryMinus:
		return &expr.UnaryMinus{Child: removeParens(v.Child, precedenceOf(v.Child))}

	case *expr.Function:
		return &expr.Function{Name: v.Name, Arg: removeParens(v.Arg, -1)}

	case *expr.Parenthesis:
		inner := removeParens(v.Content, -1)
		if precedenceOf(inner) >= minPrec {
			return inner
		}
		return &expr.Parenthesis{Content: inner}

	case *expr.Operator:
		children := make([]expr.Node, len(v.Children))
		childMin := childPrecedence(v.Op)
		for i, c := range v.Children {
			children[i] = removeParens(c, childMin)
		}
		return &expr.Operator{Op: v.Op, Implicit: v.Implicit, Children: children}

	default:
		return n
	}
}

// precedenceOf reports the operator precedence of n, or a high value for
// atomic nodes (leaves, already-bracketed content) that never need parens.
func precedenceOf(n expr.Node) int {
	if o, ok := n.(*expr.Operator); ok {
		switch o.Op {
		case expr.OpAdd, expr.OpSub:
			return 1
		case expr.OpMul, expr.OpDiv:
			return 2
		case expr.OpPow:
			return 3
		}
	}
	return 4
}

// childPrecedence is the minimum precedence a direct child of op may have
// without needing parens to preserve meaning.
func childPrecedence(op expr.Op) int {
	switch op {
	case expr.OpAdd, expr.OpSub:
		return 1
	case expr.OpMul, expr.OpDiv:
		return 2
	case expr.OpPow:
		return 4 // exponentiation is right-binding; any looser child needs parens
	default:
		return 0
	}
}
