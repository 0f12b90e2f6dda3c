package rules

import (
	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Apply tries each rule in Ordered(), in turn, searching the whole tree
// bottom-up for the first node it applies to. The first rule that matches
// anywhere wins; ties within a rule are broken by innermost-first,
// leftmost-first traversal. This realizes spec.md's "fixed rule order,
// first-match-fires" requirement without a dynamic registry governing
// order — Ordered() is a declared slice, not a map iteration.
func Apply(n expr.Node) (expr.Node, changekind.Kind, bool) {
	for _, rule := range Ordered() {
		if result, kind, changed := applyOnce(rule, n); changed {
			return result, kind, true
		}
	}
	return n, changekind.Unknown, false
}

// applyOnce searches n bottom-up for the first location rule applies,
// returning the tree with that one location rewritten.
func applyOnce(rule Rule, n expr.Node) (expr.Node, changekind.Kind, bool) {
	switch v := n.(type) {
	case *expr.UnaryMinus:
		if child, kind, ok := applyOnce(rule, v.Child); ok {
			return &expr.UnaryMinus{Child: child}, kind, true
		}

	case *expr.Parenthesis:
		if content, kind, ok := applyOnce(rule, v.Content); ok {
			return &expr.Parenthesis{Content: content}, kind, true
		}

	case *expr.Function:
		if arg, kind, ok := applyOnce(rule, v.Arg); ok {
			return &expr.Function{Name: v.Name, Arg: arg}, kind, true
		}

	case *expr.Operator:
		children := make([]expr.Node, len(v.Children))
		copy(children, v.Children)
		for i, c := range v.Children {
			if rewritten, kind, ok := applyOnce(rule, c); ok {
				children[i] = rewritten
				return &expr.Operator{Op: v.Op, Implicit: v.Implicit, Children: children}, kind, true
			}
		}
	}

	return rule(n)
}
