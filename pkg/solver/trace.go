package solver

import (
	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Step records one rewrite: the tree before, the tree after, and the kind
// of change that produced it. Before/After are independent snapshots —
// neither aliases a node the solver will go on to mutate, since every
// rule and normalize pass builds new nodes rather than editing in place.
type Step struct {
	Before expr.Node
	After  expr.Node
	Kind   changekind.Kind
}

// MaxSteps bounds how many rule firings Simplify/StepThrough will attempt
// before reporting ErrRuleLoop. It is generous enough for any expression
// this rule set can legitimately simplify, and small enough that a
// genuinely looping pair of rules fails fast.
const MaxSteps = 500
