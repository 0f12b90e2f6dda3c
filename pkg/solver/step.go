package solver

import (
	"context"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
	"github.com/mathsteps-go/mathsteps/pkg/normalize"
	"github.com/mathsteps-go/mathsteps/pkg/rules"
)

// Advance applies normalize.Flatten and normalize.RemoveUnnecessaryParens,
// then fires at most one rule from rules.Apply. It returns the rewritten
// tree and changed=false when no rule applied (a fixed point). A normalize
// pass with no rule match still returns changed=false: flatten/parens are
// housekeeping, not a step a learner sees, per spec.md's step contract.
func Advance(n expr.Node) (result expr.Node, kind changekind.Kind, changed bool) {
	normalized := normalize.RemoveUnnecessaryParens(normalize.Flatten(n))
	result, kind, changed = rules.Apply(normalized)
	if !changed {
		return normalized, changekind.Unknown, false
	}
	return normalize.RemoveUnnecessaryParens(normalize.Flatten(result)), kind, true
}

// Simplify runs Advance to a fixed point, returning the final tree and the
// trace of steps taken. ctx is checked between firings (not mid-rule —
// individual rules are non-blocking pure functions), mirroring the
// teacher's worker-boundary cancellation discipline in pkg/engine/engine.go,
// generalized from per-generation to per-step.
func Simplify(ctx context.Context, n expr.Node) (expr.Node, []Step, error) {
	current := normalize.RemoveUnnecessaryParens(normalize.Flatten(n))
	var trace []Step

	for i := 0; i < MaxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return current, trace, err
		}
		next, kind, changed := Advance(current)
		if !changed {
			return current, trace, nil
		}
		trace = append(trace, Step{Before: current, After: next, Kind: kind})
		current = next
	}
	return current, trace, &ErrRuleLoop{Cap: MaxSteps, Trace: trace}
}

// StepThrough is Simplify with a clearer name for callers that want the
// full trace as the primary result rather than just the final tree.
func StepThrough(ctx context.Context, n expr.Node) ([]Step, error) {
	_, trace, err := Simplify(ctx, n)
	return trace, err
}
