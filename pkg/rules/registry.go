// Package rules holds the individual rewrite rules the solver fires one at
// a time. Each rule inspects a node and either returns a rewritten node
// with the changekind.Kind that explains it, or declines. Named
// registration follows the teacher's pkg/pool Register/Get/Names pattern
// (pkg/pool/pool.go), kept here for introspection and testing; the solver
// itself walks Ordered(), a fixed slice, rather than iterating this map, so
// firing order never depends on map iteration.
package rules

import (
	"fmt"

	"github.com/mathsteps-go/mathsteps/pkg/changekind"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Rule inspects n and, if it applies, returns the rewritten node, the kind
// of change it made, and ok=true. n is never mutated.
type Rule func(n expr.Node) (expr.Node, changekind.Kind, bool)

var registry = map[string]Rule{}

// order is the fixed firing sequence the solver consults, in registration
// order: fraction and polynomial-term rules first, then plain arithmetic,
// then the sign and absolute-value rules, then cancellation and
// distribution last, so a step never collapses a constant before a more
// specific, more informative rule had the chance to fire on it.
var order []string

// Register adds a named rule to the registry and appends it to the fixed
// firing order. Every rule is registered from the single init() in
// order.go, so the firing order is declared in one place.
func Register(name string, r Rule) {
	registry[name] = r
	order = append(order, name)
}

// Get returns a rule by name.
func Get(name string) (Rule, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule: %s", name)
	}
	return r, nil
}

// Names returns every registered rule name, in no particular order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

// Ordered returns the rules in their fixed firing order.
func Ordered() []Rule {
	rs := make([]Rule, len(order))
	for i, name := range order {
		rs[i] = registry[name]
	}
	return rs
}
