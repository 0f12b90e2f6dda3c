package rules

// init declares the fixed firing order in one place, rather than letting
// each rule self-register from its own file's init() and depend on the Go
// toolchain's (alphabetical, but incidental) file-compilation order.
// Fractions and poly-term arithmetic fire before the structural rewrites
// that create new opportunities for them (distribution, cancellation).
// Plain arithmetic fires before distribute/cancel too: a constant sum
// sitting inside a factor like "x * (2 + 3)" folds to "x * 5" before
// distribute gets a chance to spread it into "x*2 + x*3" — folding a
// closed numeric subexpression is always the more informative step.
func init() {
	Register("simplify_fraction", SimplifyFraction)
	Register("add_fractions", AddFractions)
	Register("common_denominator", CommonDenominator)
	Register("multiply_fractions", MultiplyFractions)
	Register("divide_poly_term", DividePolyTerm)
	Register("combine_like_terms", CombineLikeTerms)
	Register("multiply_poly_terms", MultiplyPolyTerms)
	Register("arithmetic", Arithmetic)
	Register("double_unary_minus", DoubleUnaryMinus)
	Register("absolute_value", AbsoluteValue)
	Register("cancel", Cancel)
	Register("distribute", Distribute)
}
