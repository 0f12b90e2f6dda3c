// Package changekind defines the closed vocabulary of step tags a rule or
// balance operation attaches to a rewrite. It mirrors the teacher's
// UnaryOp/BinaryOp enum-plus-name-table pattern in pkg/expr/node.go, scaled
// up to a single flat Kind instead of two operator enums.
package changekind

// Kind tags what a single rewrite step did, for display and for tests that
// assert a particular rule fired.
type Kind byte

const (
	Unknown Kind = iota

	// Fraction rules
	AddFractions
	CommonDenominator
	MultiplyFractions
	SimplifyFraction
	DividePolyTerm

	// Polynomial-term rules
	CombineLikeTerms
	MultiplyPolyTerms

	// Structural rewrites
	Distribute
	Cancel

	// Sign and absolute value
	ResolveAddUnaryMinus
	DoubleUnaryMinus
	AbsoluteValue

	// Pure arithmetic
	Arithmetic

	// Equation balance operations
	AddToBothSides
	SubtractFromBothSides
	MultiplyBothSides
	DivideFromBothSides
	SwapSides
)

var names = map[Kind]string{
	Unknown:               "UNKNOWN",
	AddFractions:          "ADD_FRACTIONS",
	CommonDenominator:     "COMMON_DENOMINATOR",
	MultiplyFractions:     "MULTIPLY_FRACTIONS",
	SimplifyFraction:      "SIMPLIFY_FRACTION",
	DividePolyTerm:        "DIVIDE_POLY_TERM",
	CombineLikeTerms:      "COMBINE_LIKE_TERMS",
	MultiplyPolyTerms:     "MULTIPLY_POLY_TERMS",
	Distribute:            "DISTRIBUTE",
	Cancel:                "CANCEL",
	ResolveAddUnaryMinus:  "RESOLVE_ADD_UNARY_MINUS",
	DoubleUnaryMinus:      "DOUBLE_UNARY_MINUS",
	AbsoluteValue:         "ABSOLUTE_VALUE",
	Arithmetic:            "ARITHMETIC",
	AddToBothSides:        "ADD_TO_BOTH_SIDES",
	SubtractFromBothSides: "SUBTRACT_FROM_BOTH_SIDES",
	MultiplyBothSides:     "MULTIPLY_BOTH_SIDES",
	DivideFromBothSides:   "DIVIDE_FROM_BOTH_SIDES",
	SwapSides:             "SWAP_SIDES",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}
