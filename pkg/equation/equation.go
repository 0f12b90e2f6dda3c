// Package equation models an equation or inequality — two expression
// trees joined by a comparator — and the balance operations (add,
// subtract, multiply, divide both sides, swap sides) that move it toward
// a solved form. It builds on pkg/expr the same way pkg/series/candidate.go
// builds its Candidate on top of the teacher's pkg/expr.ExprNode: a small
// struct pairing two trees, here with a comparator instead of a
// numerator/denominator split.
package equation

import "github.com/mathsteps-go/mathsteps/pkg/expr"

// Comparator is the relation between an equation's two sides.
type Comparator byte

const (
	Eq Comparator = iota
	Lt
	Lte
	Gt
	Gte
)

func (c Comparator) String() string {
	switch c {
	case Eq:
		return "="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	default:
		return "?"
	}
}

// Flip returns the comparator for swapped sides: a < b becomes b > a.
func (c Comparator) Flip() Comparator {
	switch c {
	case Lt:
		return Gt
	case Gt:
		return Lt
	case Lte:
		return Gte
	case Gte:
		return Lte
	default:
		return c
	}
}

// Reverse returns the comparator after multiplying or dividing both sides
// by a negative number: a < b becomes a > b.
func (c Comparator) Reverse() Comparator {
	switch c {
	case Lt:
		return Gt
	case Gt:
		return Lt
	case Lte:
		return Gte
	case Gte:
		return Lte
	default:
		return c
	}
}

// Equation is LHS Comparator RHS, e.g. "2x + 3 = 7".
type Equation struct {
	LHS        expr.Node
	Comparator Comparator
	RHS        expr.Node
}

func (e Equation) String() string {
	return e.LHS.String() + " " + e.Comparator.String() + " " + e.RHS.String()
}

func (e Equation) LaTeX() string {
	op := e.Comparator.String()
	switch e.Comparator {
	case Lte:
		op = "\\leq"
	case Gte:
		op = "\\geq"
	}
	return e.LHS.LaTeX() + " " + op + " " + e.RHS.LaTeX()
}

func (e Equation) Clone() Equation {
	return Equation{LHS: e.LHS.Clone(), Comparator: e.Comparator, RHS: e.RHS.Clone()}
}
