// Package parse is a recursive-descent, precedence-climbing parser that
// turns a plain-ASCII or LaTeX surface syntax into an expr.Node (or, when
// the input contains a comparator, an equation.Equation). Grounded in
// cheenar-genetic_series/pkg/expr/parse_latex.go's LatexParser: a
// position cursor over the raw string, Consume/SkipSpaces helpers, and a
// parseAddSub -> parseMul -> parseUnary -> parsePow -> parsePrimary
// precedence ladder, generalized from LaTeX-only input to both surface
// syntaxes recognized by a single grammar.
package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mathsteps-go/mathsteps/pkg/equation"
	"github.com/mathsteps-go/mathsteps/pkg/expr"
)

// Parser holds the cursor position over the source string.
type Parser struct {
	src string
	pos int
}

// New creates a parser for the given input string.
func New(src string) *Parser {
	return &Parser{src: src}
}

// Expression parses s as a bare expr.Node, with no comparator.
func Expression(s string) (expr.Node, error) {
	p := New(s)
	node, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.SkipSpaces()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected trailing input: %q", p.src[p.pos:])
	}
	return node, nil
}

// Equation parses s as "lhs CMP rhs", where CMP is one of =, <, <=, >, >=.
func Equation(s string) (equation.Equation, error) {
	p := New(s)
	lhs, err := p.ParseExpr()
	if err != nil {
		return equation.Equation{}, err
	}
	p.SkipSpaces()
	cmp, err := p.parseComparator()
	if err != nil {
		return equation.Equation{}, err
	}
	p.SkipSpaces()
	rhs, err := p.ParseExpr()
	if err != nil {
		return equation.Equation{}, err
	}
	p.SkipSpaces()
	if p.pos < len(p.src) {
		return equation.Equation{}, p.errorf("unexpected trailing input: %q", p.src[p.pos:])
	}
	return equation.Equation{LHS: lhs, Comparator: cmp, RHS: rhs}, nil
}

func (p *Parser) parseComparator() (equation.Comparator, error) {
	switch {
	case p.hasPrefix("<="):
		p.pos += 2
		return equation.Lte, nil
	case p.hasPrefix(">="):
		p.pos += 2
		return equation.Gte, nil
	case p.hasPrefix("\\leq"):
		p.pos += 4
		return equation.Lte, nil
	case p.hasPrefix("\\geq"):
		p.pos += 4
		return equation.Gte, nil
	case p.peek() == '=':
		p.pos++
		return equation.Eq, nil
	case p.peek() == '<':
		p.pos++
		return equation.Lt, nil
	case p.peek() == '>':
		p.pos++
		return equation.Gt, nil
	default:
		return 0, p.errorf("expected a comparator (=, <, <=, >, >=) at pos %d", p.pos)
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

// consume expects and consumes a literal string; errors if mismatch.
func (p *Parser) consume(s string) error {
	if !p.hasPrefix(s) {
		got := p.src[p.pos:]
		if len(got) > 20 {
			got = got[:20] + "..."
		}
		return p.errorf("expected %q at pos %d, got %q", s, p.pos, got)
	}
	p.pos += len(s)
	return nil
}

// SkipSpaces skips whitespace and LaTeX spacing commands.
func (p *Parser) SkipSpaces() {
	for p.pos < len(p.src) {
		if p.src[p.pos] == ' ' || p.src[p.pos] == '\t' {
			p.pos++
			continue
		}
		if p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
			next := p.src[p.pos+1]
			if next == ',' || next == ';' || next == '!' || next == ':' {
				p.pos += 2
				continue
			}
			if p.hasPrefix(`\quad`) {
				p.pos += 5
				continue
			}
		}
		break
	}
}

// ParseExpr parses a full additive expression, the entry point for any
// expression context (top level, inside parens, fraction numerator...).
func (p *Parser) ParseExpr() (expr.Node, error) {
	return p.parseAddSub()
}

// parseAddSub handles infix + and - (lowest precedence).
func (p *Parser) parseAddSub() (expr.Node, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		p.SkipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			p.SkipSpaces()
			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			left = expr.NewOperator(expr.OpAdd, left, right)
			continue
		case '-':
			p.pos++
			p.SkipSpaces()
			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			left = expr.NewOperator(expr.OpSub, left, right)
			continue
		}
		break
	}
	return left, nil
}

// parseMul handles explicit *, /, \cdot, \frac, and implicit
// juxtaposition multiplication ("2x", "x(x+1)").
func (p *Parser) parseMul() (expr.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.SkipSpaces()
		switch {
		case p.peek() == '*':
			p.pos++
			p.SkipSpaces()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.NewOperator(expr.OpMul, left, right)
		case p.hasPrefix(`\cdot`):
			p.pos += 5
			p.SkipSpaces()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.NewOperator(expr.OpMul, left, right)
		case p.peek() == '/':
			p.pos++
			p.SkipSpaces()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.NewOperator(expr.OpDiv, left, right)
		case p.canStartImplicitMul():
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &expr.Operator{Op: expr.OpMul, Implicit: true, Children: []expr.Node{left, right}}
		default:
			return left, nil
		}
	}
}

// parseUnary handles a leading unary minus, which binds tighter than
// +/- and *// but looser than ^.
func (p *Parser) parseUnary() (expr.Node, error) {
	p.SkipSpaces()
	if p.peek() == '-' {
		p.pos++
		p.SkipSpaces()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &expr.UnaryMinus{Child: child}, nil
	}
	return p.parsePow()
}

// parsePow handles right-associative exponentiation, the highest
// precedence binary operator.
func (p *Parser) parsePow() (expr.Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.SkipSpaces()
	if p.peek() == '^' {
		p.pos++
		var exp expr.Node
		if p.peek() == '{' {
			p.pos++
			exp, err = p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.consume("}"); err != nil {
				return nil, err
			}
		} else {
			exp, err = p.parseUnary()
			if err != nil {
				return nil, err
			}
		}
		return expr.NewOperator(expr.OpPow, base, exp), nil
	}
	return base, nil
}

// parsePrimary parses an atomic expression: a number, symbol, function
// call, parenthesized group, or \frac{}{}.
func (p *Parser) parsePrimary() (expr.Node, error) {
	p.SkipSpaces()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input at pos %d", p.pos)
	}

	if p.hasPrefix(`\frac{`) {
		p.pos += 6
		num, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume("}{"); err != nil {
			return nil, err
		}
		den, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume("}"); err != nil {
			return nil, err
		}
		return expr.NewOperator(expr.OpDiv, num, den), nil
	}

	if p.hasPrefix(`\left|`) {
		p.pos += 6
		child, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(`\right|`); err != nil {
			return nil, err
		}
		return &expr.Function{Name: expr.FuncAbs, Arg: child}, nil
	}

	if p.peek() == '|' {
		p.pos++
		child, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume("|"); err != nil {
			return nil, err
		}
		return &expr.Function{Name: expr.FuncAbs, Arg: child}, nil
	}

	if p.hasPrefix("abs(") {
		p.pos += 4
		child, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(")"); err != nil {
			return nil, err
		}
		return &expr.Function{Name: expr.FuncAbs, Arg: child}, nil
	}

	if p.hasPrefix("{") {
		p.pos++
		node, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume("}"); err != nil {
			return nil, err
		}
		return node, nil
	}

	if p.peek() == '(' {
		p.pos++
		node, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consume(")"); err != nil {
			return nil, err
		}
		return &expr.Parenthesis{Content: node}, nil
	}

	if unicode.IsDigit(rune(p.peek())) {
		return p.parseNumber()
	}

	if isIdentStart(rune(p.peek())) {
		return p.parseSymbol(), nil
	}

	got := p.src[p.pos:]
	if len(got) > 20 {
		got = got[:20] + "..."
	}
	return nil, p.errorf("unexpected token at pos %d: %q", p.pos, got)
}

// parseNumber parses an integer or decimal literal into an exact
// Constant, e.g. "3" -> 3/1, "0.25" -> 1/4.
func (p *Parser) parseNumber() (expr.Node, error) {
	start := p.pos
	for p.pos < len(p.src) && unicode.IsDigit(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.src) && unicode.IsDigit(rune(p.src[p.pos])) {
			p.pos++
		}
	}
	lit := p.src[start:p.pos]
	c, err := constantFromLiteral(lit)
	if err != nil {
		return nil, p.errorf("invalid number %q at pos %d: %v", lit, start, err)
	}
	return c, nil
}

// parseSymbol parses a bare identifier as a Symbol, stopping before a
// trailing digit so "x2" implicit-multiplies rather than naming a
// two-character symbol — matching spec.md's single-variable convention.
func (p *Parser) parseSymbol() *expr.Symbol {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isIdentContinue(rune(p.src[p.pos])) {
		p.pos++
	}
	return &expr.Symbol{Name: p.src[start:p.pos]}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return unicode.IsLetter(r)
}

// canStartImplicitMul reports whether the current position could begin a
// new primary, triggering implicit (juxtaposed) multiplication: "2x",
// "x(x+1)", "2\frac{1}{2}".
func (p *Parser) canStartImplicitMul() bool {
	if p.pos >= len(p.src) {
		return false
	}
	c := p.src[p.pos]
	if unicode.IsDigit(rune(c)) || isIdentStart(rune(c)) || c == '(' || c == '{' {
		return true
	}
	if c == '\\' {
		return p.hasPrefix(`\frac`) || p.hasPrefix(`\left|`)
	}
	return false
}
