package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sentinel errors for expression evaluation
var (
	ErrEmptyExpression   = goerr.New("expression is empty after sanitizing")
	ErrNoDigit           = goerr.New("expression contains no digits")
	ErrInvalidExpression = goerr.New("expression cannot be parsed")
	ErrNonFiniteResult   = goerr.New("result is not a finite number")
)

// Sanitize reduces free text to a bare arithmetic expression: everything
// except digits and `+ - * / % ^ ( ) .` is stripped, and `,` is treated as
// a thousand separator and removed.
func Sanitize(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case strings.ContainsRune("+-*/%^().", r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Evaluate sanitizes raw text and evaluates it as an arithmetic expression
// with standard operator precedence. `%` is the floating-point remainder
// and `^` is exponentiation. Division by zero and other degenerate inputs
// surface as ErrNonFiniteResult rather than a panic.
func Evaluate(raw string) (float64, error) {
	expr := Sanitize(raw)
	if expr == "" {
		return 0, goerr.Wrap(ErrEmptyExpression, "nothing to evaluate", goerr.V("input", raw))
	}
	if !strings.ContainsAny(expr, "0123456789") {
		return 0, goerr.Wrap(ErrNoDigit, "nothing to evaluate", goerr.V("expr", expr))
	}

	p := &parser{input: expr}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, goerr.Wrap(ErrInvalidExpression, "unexpected trailing input",
			goerr.V("expr", expr), goerr.V("pos", p.pos))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, goerr.Wrap(ErrNonFiniteResult, "evaluation produced a non-finite value",
			goerr.V("expr", expr))
	}
	return v, nil
}

var englishPrinter = message.NewPrinter(language.English)

// Format renders a finite result for display: values of magnitude 1000 and
// above get locale grouping with at most 4 fraction digits, smaller values
// are rounded to 8 significant digits with trailing zeros stripped.
func Format(v float64) string {
	if math.Abs(v) >= 1000 {
		return englishPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(4)))
	}
	return strconv.FormatFloat(v, 'g', 8, 64)
}

// parser is a recursive-descent evaluator over a sanitized expression.
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/'|'%') unary)*
//	unary   := ('-'|'+') unary | power
//	power   := primary ('^' unary)?
//	primary := number | '(' expr ')'
//
// Unary minus binds looser than `^`, so -2^2 evaluates to -4.
type parser struct {
	input string
	pos   int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/' && op != '%') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op {
		case '*':
			v *= rhs
		case '/':
			v /= rhs
		case '%':
			v = math.Mod(v, rhs)
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if c, ok := p.peek(); ok && (c == '-' || c == '+') {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if c == '-' {
			return -v, nil
		}
		return v, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if c, ok := p.peek(); ok && c == '^' {
		p.pos++
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, goerr.Wrap(ErrInvalidExpression, "expression ends unexpectedly",
			goerr.V("expr", p.input))
	}

	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return 0, goerr.Wrap(ErrInvalidExpression, "missing closing parenthesis",
				goerr.V("expr", p.input), goerr.V("pos", p.pos))
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 0, goerr.Wrap(ErrInvalidExpression, "expected a number or parenthesis",
			goerr.V("expr", p.input), goerr.V("pos", p.pos))
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidExpression, "malformed number",
			goerr.V("token", p.input[start:p.pos]))
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
