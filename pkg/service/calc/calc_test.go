package calc_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chiron/pkg/service/calc"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain expression", input: "3 * (12 + 4)", want: "3*(12+4)"},
		{name: "embedded in prose", input: "What is 3 * (12 + 4)?", want: "3*(12+4)"},
		{name: "thousand separators removed", input: "1,234.50 + 2", want: "1234.50+2"},
		{name: "currency and words stripped", input: "Price is $1,234.50!", want: "1234.50"},
		{name: "nothing numeric", input: "no numbers here", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.S(t, calc.Sanitize(tt.input)).Equal(tt.want)
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "precedence with parens", input: "3 * (12 + 4)", want: 48},
		{name: "simple addition", input: "2+2", want: 4},
		{name: "multiplication before addition", input: "2 + 3 * 4", want: 14},
		{name: "power is right associative", input: "2^3^2", want: 512},
		{name: "unary minus binds looser than power", input: "-2^2", want: -4},
		{name: "remainder", input: "10 % 3", want: 1},
		{name: "thousand separators", input: "(1,200 + 300) / 3", want: 500},
		{name: "question prose around expression", input: "What is 3 * (12 + 4)?", want: 48},
		{name: "nested parens", input: "((2+2)*(3-1))", want: 8},
		{name: "unary plus", input: "+5 - 2", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := calc.Evaluate(tt.input)
			gt.NoError(t, err).Required()
			gt.Number(t, v).Equal(tt.want)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty input", input: "", wantErr: calc.ErrEmptyExpression},
		{name: "no expression characters", input: "no numbers here", wantErr: calc.ErrEmptyExpression},
		{name: "operators without digits", input: "+-*", wantErr: calc.ErrNoDigit},
		{name: "unbalanced paren", input: "3*(2", wantErr: calc.ErrInvalidExpression},
		{name: "dangling operator", input: "4+", wantErr: calc.ErrInvalidExpression},
		{name: "double dot number", input: "3..5+1", wantErr: calc.ErrInvalidExpression},
		{name: "division by zero", input: "1/0", wantErr: calc.ErrNonFiniteResult},
		{name: "remainder by zero", input: "5%0", wantErr: calc.ErrNonFiniteResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Evaluate(tt.input)
			gt.Error(t, err).Is(tt.wantErr)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "small integer", value: 48, want: "48"},
		{name: "negative integer", value: -4, want: "-4"},
		{name: "repeating fraction to 8 significant digits", value: 1.0 / 3.0, want: "0.33333333"},
		{name: "float artifact stripped", value: 0.1 + 0.2, want: "0.3"},
		{name: "grouped thousands", value: 1234.5678, want: "1,234.5678"},
		{name: "grouped round number", value: 50000, want: "50,000"},
		{name: "negative grouped", value: -2500, want: "-2,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.S(t, calc.Format(tt.value)).Equal(tt.want)
		})
	}
}
