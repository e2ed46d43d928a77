package interp

import (
	"errors"
	"testing"

	"github.com/arith-lang/arith/internal/parser"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"42", 42},
		{"(7)", 7},
		{"2 + 3", 5},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"8 - 3 - 2", 3},
		{"7 / 2", 3},
		{"10 / 3 / 2", 1},
		{"2+3", 5},
		{"  2  +  3  ", 5},
		{"1 + 2 * 3 - 4 / 2", 5},
		{"(1 + 2) * (3 + 4)", 21},
	}

	for _, tt := range tests {
		expr, err := parser.New(tt.input).Parse()
		if err != nil {
			t.Fatalf("input %q - parse error: %v", tt.input, err)
		}

		got, err := Evaluate(expr)
		if err != nil {
			t.Fatalf("input %q - eval error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("input %q - result wrong. expected=%d, got=%d", tt.input, tt.expected, got)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	tests := []string{"1 / 0", "1 / (2 - 2)", "5 + 1 / 0"}

	for _, input := range tests {
		expr, err := parser.New(input).Parse()
		if err != nil {
			t.Fatalf("input %q - parse error: %v", input, err)
		}

		if _, err := Evaluate(expr); !errors.Is(err, ErrDivideByZero) {
			t.Errorf("input %q - expected ErrDivideByZero, got %v", input, err)
		}
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	expr, err := parser.New("2 + 3 * 4").Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := Evaluate(expr)
		if err != nil {
			t.Fatalf("run %d - eval error: %v", i, err)
		}
		if got != 14 {
			t.Errorf("run %d - result wrong. expected=14, got=%d", i, got)
		}
	}
}
