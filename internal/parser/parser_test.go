package parser

import (
	"strings"
	"testing"

	"github.com/arith-lang/arith/internal/ast"
)

func TestParseNumberLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"42", 42},
		{"(7)", 7},
		{"((123))", 123},
		{"  9  ", 9},
	}

	for _, tt := range tests {
		expr, err := New(tt.input).Parse()
		if err != nil {
			t.Fatalf("input %q - unexpected error: %v", tt.input, err)
		}

		lit, ok := expr.(*ast.NumberLiteral)
		if !ok {
			t.Fatalf("input %q - expr is not *ast.NumberLiteral. got=%T", tt.input, expr)
		}
		if lit.Value != tt.expected {
			t.Errorf("input %q - value wrong. expected=%d, got=%d", tt.input, tt.expected, lit.Value)
		}
	}
}

func TestPrecedence(t *testing.T) {
	// "2 + 3 * 4" must parse with the multiplication as the rhs of the
	// addition, not the other way around.
	expr, err := New("2 + 3 * 4").Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	add, ok := expr.(*ast.AddExpr)
	if !ok {
		t.Fatalf("root is not *ast.AddExpr. got=%T", expr)
	}

	lhs, ok := add.Lhs.(*ast.NumberLiteral)
	if !ok || lhs.Value != 2 {
		t.Fatalf("lhs wrong. expected NumberLiteral(2), got=%v", add.Lhs)
	}

	mul, ok := add.Rhs.(*ast.MulExpr)
	if !ok {
		t.Fatalf("rhs is not *ast.MulExpr. got=%T", add.Rhs)
	}

	if l, ok := mul.Lhs.(*ast.NumberLiteral); !ok || l.Value != 3 {
		t.Errorf("mul lhs wrong. expected NumberLiteral(3), got=%v", mul.Lhs)
	}
	if r, ok := mul.Rhs.(*ast.NumberLiteral); !ok || r.Value != 4 {
		t.Errorf("mul rhs wrong. expected NumberLiteral(4), got=%v", mul.Rhs)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	expr, err := New("(2 + 3) * 4").Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mul, ok := expr.(*ast.MulExpr)
	if !ok {
		t.Fatalf("root is not *ast.MulExpr. got=%T", expr)
	}
	if _, ok := mul.Lhs.(*ast.AddExpr); !ok {
		t.Fatalf("lhs is not *ast.AddExpr. got=%T", mul.Lhs)
	}
}

func TestLeftAssociativity(t *testing.T) {
	// "8 - 3 - 2" groups as "(8 - 3) - 2"
	expr, err := New("8 - 3 - 2").Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outer, ok := expr.(*ast.SubExpr)
	if !ok {
		t.Fatalf("root is not *ast.SubExpr. got=%T", expr)
	}

	inner, ok := outer.Lhs.(*ast.SubExpr)
	if !ok {
		t.Fatalf("lhs is not *ast.SubExpr. got=%T", outer.Lhs)
	}
	if r, ok := outer.Rhs.(*ast.NumberLiteral); !ok || r.Value != 2 {
		t.Errorf("outer rhs wrong. expected NumberLiteral(2), got=%v", outer.Rhs)
	}
	if l, ok := inner.Lhs.(*ast.NumberLiteral); !ok || l.Value != 8 {
		t.Errorf("inner lhs wrong. expected NumberLiteral(8), got=%v", inner.Lhs)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input       string
		wantMessage string
	}{
		{"", "primary expression expected"},
		{"+", "primary expression expected"},
		{"2 +", "primary expression expected"},
		{"2 + @", "primary expression expected"},
		{"* 3", "primary expression expected"},
		{"(2 + 3", "expected token )"},
		{"((1)", "expected token )"},
	}

	for _, tt := range tests {
		expr, err := New(tt.input).Parse()
		if err == nil {
			t.Fatalf("input %q - expected error, got expr %v", tt.input, expr)
		}

		parseErr, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("input %q - error is not *ParseError. got=%T", tt.input, err)
		}
		if !strings.Contains(parseErr.Error(), tt.wantMessage) {
			t.Errorf("input %q - error %q does not contain %q", tt.input, parseErr.Error(), tt.wantMessage)
		}
	}
}

func TestErrorPositions(t *testing.T) {
	_, err := New("2 + ").Parse()
	if err == nil {
		t.Fatal("expected error, got none")
	}

	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error is not *ParseError. got=%T", err)
	}
	if parseErr.Pos.Column != 5 {
		t.Errorf("error column wrong. expected=5, got=%d", parseErr.Pos.Column)
	}
}

func TestLiteralOutOfRange(t *testing.T) {
	// One digit past the int64 maximum.
	_, err := New("92233720368547758070").Parse()
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error %q does not mention out of range", err.Error())
	}
}

func TestTrailingTokensIgnored(t *testing.T) {
	expr, err := New("2 + 3 )").Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(*ast.AddExpr); !ok {
		t.Fatalf("root is not *ast.AddExpr. got=%T", expr)
	}
}
