package ast

import (
	"strings"
	"testing"
)

func num(v int64) *NumberLiteral {
	return &NumberLiteral{Value: v}
}

func TestPrintNumberLiteral(t *testing.T) {
	var sb strings.Builder
	NewTreePrinter(&sb).Print(num(42), "expr")

	expected := "expr:\n  NumberLiteral: 42\n"
	if sb.String() != expected {
		t.Fatalf("output wrong.\nexpected:\n%s\ngot:\n%s", expected, sb.String())
	}
}

func TestPrintTree(t *testing.T) {
	// 2 + 3 * 4
	tree := &AddExpr{
		Lhs: num(2),
		Rhs: &MulExpr{Lhs: num(3), Rhs: num(4)},
	}

	var sb strings.Builder
	NewTreePrinter(&sb).Print(tree, "expr")

	expected := strings.Join([]string{
		"expr:",
		"  AddExpr:",
		"    lhs:",
		"      NumberLiteral: 2",
		"    rhs:",
		"      MulExpr:",
		"        lhs:",
		"          NumberLiteral: 3",
		"        rhs:",
		"          NumberLiteral: 4",
		"",
	}, "\n")

	if sb.String() != expected {
		t.Fatalf("output wrong.\nexpected:\n%s\ngot:\n%s", expected, sb.String())
	}
}

func TestPrintOrderIsPreOrder(t *testing.T) {
	// (8 - 3) / 5: the node header must precede both children and lhs must
	// precede rhs.
	tree := &DivExpr{
		Lhs: &SubExpr{Lhs: num(8), Rhs: num(3)},
		Rhs: num(5),
	}

	var sb strings.Builder
	NewTreePrinter(&sb).Print(tree, "expr")
	out := sb.String()

	div := strings.Index(out, "DivExpr:")
	sub := strings.Index(out, "SubExpr:")
	n8 := strings.Index(out, "NumberLiteral: 8")
	n3 := strings.Index(out, "NumberLiteral: 3")
	n5 := strings.Index(out, "NumberLiteral: 5")

	for i, idx := range []int{div, sub, n8, n3, n5} {
		if idx < 0 {
			t.Fatalf("line %d missing from output:\n%s", i, out)
		}
	}
	if !(div < sub && sub < n8 && n8 < n3 && n3 < n5) {
		t.Fatalf("pre-order violated: div=%d sub=%d n8=%d n3=%d n5=%d\n%s",
			div, sub, n8, n3, n5, out)
	}
}
