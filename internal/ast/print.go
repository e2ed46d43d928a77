package ast

import (
	"fmt"
	"io"
	"strings"
)

// TreePrinter renders an expression tree as indented text, one node per line,
// in pre-order (node header before children, lhs before rhs). This is a
// diagnostic facility; the rendered text carries no round-trip guarantee.
type TreePrinter struct {
	w io.Writer
}

// NewTreePrinter creates a printer writing to w.
func NewTreePrinter(w io.Writer) *TreePrinter {
	return &TreePrinter{w: w}
}

// Print renders e under the given label at depth zero.
func (tp *TreePrinter) Print(e Expr, label string) {
	tp.print(e, label, 0)
}

func (tp *TreePrinter) print(e Expr, label string, depth int) {
	fmt.Fprintf(tp.w, "%s%s:\n", indent(depth), label)

	switch x := e.(type) {
	case *NumberLiteral:
		fmt.Fprintf(tp.w, "%sNumberLiteral: %d\n", indent(depth+1), x.Value)
	case *AddExpr:
		tp.printBinary("AddExpr", x.Lhs, x.Rhs, depth+1)
	case *SubExpr:
		tp.printBinary("SubExpr", x.Lhs, x.Rhs, depth+1)
	case *MulExpr:
		tp.printBinary("MulExpr", x.Lhs, x.Rhs, depth+1)
	case *DivExpr:
		tp.printBinary("DivExpr", x.Lhs, x.Rhs, depth+1)
	}
}

func (tp *TreePrinter) printBinary(kind string, lhs, rhs Expr, depth int) {
	fmt.Fprintf(tp.w, "%s%s:\n", indent(depth), kind)
	tp.print(lhs, "lhs", depth+1)
	tp.print(rhs, "rhs", depth+1)
}

// indent is two spaces per depth level
func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
