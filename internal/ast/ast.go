// Package ast defines the arith expression tree.
//
// The node set is closed: a NumberLiteral leaf plus the four binary operator
// nodes. Consumers (the evaluator, the tree printer) dispatch with an
// exhaustive type switch instead of runtime type probing against an open
// hierarchy. Nodes are immutable after construction; every binary node owns
// exactly its two children and trees are acyclic with a single root.
package ast

import (
	"fmt"

	"github.com/arith-lang/arith/internal/lexer"
)

// Expr represents the base interface for all expression nodes
type Expr interface {
	// GetSpan returns the source span for this node
	GetSpan() lexer.Span
	// String returns a string representation of the node
	String() string

	exprNode()
}

// NumberLiteral represents a decoded integer literal
type NumberLiteral struct {
	Span  lexer.Span
	Value int64
}

func (n *NumberLiteral) GetSpan() lexer.Span { return n.Span }
func (n *NumberLiteral) String() string      { return fmt.Sprintf("NumberLiteral(%d)", n.Value) }
func (n *NumberLiteral) exprNode()           {}

// AddExpr represents an addition
type AddExpr struct {
	Span lexer.Span
	Lhs  Expr
	Rhs  Expr
}

func (e *AddExpr) GetSpan() lexer.Span { return e.Span }
func (e *AddExpr) String() string      { return fmt.Sprintf("AddExpr(%s, %s)", e.Lhs, e.Rhs) }
func (e *AddExpr) exprNode()           {}

// SubExpr represents a subtraction
type SubExpr struct {
	Span lexer.Span
	Lhs  Expr
	Rhs  Expr
}

func (e *SubExpr) GetSpan() lexer.Span { return e.Span }
func (e *SubExpr) String() string      { return fmt.Sprintf("SubExpr(%s, %s)", e.Lhs, e.Rhs) }
func (e *SubExpr) exprNode()           {}

// MulExpr represents a multiplication
type MulExpr struct {
	Span lexer.Span
	Lhs  Expr
	Rhs  Expr
}

func (e *MulExpr) GetSpan() lexer.Span { return e.Span }
func (e *MulExpr) String() string      { return fmt.Sprintf("MulExpr(%s, %s)", e.Lhs, e.Rhs) }
func (e *MulExpr) exprNode()           {}

// DivExpr represents a division
type DivExpr struct {
	Span lexer.Span
	Lhs  Expr
	Rhs  Expr
}

func (e *DivExpr) GetSpan() lexer.Span { return e.Span }
func (e *DivExpr) String() string      { return fmt.Sprintf("DivExpr(%s, %s)", e.Lhs, e.Rhs) }
func (e *DivExpr) exprNode()           {}

// SpanBetween builds a span covering two existing spans
func SpanBetween(start, end lexer.Span) lexer.Span {
	return lexer.Span{Start: start.Start, End: end.End}
}
