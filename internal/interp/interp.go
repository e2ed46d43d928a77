// Package interp evaluates arith expression trees.
package interp

import (
	"errors"

	"github.com/arith-lang/arith/internal/ast"
)

// ErrDivideByZero is returned when a division's right operand evaluates to zero.
var ErrDivideByZero = errors.New("division by zero")

// Evaluate folds an expression tree into its integer value by pure structural
// recursion; it has no state, so evaluating the same tree repeatedly yields
// the same result. Division truncates toward zero. Overflow follows native
// int64 wraparound semantics.
func Evaluate(e ast.Expr) (int64, error) {
	switch x := e.(type) {
	case *ast.NumberLiteral:
		return x.Value, nil
	case *ast.AddExpr:
		lhs, rhs, err := evaluateOperands(x.Lhs, x.Rhs)
		if err != nil {
			return 0, err
		}
		return lhs + rhs, nil
	case *ast.SubExpr:
		lhs, rhs, err := evaluateOperands(x.Lhs, x.Rhs)
		if err != nil {
			return 0, err
		}
		return lhs - rhs, nil
	case *ast.MulExpr:
		lhs, rhs, err := evaluateOperands(x.Lhs, x.Rhs)
		if err != nil {
			return 0, err
		}
		return lhs * rhs, nil
	case *ast.DivExpr:
		lhs, rhs, err := evaluateOperands(x.Lhs, x.Rhs)
		if err != nil {
			return 0, err
		}
		if rhs == 0 {
			return 0, ErrDivideByZero
		}
		return lhs / rhs, nil
	default:
		// The node set is closed; the parser cannot produce anything else.
		return 0, errors.New("unknown expression node")
	}
}

func evaluateOperands(lhs, rhs ast.Expr) (int64, int64, error) {
	l, err := Evaluate(lhs)
	if err != nil {
		return 0, 0, err
	}
	r, err := Evaluate(rhs)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}
