package frontend

import (
	"fmt"

	"github.com/xadd-go/xadd/constraint"
	"github.com/xadd-go/xadd/logger"
)

// ParseSymbol maps a comparison token to its Symbol.
func ParseSymbol(s string) (constraint.Symbol, error) {
	switch s {
	case "<":
		return constraint.LessThan, nil
	case ">":
		return constraint.GreaterThan, nil
	case "<=":
		return constraint.LessOrEqual, nil
	case ">=":
		return constraint.GreaterOrEqual, nil
	default:
		return 0, fmt.Errorf("unknown comparison symbol %q", s)
	}
}

// Compile extracts the linear form of lhs − rhs through the algebra system
// and builds the constraint for the given comparison symbol, canonicalized
// immediately. The constant term of the difference ends up negated on the
// right-hand side.
func Compile(a Algebra, lhs Expr, symbol constraint.Symbol, rhs Expr) (constraint.Constraint, error) {
	coeffs, cst, err := a.LinearForm(a.Sub(lhs, rhs))
	if err != nil {
		return constraint.Constraint{}, fmt.Errorf("extracting linear form: %w", err)
	}
	c := constraint.New(symbol, coeffs, -cst).Canonical()

	log := logger.Logger()
	log.Debug().Str("constraint", c.String()).Msg("compiled comparison")
	return c, nil
}

// NewTest compiles the comparison and wraps it together with its precomputed
// logical negation.
func NewTest(a Algebra, lhs Expr, symbol constraint.Symbol, rhs Expr) (constraint.Test, error) {
	c, err := Compile(a, lhs, symbol, rhs)
	if err != nil {
		return constraint.Test{}, err
	}
	return constraint.NewTest(c), nil
}
