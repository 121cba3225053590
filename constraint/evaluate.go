package constraint

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateValues applies the comparison operator to two scalars.
func (c Constraint) EvaluateValues(lhs, rhs float64) bool {
	switch c.symbol {
	case LessThan:
		return lhs < rhs
	case GreaterThan:
		return lhs > rhs
	case LessOrEqual:
		return lhs <= rhs
	case GreaterOrEqual:
		return lhs >= rhs
	default:
		panic("unknown comparison symbol")
	}
}

// Evaluate computes Σ coefficient⋅value under assignment and compares it to
// the constant. Every variable of the constraint must be assigned; a missing
// one fails with a MissingAssignmentError.
func (c Constraint) Evaluate(assignment map[string]float64) (bool, error) {
	var lhs float64
	for v, coeff := range c.coeffs {
		value, ok := assignment[v]
		if !ok {
			return false, MissingAssignmentError{Variable: v, Constraint: c.String()}
		}
		lhs += value * coeff
	}
	return c.EvaluateValues(lhs, c.constant), nil
}

// EvaluateBatch evaluates c against each assignment concurrently and returns
// the truth values indexed like the input. Constraints are immutable, so the
// evaluations need no coordination.
func EvaluateBatch(c Constraint, assignments []map[string]float64) ([]bool, error) {
	results := make([]bool, len(assignments))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, assignment := range assignments {
		i, assignment := i, assignment
		g.Go(func() error {
			r, err := c.Evaluate(assignment)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
