package constraint

import "errors"

// Coefficient maps are never mutated once built, so transforms that keep the
// magnitudes untouched (Invert, Strict, Weak) share the receiver's map instead
// of copying it.

// Flip multiplies both sides by -1: every coefficient and the constant are
// negated and the comparison direction reverses. Flip is an involution.
func (c Constraint) Flip() Constraint {
	coeffs := make(map[string]float64, len(c.coeffs))
	for v, coeff := range c.coeffs {
		coeffs[v] = -coeff
	}
	return Constraint{symbol: c.symbol.flip(), coeffs: coeffs, constant: -c.constant}
}

// Invert returns the logical complement: ¬(a<b) = (a≥b) and symmetric.
// Magnitudes are untouched; Invert is its own inverse and for every complete
// assignment the complement evaluates to the opposite truth value.
func (c Constraint) Invert() Constraint {
	return Constraint{symbol: c.symbol.invert(), coeffs: c.coeffs, constant: c.constant}
}

// Strict converts a weak comparison into the equivalent strict one over
// integer domains: a ≤ b becomes a < b+1, a ≥ b becomes a > b−1. Strict
// constraints are returned unchanged.
func (c Constraint) Strict() Constraint {
	switch c.symbol {
	case LessThan, GreaterThan:
		return c
	case LessOrEqual:
		return Constraint{symbol: LessThan, coeffs: c.coeffs, constant: c.constant + 1}
	case GreaterOrEqual:
		return Constraint{symbol: GreaterThan, coeffs: c.coeffs, constant: c.constant - 1}
	default:
		panic("unknown comparison symbol")
	}
}

// Weak converts a strict comparison into the equivalent weak one over integer
// domains: a < b becomes a ≤ b−1, a > b becomes a ≥ b+1. Weak constraints are
// returned unchanged.
func (c Constraint) Weak() Constraint {
	switch c.symbol {
	case LessOrEqual, GreaterOrEqual:
		return c
	case LessThan:
		return Constraint{symbol: LessOrEqual, coeffs: c.coeffs, constant: c.constant - 1}
	case GreaterThan:
		return Constraint{symbol: GreaterOrEqual, coeffs: c.coeffs, constant: c.constant + 1}
	default:
		panic("unknown comparison symbol")
	}
}

// Canonical returns the equivalent weak-less (≤) form:
//
//	a ≤ b   itself
//	a ≥ b   −a ≤ −b
//	a < b   a ≤ b−1
//	a > b   −a ≤ −b−1
//
// The unit offset on strict comparisons assumes integer-valued variable
// domains; it is a stated design decision of the representation, not a
// rounding step. Canonical is idempotent.
func (c Constraint) Canonical() Constraint {
	switch c.symbol {
	case LessOrEqual:
		return c
	case GreaterOrEqual:
		return c.Flip()
	case LessThan:
		return c.Weak()
	case GreaterThan:
		return c.Flip().Weak()
	default:
		panic("unknown comparison symbol")
	}
}

// Times scales every coefficient and the constant by k, reversing the
// comparison direction first when k is negative so the truth value is
// preserved for every assignment. k must be nonzero.
func (c Constraint) Times(k float64) (Constraint, error) {
	if k == 0 {
		return Constraint{}, errors.New("cannot scale a constraint by zero")
	}
	symbol := c.symbol
	if k < 0 {
		symbol = c.symbol.flip()
	}
	coeffs := make(map[string]float64, len(c.coeffs))
	for v, coeff := range c.coeffs {
		coeffs[v] = coeff * k
	}
	return Constraint{symbol: symbol, coeffs: coeffs, constant: c.constant * k}, nil
}

// Partial substitutes the variables present in assignment, folding each
// coefficient⋅value into the constant, and returns a constraint of the same
// kind over the remaining variables. Variables absent from assignment are
// kept. A fully-substituted constraint is a tautology or contradiction,
// decidable with EvaluateValues(0, constant).
func (c Constraint) Partial(assignment map[string]float64) Constraint {
	coeffs := make(map[string]float64, len(c.coeffs))
	constant := c.constant
	for v, coeff := range c.coeffs {
		if value, ok := assignment[v]; ok {
			constant -= value * coeff
		} else {
			coeffs[v] = coeff
		}
	}
	return Constraint{symbol: c.symbol, coeffs: coeffs, constant: constant}
}
