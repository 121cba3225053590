package constraint

// Bounds tightens the interval [lo, hi] for v under this constraint. The
// constraint must be singular in v; it is first normalized so v's coefficient
// is 1, then the kind-specific rule applies to the normalized constant c:
//
//	a < b    upper bound min(hi, c−1)
//	a > b    lower bound max(lo, c+1)
//	a ≤ b    upper bound min(hi, c)
//	a ≥ b    lower bound max(lo, c)
//
// The result never widens the input interval. An empty result (lo > hi) is
// not detected here; that is the caller's to check.
func (c Constraint) Bounds(v string, lo, hi float64) (float64, float64, error) {
	if !c.IsSingular() {
		return 0, 0, MultiVariableError{Variables: c.Variables()}
	}
	coeff, err := c.ForcedCoefficient(v)
	if err != nil {
		return 0, 0, err
	}
	normalized, err := c.Times(1 / coeff)
	if err != nil {
		return 0, 0, err
	}
	rhs := normalized.constant
	switch normalized.symbol {
	case LessThan:
		return lo, min(hi, rhs-1), nil
	case GreaterThan:
		return max(lo, rhs+1), hi, nil
	case LessOrEqual:
		return lo, min(hi, rhs), nil
	case GreaterOrEqual:
		return max(lo, rhs), hi, nil
	default:
		panic("unknown comparison symbol")
	}
}
