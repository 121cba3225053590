package constraint

// A Test wraps a single constraint stored in canonical (weak-less) form
// together with its precomputed logical negation (strict-greater, same
// coefficients and constant). The two sides back the true and false branches
// of a binary decision node.
type Test struct {
	canonical Constraint
	negated   Constraint
}

// NewTest canonicalizes c and precomputes its negation. The input may be of
// any comparison kind.
func NewTest(c Constraint) Test {
	canonical := c.Canonical()
	return Test{canonical: canonical, negated: canonical.Invert()}
}

// Constraint returns the canonical constraint.
func (t Test) Constraint() Constraint {
	return t.canonical
}

// Negation returns the logical complement of the canonical constraint.
func (t Test) Negation() Constraint {
	return t.negated
}

// Bounds tightens [lo, hi] for v along one branch of the test: the canonical
// constraint when branch is true, its negation otherwise.
func (t Test) Bounds(v string, lo, hi float64, branch bool) (float64, float64, error) {
	if branch {
		return t.canonical.Bounds(v, lo, hi)
	}
	return t.negated.Bounds(v, lo, hi)
}

// Evaluate evaluates the canonical constraint under a complete assignment.
func (t Test) Evaluate(assignment map[string]float64) (bool, error) {
	return t.canonical.Evaluate(assignment)
}

func (t Test) String() string {
	return t.canonical.String()
}

// Equal reports whether both tests wrap the same canonical constraint.
func (t Test) Equal(other Test) bool {
	return t.canonical.Equal(other.canonical)
}

// HashCode hashes the canonical constraint.
func (t Test) HashCode() uint64 {
	return t.canonical.HashCode()
}
