package frontend

// Expr is an opaque symbolic expression owned by the external algebra system.
type Expr any

// Algebra is the capability the external symbolic-algebra system provides to
// the compiler. Linearity checking is part of the collaborator's contract:
// LinearForm must fail when the expression is not linear in one of its free
// variables, and this package does not re-check it.
type Algebra interface {
	// Sub returns the symbolic difference lhs − rhs.
	Sub(lhs, rhs Expr) Expr
	// LinearForm extracts, for every free variable of e, its degree-1
	// coefficient, together with the constant term of e.
	LinearForm(e Expr) (coefficients map[string]float64, constant float64, err error)
}
