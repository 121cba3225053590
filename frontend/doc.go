// Package frontend compiles symbolic comparison expressions into constraint
// values. The symbolic algebra itself lives behind the Algebra interface; the
// frontend only consumes the linear forms extracted from it and never
// inspects expressions.
package frontend
