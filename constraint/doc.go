// Package constraint models single linear inequality constraints over
// real-valued variables, such as 2⋅x + y < 10.
//
// A constraint keeps its variable terms on the left-hand side as a
// {variable → coefficient} mapping and the constant on the right;
//   - Four comparison kinds exist (<, >, ≤, ≥), all convertible to the
//     canonical weak-less (≤) form
//   - Strict and weak comparisons convert into each other by offsetting the
//     constant by exactly one, which assumes integer-valued variable domains
//
// Every value in this package is immutable: transforms return new values and
// never mutate their receiver, so all operations are safe for concurrent use
// without coordination.
package constraint
