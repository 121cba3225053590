// Package xadd provides the building blocks for extended algebraic decision
// diagrams: linear inequality tests over real-valued variables, together with
// the algebra needed to canonicalize, negate, scale, specialize and bound them.
//
// The atomic constraint type lives in the constraint package; the frontend
// package compiles symbolic comparison expressions into constraints through an
// injected algebra system.
package xadd

import "github.com/blang/semver/v4"

// Version of the library
var Version = semver.MustParse("0.1.0")
