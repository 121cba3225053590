package constraint

import (
	"encoding/binary"
	"hash/fnv"
	"maps"
	"math"
	"slices"
)

// A Constraint is a single linear inequality Σ cᵢ⋅vᵢ <sym> constant. It is an
// immutable value: every algebraic transform returns a new Constraint.
type Constraint struct {
	symbol   Symbol
	coeffs   map[string]float64
	constant float64
}

// New builds a constraint from a coefficient mapping and the right-hand side
// constant. The mapping is copied; zero coefficients are dropped so that
// IsSingular and IsTautology can rely on their absence.
func New(symbol Symbol, coefficients map[string]float64, constant float64) Constraint {
	coeffs := make(map[string]float64, len(coefficients))
	for v, c := range coefficients {
		if c != 0 {
			coeffs[v] = c
		}
	}
	return Constraint{symbol: symbol, coeffs: coeffs, constant: constant}
}

// Symbol returns the comparison kind.
func (c Constraint) Symbol() Symbol {
	return c.symbol
}

// Constant returns the right-hand side constant.
func (c Constraint) Constant() float64 {
	return c.constant
}

// Coefficients returns a copy of the coefficient mapping.
func (c Constraint) Coefficients() map[string]float64 {
	return maps.Clone(c.coeffs)
}

// Variables returns the constraint's variables in lexicographic order.
func (c Constraint) Variables() []string {
	vars := make([]string, 0, len(c.coeffs))
	for v := range c.coeffs {
		vars = append(vars, v)
	}
	slices.Sort(vars)
	return vars
}

// IsTautology reports whether the constraint has no free variable left.
func (c Constraint) IsTautology() bool {
	return len(c.coeffs) == 0
}

// IsSingular reports whether the constraint has exactly one free variable.
func (c Constraint) IsSingular() bool {
	return len(c.coeffs) == 1
}

// Coefficient returns the coefficient of v, or 0 when v does not occur in the
// constraint.
func (c Constraint) Coefficient(v string) float64 {
	return c.coeffs[v]
}

// ForcedCoefficient returns the coefficient of v and fails with a
// MissingVariableError when v does not occur in the constraint.
func (c Constraint) ForcedCoefficient(v string) (float64, error) {
	coeff, ok := c.coeffs[v]
	if !ok {
		return 0, MissingVariableError{Variable: v, Available: c.Variables()}
	}
	return coeff, nil
}

// Equal reports whether both constraints have the same comparison kind,
// coefficients and constant. Enumeration order of the mapping is irrelevant.
func (c Constraint) Equal(other Constraint) bool {
	return c.symbol == other.symbol &&
		c.constant == other.constant &&
		maps.Equal(c.coeffs, other.coeffs)
}

// HashCode hashes the canonical (sorted) enumeration of the coefficients, so
// equal constraints hash equally regardless of map iteration order.
func (c Constraint) HashCode() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range c.Variables() {
		h.Write([]byte(v))
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(c.coeffs[v]))
		h.Write(buf[:])
	}
	buf[0] = byte(c.symbol)
	h.Write(buf[:1])
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(c.constant))
	h.Write(buf[:])
	return h.Sum64()
}
