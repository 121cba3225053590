package constraint

import (
	"strconv"
	"strings"
)

// StringBuilder renders constraints in a deterministic human-readable form.
// It embeds a strings.Builder object for convenience.
type StringBuilder struct {
	strings.Builder
}

// NewStringBuilder returns a new StringBuilder.
func NewStringBuilder() *StringBuilder {
	return &StringBuilder{}
}

// WriteConstraint appends "c1⋅v1 + c2⋅v2 <sym> constant" to the current
// buffer; variables are written in lexicographic order so the rendering is
// stable for a given coefficient set.
func (sbb *StringBuilder) WriteConstraint(c Constraint) {
	vars := c.Variables()
	if len(vars) == 0 {
		sbb.WriteByte('0')
	}
	for i, v := range vars {
		sbb.WriteTerm(c.coeffs[v], v)
		if i+1 < len(vars) {
			sbb.WriteString(" + ")
		}
	}
	sbb.WriteByte(' ')
	sbb.WriteString(c.symbol.String())
	sbb.WriteByte(' ')
	sbb.WriteString(formatCoeff(c.constant))
}

// WriteTerm appends a single coeff⋅variable term to the current buffer.
func (sbb *StringBuilder) WriteTerm(coeff float64, v string) {
	switch coeff {
	case 1:
		// print the variable only
		sbb.WriteString(v)
	case -1:
		sbb.WriteByte('-')
		sbb.WriteString(v)
	default:
		sbb.WriteString(formatCoeff(coeff))
		sbb.WriteString("⋅")
		sbb.WriteString(v)
	}
}

func formatCoeff(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (c Constraint) String() string {
	sbb := NewStringBuilder()
	sbb.WriteConstraint(c)
	return sbb.String()
}
