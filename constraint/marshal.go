package constraint

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// wire layer for serialization; field numbers are part of the format.
type wireConstraint struct {
	Symbol   uint8              `cbor:"1,keyasint"`
	Coeffs   map[string]float64 `cbor:"2,keyasint"`
	Constant float64            `cbor:"3,keyasint"`
}

// MarshalBinary serializes the constraint with deterministic CBOR encoding,
// so equal constraints produce identical bytes.
func (c Constraint) MarshalBinary() ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(wireConstraint{
		Symbol:   uint8(c.symbol),
		Coeffs:   c.coeffs,
		Constant: c.constant,
	})
}

// UnmarshalBinary reads a constraint serialized by MarshalBinary.
func (c *Constraint) UnmarshalBinary(data []byte) error {
	var w wireConstraint
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Symbol > uint8(GreaterOrEqual) {
		return fmt.Errorf("unknown comparison symbol %d", w.Symbol)
	}
	*c = New(Symbol(w.Symbol), w.Coeffs, w.Constant)
	return nil
}

// MarshalBinary serializes the canonical constraint only; the negation is
// recomputed on read.
func (t Test) MarshalBinary() ([]byte, error) {
	return t.canonical.MarshalBinary()
}

// UnmarshalBinary reads a test serialized by MarshalBinary.
func (t *Test) UnmarshalBinary(data []byte) error {
	var c Constraint
	if err := c.UnmarshalBinary(data); err != nil {
		return err
	}
	*t = NewTest(c)
	return nil
}
