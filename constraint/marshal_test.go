package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xadd-go/xadd/constraint"
)

func TestConstraintRoundTrip(t *testing.T) {
	assert := require.New(t)

	c := constraint.New(constraint.GreaterOrEqual, map[string]float64{"x": 2.5, "y": -1}, 7)

	data, err := c.MarshalBinary()
	assert.NoError(err)

	var decoded constraint.Constraint
	assert.NoError(decoded.UnmarshalBinary(data))
	assert.True(decoded.Equal(c))
}

func TestTestRoundTrip(t *testing.T) {
	assert := require.New(t)

	test := constraint.NewTest(constraint.New(constraint.GreaterThan, map[string]float64{"x": 1}, 3))

	data, err := test.MarshalBinary()
	assert.NoError(err)

	var decoded constraint.Test
	assert.NoError(decoded.UnmarshalBinary(data))
	assert.True(decoded.Equal(test))
	assert.True(decoded.Negation().Equal(test.Negation()), "the negation is recomputed on read")
}

func TestMarshalDeterministic(t *testing.T) {
	assert := require.New(t)

	a := constraint.New(constraint.LessOrEqual, map[string]float64{"x": 2, "y": 1, "z": 3}, 9)
	b := constraint.New(constraint.LessOrEqual, map[string]float64{"z": 3, "y": 1, "x": 2}, 9)

	da, err := a.MarshalBinary()
	assert.NoError(err)
	db, err := b.MarshalBinary()
	assert.NoError(err)
	assert.Equal(da, db, "equal constraints must serialize identically")
}

func TestUnmarshalRejectsUnknownSymbol(t *testing.T) {
	assert := require.New(t)

	c := constraint.New(constraint.LessThan, map[string]float64{"x": 1}, 0)
	data, err := c.MarshalBinary()
	assert.NoError(err)

	// symbol is the first field; corrupt it past the enum range.
	// wire format: map {1: symbol, ...}; the symbol byte follows the key 0x01.
	for i := range data {
		if data[i] == 0x01 && i+1 < len(data) {
			data[i+1] = 0x17 // 23, a valid CBOR tiny uint, not a Symbol
			break
		}
	}
	var decoded constraint.Constraint
	assert.Error(decoded.UnmarshalBinary(data))
}
