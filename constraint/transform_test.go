package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xadd-go/xadd/constraint"
)

func TestCanonical(t *testing.T) {
	assert := require.New(t)

	x2y1 := map[string]float64{"x": 2, "y": 1}
	neg := map[string]float64{"x": -2, "y": -1}

	cases := []struct {
		name string
		in   constraint.Constraint
		want constraint.Constraint
	}{
		{"weak-less is itself", constraint.New(constraint.LessOrEqual, x2y1, 9), constraint.New(constraint.LessOrEqual, x2y1, 9)},
		{"weak-greater sign-flips", constraint.New(constraint.GreaterOrEqual, x2y1, 9), constraint.New(constraint.LessOrEqual, neg, -9)},
		{"strict-less weakens", constraint.New(constraint.LessThan, x2y1, 10), constraint.New(constraint.LessOrEqual, x2y1, 9)},
		{"strict-greater flips then weakens", constraint.New(constraint.GreaterThan, x2y1, 9), constraint.New(constraint.LessOrEqual, neg, -10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Canonical()
			assert.True(got.Equal(tc.want), "got %s want %s", got, tc.want)
			assert.Equal(constraint.LessOrEqual, got.Symbol())
		})
	}
}

func TestFlip(t *testing.T) {
	assert := require.New(t)

	c := constraint.New(constraint.LessThan, map[string]float64{"x": 2, "y": -3}, 7)
	flipped := c.Flip()

	assert.Equal(constraint.GreaterThan, flipped.Symbol())
	assert.Equal(-2.0, flipped.Coefficient("x"))
	assert.Equal(3.0, flipped.Coefficient("y"))
	assert.Equal(-7.0, flipped.Constant())
	assert.True(flipped.Flip().Equal(c), "flip is an involution")
}

func TestInvert(t *testing.T) {
	assert := require.New(t)

	cases := []struct {
		in, want constraint.Symbol
	}{
		{constraint.LessThan, constraint.GreaterOrEqual},
		{constraint.GreaterThan, constraint.LessOrEqual},
		{constraint.LessOrEqual, constraint.GreaterThan},
		{constraint.GreaterOrEqual, constraint.LessThan},
	}
	coeffs := map[string]float64{"x": 2}
	for _, tc := range cases {
		c := constraint.New(tc.in, coeffs, 5)
		inverted := c.Invert()
		assert.Equal(tc.want, inverted.Symbol())
		assert.Equal(2.0, inverted.Coefficient("x"), "magnitudes are untouched")
		assert.Equal(5.0, inverted.Constant())
		assert.True(inverted.Invert().Equal(c), "negation is its own inverse")
	}
}

func TestStrictWeak(t *testing.T) {
	assert := require.New(t)

	coeffs := map[string]float64{"x": 1}

	weak := constraint.New(constraint.LessOrEqual, coeffs, 5)
	strict := weak.Strict()
	assert.Equal(constraint.LessThan, strict.Symbol())
	assert.Equal(6.0, strict.Constant())
	assert.True(strict.Weak().Equal(weak))

	strict = constraint.New(constraint.GreaterThan, coeffs, 5)
	weak = strict.Weak()
	assert.Equal(constraint.GreaterOrEqual, weak.Symbol())
	assert.Equal(6.0, weak.Constant())
	assert.True(weak.Strict().Equal(strict))

	// already-strict and already-weak are returned unchanged
	assert.True(strict.Strict().Equal(strict))
	assert.True(weak.Weak().Equal(weak))
}

func TestTimes(t *testing.T) {
	assert := require.New(t)

	c := constraint.New(constraint.LessOrEqual, map[string]float64{"x": 2, "y": 4}, 8)

	scaled, err := c.Times(0.5)
	assert.NoError(err)
	assert.Equal(constraint.LessOrEqual, scaled.Symbol())
	assert.Equal(1.0, scaled.Coefficient("x"))
	assert.Equal(2.0, scaled.Coefficient("y"))
	assert.Equal(4.0, scaled.Constant())

	_, err = c.Times(0)
	assert.Error(err)
}

func TestTimesNegative(t *testing.T) {
	assert := require.New(t)

	// -1 * (x > 5) is (-x < -5), algebraically x > 5 again
	c := constraint.New(constraint.GreaterThan, map[string]float64{"x": 1}, 5)
	scaled, err := c.Times(-1)
	assert.NoError(err)
	assert.Equal(constraint.LessThan, scaled.Symbol())
	assert.Equal(-1.0, scaled.Coefficient("x"))
	assert.Equal(-5.0, scaled.Constant())

	for _, x := range []float64{3, 5, 6, 100} {
		a := map[string]float64{"x": x}
		before, err := c.Evaluate(a)
		assert.NoError(err)
		after, err := scaled.Evaluate(a)
		assert.NoError(err)
		assert.Equal(before, after, "x=%v", x)
	}
}

func TestPartial(t *testing.T) {
	assert := require.New(t)

	// 2x + 3y <= 12 with y=2 reduces to 2x <= 6
	c := constraint.New(constraint.LessOrEqual, map[string]float64{"x": 2, "y": 3}, 12)
	reduced := c.Partial(map[string]float64{"y": 2})

	assert.Equal(constraint.LessOrEqual, reduced.Symbol())
	assert.Equal([]string{"x"}, reduced.Variables())
	assert.Equal(2.0, reduced.Coefficient("x"))
	assert.Equal(6.0, reduced.Constant())

	// substituting everything leaves a ground fact
	ground := c.Partial(map[string]float64{"x": 1, "y": 2})
	assert.True(ground.IsTautology())
	assert.True(ground.EvaluateValues(0, ground.Constant()))

	// variables absent from the assignment are kept
	kept := c.Partial(map[string]float64{"w": 4})
	assert.True(kept.Equal(c))
}
