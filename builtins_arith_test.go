package ttm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-lang/ttm"
)

func TestADAndMUVariadicIdentities(t *testing.T) {
	assert.Equal(t, "0", run(t, "#<ad>"))
	assert.Equal(t, "1", run(t, "#<mu>"))
	assert.Equal(t, "60", run(t, "#<ad;10;20;30>"))
	assert.Equal(t, "24", run(t, "#<mu;2;3;4>"))
}

func TestSUDVDVR(t *testing.T) {
	assert.Equal(t, "-1", run(t, "#<su;4;5>"))
	assert.Equal(t, "3", run(t, "#<dv;10;3>"))
	assert.Equal(t, "1", run(t, "#<dvr;10;3>"))
}

func TestDVDVRFloorOnNegativeOperands(t *testing.T) {
	assert.Equal(t, "-4", run(t, "#<dv;-7;2>"))
	assert.Equal(t, "1", run(t, "#<dvr;-7;2>"))
}

func TestDVRByZeroIsArithmeticError(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<dvr;4;0>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.EArithmetic, e.Kind)
}

func TestABS(t *testing.T) {
	assert.Equal(t, "7", run(t, "#<abs;-7>"))
	assert.Equal(t, "7", run(t, "#<abs;7>"))
}

func TestNumericComparisons(t *testing.T) {
	assert.Equal(t, "yes", run(t, "#<eq;3;3;yes;no>"))
	assert.Equal(t, "no", run(t, "#<eq;3;4;yes;no>"))
	assert.Equal(t, "yes", run(t, "#<gt;5;3;yes;no>"))
	assert.Equal(t, "yes", run(t, "#<lt;3;5;yes;no>"))
}

func TestLexicalComparisons(t *testing.T) {
	assert.Equal(t, "yes", run(t, "#<eq?;abc;abc;yes;no>"))
	assert.Equal(t, "yes", run(t, "#<gt?;b;a;yes;no>"))
	assert.Equal(t, "yes", run(t, "#<lt?;a;b;yes;no>"))
}

func TestDecimalParseFailureIsDecimalError(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<ad;notanumber>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.EDecimal, e.Kind)
}
