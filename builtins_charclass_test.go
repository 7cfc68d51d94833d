package ttm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-lang/ttm"
)

func TestCCLConsumesMaximalClassPrefix(t *testing.T) {
	assert.Equal(t, "123",
		run(t, "#<dcl;dig;0123456789>#<ds;s;123abc>#<ccl;dig;s>"))
}

func TestDNCLNegatesMembership(t *testing.T) {
	assert.Equal(t, "abc",
		run(t, "#<dncl;nondig;0123456789>#<ds;s;abc123>#<ccl;nondig;s>"))
}

func TestSCLAdvancesResidualWithoutEmitting(t *testing.T) {
	assert.Equal(t, "abc",
		run(t, "#<dcl;dig;0123456789>#<ds;s;123abc>#<scl;dig;s>#<cp;s>"))
}

func TestTCLReportsMembershipAndEndOfBody(t *testing.T) {
	assert.Equal(t, "T",
		run(t, "#<dcl;dig;0123456789>#<ds;s;1a>#<tcl;dig;s;T;F>"))
	assert.Equal(t, "F",
		run(t, "#<dcl;dig;0123456789>#<ds;s;a1>#<tcl;dig;s;T;F>"))
	assert.Equal(t, "F",
		run(t, "#<dcl;dig;0123456789>#<ds;s;>#<tcl;dig;s;T;F>"))
}

func TestECLRemovesClass(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<dcl;dig;0123456789>#<ecl;dig>#<ds;s;123>#<ccl;dig;s>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.ENoName, e.Kind)
}

func TestCCLOnBuiltinTargetIsNoPrim(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<dcl;dig;0123456789>#<ccl;dig;ad>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.ENoPrim, e.Kind)
}
