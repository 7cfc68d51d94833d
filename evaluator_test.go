package ttm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-lang/ttm"
)

func run(t *testing.T, program string) string {
	t.Helper()
	interp := ttm.New(nil)
	out, err := interp.Run(program)
	require.NoError(t, err)
	return out
}

func TestRoundTripDefinitionAndCall(t *testing.T) {
	assert.Equal(t, "hi there", run(t, "#<ds;x;hi there>#<x>"))
}

func TestArityMismatchIsFatal(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<su;1>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.EFewParms, e.Kind)
}

func TestDivisionByZero(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<dv;4;0>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.EArithmetic, e.Kind)
}

func TestUnknownNameIsFatal(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<nosuchname;1>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.ENoName, e.Kind)
}

func TestEraseOfLockedNameIsNoOp(t *testing.T) {
	assert.Equal(t, "kept", run(t, "#<ds;x;kept>#<lf;x>#<es;x>#<x>"))
}

func TestCreationMarkCoherenceWithinOneExpansion(t *testing.T) {
	// f's body "A-A" becomes two CREATE sentinels via cr; within one
	// expansion both resolve to the same freshly minted value, and the
	// next call to f mints a different one (§4.4, §8 "Creation-mark
	// coherence").
	out := run(t, "#<ds;f;A-A>#<cr;f;A>#<f>;#<f>")
	calls := strings.Split(out, ";")
	require.Len(t, calls, 2)

	for _, call := range calls {
		halves := strings.Split(call, "-")
		require.Len(t, halves, 2)
		assert.Equal(t, halves[0], halves[1])
	}
	assert.NotEqual(t, calls[0], calls[1])
}

func TestActivePassiveEquivalenceForPureStrings(t *testing.T) {
	active := run(t, "#<ds;f;plain>#<f>")
	passive := run(t, "#<ds;f;plain>##<f>")
	assert.Equal(t, active, passive)
}

func TestRrpIdempotence(t *testing.T) {
	out1 := run(t, "#<ds;x;abcdef>#<cc;x>#<rrp;x>#<cc;x>")
	out2 := run(t, "#<ds;x;abcdef>#<cc;x>#<rrp;x>#<rrp;x>#<cc;x>")
	assert.Equal(t, out1, out2)
}

func TestSegmentMarkBeyondArgcIsSkipped(t *testing.T) {
	// f's sole segment mark (index 1) is never filled when f is called
	// with no arguments (argc == 1, just the function name) — the mark
	// is silently skipped rather than erroring (§4.4).
	assert.Equal(t, "[]", run(t, "#<ds;f;<[X]>>#<ss;f;X>#<f>"))
}

func TestNestedCallsToDepth(t *testing.T) {
	// 60 calls nested inside one another's arguments, each passing its
	// single argument straight through, within the default stacksize.
	prog := "#<ds;id;X>#<ss;id;X>" + strings.Repeat("#<id;", 60) + "ok" + strings.Repeat(">", 60)
	assert.Equal(t, "ok", run(t, prog))
}

func TestStackOverflowOnDeepRecursion(t *testing.T) {
	interp := ttm.New(nil)
	// Each call nested inside another's arguments pushes its frame while
	// the enclosing call is still being parsed, so nesting deeper than the
	// default stacksize (128) must trip ESTACKOVERFLOW rather than
	// recursing without bound.
	_, err := interp.Run(strings.Repeat("#<ad;", 200) + "0" + strings.Repeat(">", 200))
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.EStackOverflow, e.Kind)
}

func TestEscapedSharpDoesNotTriggerCall(t *testing.T) {
	// only '#' is escaped; the following <notacall> is an ordinary
	// angle-quoted literal whose brackets are dropped.
	assert.Equal(t, "#notacall", run(t, `\#<notacall>`))
}

func TestUnescapedAngleDropsBracketsAtTopLevel(t *testing.T) {
	assert.Equal(t, "plain text", run(t, "<plain text>"))
}

