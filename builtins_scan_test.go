package ttm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-lang/ttm"
)

func TestCCReadsOneCharacterAtATime(t *testing.T) {
	assert.Equal(t, "ab", run(t, "#<ds;s;abc>#<cc;s>#<cc;s>"))
}

func TestCNReadsCountCharactersClamped(t *testing.T) {
	assert.Equal(t, "ab", run(t, "#<ds;s;abc>#<cn;2;s>"))
	assert.Equal(t, "abc", run(t, "#<ds;s;abc>#<cn;99;s>"))
}

func TestCNNegativeCountIsNotNegativeError(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<ds;s;abc>#<cn;-1;s>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.ENotNegative, e.Kind)
}

func TestCCOnBuiltinTargetIsENoPrim(t *testing.T) {
	interp := ttm.New(nil)
	_, err := interp.Run("#<cc;cc>")
	require.Error(t, err)
	e, ok := ttm.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ttm.ENoPrim, e.Kind)
}

func TestCPStopsAtTopLevelSemicAndSkipsNestedOnes(t *testing.T) {
	assert.Equal(t, "a", run(t, `#<ds;s;a\;b>#<cp;s>`))
	// the stored body is the literal text "<a;b>" (escapes protect the
	// brackets and semicolon from call-argument interpretation while
	// defining it); cp's own open/close tracking then treats that '<' '>'
	// pair as nesting, so the embedded ';' at depth 1 never splits the
	// copied prefix and the whole bracketed text comes back intact. cp is
	// called passively so its result is not rescanned (which would drop
	// the brackets).
	assert.Equal(t, "<a;b>", run(t, `#<ds;s;\<a\;b\>>##<cp;s>`))
}

func TestSCNReturnsSpanBeforeSubstringOrFallback(t *testing.T) {
	assert.Equal(t, "ab", run(t, "#<ds;s;abXcd>#<scn;X;s;none>"))
	assert.Equal(t, "none", run(t, "#<ds;s;abcd>#<scn;Z;s;none>"))
}

func TestISCMatchesPrefixAtResidual(t *testing.T) {
	assert.Equal(t, "T", run(t, "#<ds;s;abc>#<isc;ab;s;T;F>"))
	assert.Equal(t, "F", run(t, "#<ds;s;abc>#<isc;xy;s;T;F>"))
}

func TestRRPResetsResidualToZero(t *testing.T) {
	assert.Equal(t, "abab", run(t, "#<ds;s;abc>#<cn;2;s>#<rrp;s>#<cn;2;s>"))
}

func TestEOSReportsEndOfBody(t *testing.T) {
	assert.Equal(t, "F", run(t, "#<ds;s;ab>#<eos;s;T;F>"))
	assert.Equal(t, "abT", run(t, "#<ds;s;ab>#<cn;2;s>#<eos;s;T;F>"))
}
