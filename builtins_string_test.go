package ttm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGNTakesLeadingOrTrailingRunes(t *testing.T) {
	assert.Equal(t, "abc", run(t, "#<gn;3;abcdefgh>"))
	assert.Equal(t, "fgh", run(t, "#<gn;-3;abcdefgh>"))
	assert.Equal(t, "abcdefgh", run(t, "#<gn;99;abcdefgh>"))
}

func TestZLCReplacesOnlyTopLevelCommas(t *testing.T) {
	assert.Equal(t, "a;b(c,d)e", run(t, `#<zlc;a,b(c,d)e>`))
}

func TestZLCPFoldsParenGroups(t *testing.T) {
	assert.Equal(t, "x;a,b;c", run(t, `#<zlcp;x(a,b),c>`))
	assert.Equal(t, "A;B", run(t, `#<zlcp;A(B)>`))
	assert.Equal(t, "A;B;C", run(t, `#<zlcp;(A),(B),C>`))
}

func TestFlipReversesRunes(t *testing.T) {
	assert.Equal(t, "cba", run(t, "#<flip;abc>"))
}

func TestNormReturnsRuneLength(t *testing.T) {
	assert.Equal(t, "5", run(t, "#<norm;hello>"))
	assert.Equal(t, "0", run(t, "#<norm;>"))
}
