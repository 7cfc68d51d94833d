package ttm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBufferInvariants(t *testing.T) {
	b := NewStringBufferFromString("hello")
	assert.LessOrEqual(t, b.Pos(), b.Len())
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 'h', b.next())
	assert.Equal(t, 1, b.Pos())
	assert.Equal(t, 'e', b.peek(0))
	assert.Equal(t, 'l', b.peek(1))
	b.skip(2)
	assert.Equal(t, 3, b.Pos())
	assert.Equal(t, 'l', b.next())
	assert.Equal(t, 'o', b.next())
	assert.True(t, b.atEOF())
	assert.Equal(t, eof, b.next())
}

func TestStringBufferInsertAtCursor(t *testing.T) {
	b := NewStringBufferFromString("ac")
	b.skip(1) // cursor between 'a' and 'c'
	ins := []rune("b")
	b.insert(ins, 0, len(ins))
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 1, b.Pos())
	assert.Equal(t, 'b', b.next())
}

func TestStringBufferAppendAtTail(t *testing.T) {
	b := NewStringBuffer(4)
	b.putString("foo")
	app := []rune("bar")
	b.append(app, 0, len(app))
	assert.Equal(t, "foobar", b.String())
}

func TestStringBufferReset(t *testing.T) {
	b := NewStringBufferFromString("xyz")
	b.skip(2)
	b.reset()
	assert.Equal(t, 0, b.Pos())
	assert.Equal(t, 0, b.Len())
}
