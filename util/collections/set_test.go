package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAdd(t *testing.T) {
	set := NewSet[int]()

	assert.True(t, set.Add(1))
	assert.False(t, set.Add(1))
	assert.True(t, set.Add(2))
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(3))
}

func TestSetDifference(t *testing.T) {
	a := NewSet(1, 2, 3, 4)
	b := NewSet(2, 4, 6)

	assert.Equal(t, NewSet(1, 3), a.Difference(b))
	assert.Equal(t, NewSet(6), b.Difference(a))
	assert.Equal(t, 0, a.Difference(a).Len())
}

func TestSetEqual(t *testing.T) {
	assert.True(t, NewSet("a", "b").Equal(NewSet("b", "a")))
	assert.False(t, NewSet("a", "b").Equal(NewSet("a")))
	assert.False(t, NewSet("a", "b").Equal(NewSet("a", "c")))
	assert.True(t, NewSet[string]().Equal(nil))
}
