package bitset_test

import (
	"testing"

	"github.com/katalvlaran/epiplan/bitset"
	"github.com/stretchr/testify/assert"
)

func TestSetBasics(t *testing.T) {
	s := bitset.Of(3, 1, 2)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(9))
	assert.Equal(t, []int{1, 2, 3}, s.Items())
}

func TestSetImmutability(t *testing.T) {
	s := bitset.Of(1)
	s2 := s.Add(2)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s2.Len())
}

func TestSetOps(t *testing.T) {
	a := bitset.Of(1, 2, 3)
	b := bitset.Of(2, 3, 4)

	assert.Equal(t, []int{2, 3}, a.And(b).Items())
	assert.Equal(t, []int{1, 2, 3, 4}, a.Or(b).Items())
	assert.Equal(t, []int{1}, a.AndNot(b).Items())
}

func TestSetEmpty(t *testing.T) {
	var s bitset.Set
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	_, ok := s.Min()
	assert.False(t, ok)
}
