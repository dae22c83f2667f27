package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityasaboo10/lut-mapping-optimization/internal/bitset"
)

func TestSetAndTest(t *testing.T) {
	s := bitset.New(70)
	s.SetBit(0)
	s.SetBit(63)
	s.SetBit(64)
	s.SetBit(69)

	assert.True(t, s.TestBit(0))
	assert.True(t, s.TestBit(63))
	assert.True(t, s.TestBit(64))
	assert.True(t, s.TestBit(69))
	assert.False(t, s.TestBit(1))
	assert.Equal(t, 4, s.PopCount())
}

func TestUnionInPlace_WithinLimit(t *testing.T) {
	a := bitset.New(10)
	a.SetBit(1)
	a.SetBit(2)
	b := bitset.New(10)
	b.SetBit(2)
	b.SetBit(3)

	ok := a.UnionInPlace(b, 5)
	assert.True(t, ok)
	assert.Equal(t, 3, a.PopCount())
	assert.ElementsMatch(t, []int{1, 2, 3}, a.Bits())
}

func TestUnionInPlace_AbortsOverLimit(t *testing.T) {
	a := bitset.New(10)
	a.SetBit(1)
	b := bitset.New(10)
	b.SetBit(2)
	b.SetBit(3)

	ok := a.UnionInPlace(b, 1)
	assert.False(t, ok)
}

func TestIsSubsetOf(t *testing.T) {
	a := bitset.New(10)
	a.SetBit(1)
	b := bitset.New(10)
	b.SetBit(1)
	b.SetBit(2)

	assert.True(t, a.IsSubsetOf(b))
	assert.False(t, b.IsSubsetOf(a))
}

func TestClone_Independent(t *testing.T) {
	a := bitset.New(10)
	a.SetBit(1)
	b := a.Clone()
	b.SetBit(2)

	assert.Equal(t, 1, a.PopCount())
	assert.Equal(t, 2, b.PopCount())
}
