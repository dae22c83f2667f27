package cutset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
)

func TestNew_SortsDedupsAndSigns(t *testing.T) {
	c := cutset.New([]string{"c", "a", "b", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, c.Elems())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "a,b,c", c.Signature())
}

func TestIsSubsetOf(t *testing.T) {
	small := cutset.New([]string{"a", "b"})
	big := cutset.New([]string{"a", "b", "c"})
	assert.True(t, small.IsSubsetOf(big))
	assert.False(t, big.IsSubsetOf(small))
	assert.True(t, small.IsSubsetOf(small))
}

func TestEqual(t *testing.T) {
	a := cutset.New([]string{"x", "y"})
	b := cutset.New([]string{"y", "x"})
	assert.True(t, a.Equal(b))
}

func TestCompare_SizeThenLexicographic(t *testing.T) {
	small := cutset.New([]string{"z"})
	big := cutset.New([]string{"a", "b"})
	assert.Negative(t, small.Compare(big))

	ab := cutset.New([]string{"a", "b"})
	ac := cutset.New([]string{"a", "c"})
	assert.Negative(t, ab.Compare(ac))
}

func TestContains(t *testing.T) {
	c := cutset.New([]int{5, 1, 3})
	assert.True(t, c.Contains(1))
	assert.True(t, c.Contains(5))
	assert.False(t, c.Contains(2))
}
