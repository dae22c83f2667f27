package depthlabel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
	"github.com/adityasaboo10/lut-mapping-optimization/depthlabel"
	"github.com/adityasaboo10/lut-mapping-optimization/graph"
)

func andOrGraph() *graph.Graph[string] {
	return graph.FromFanins(map[string][]string{
		"a": {}, "b": {}, "c": {},
		"and1": {"a", "b"},
		"or1":  {"and1", "c"},
	})
}

func TestLabel_S1_K2(t *testing.T) {
	g := andOrGraph()
	order, _, err := g.TopologicalOrder()
	require.NoError(t, err)
	cuts, err := cutset.EnumerateCuts(g, order, 2, 0)
	require.NoError(t, err)

	labels, depths, err := depthlabel.Label(g, order, cuts)
	require.NoError(t, err)

	assert.Equal(t, 0, labels["a"])
	assert.Equal(t, 0, labels["b"])
	assert.Equal(t, 0, labels["c"])
	assert.Equal(t, 1, labels["and1"])
	assert.Equal(t, 2, labels["or1"])

	assert.Equal(t, 0, depths["a"]["a"])
}

func TestLabel_S2_K3(t *testing.T) {
	g := andOrGraph()
	order, _, err := g.TopologicalOrder()
	require.NoError(t, err)
	cuts, err := cutset.EnumerateCuts(g, order, 3, 0)
	require.NoError(t, err)

	labels, _, err := depthlabel.Label(g, order, cuts)
	require.NoError(t, err)
	assert.Equal(t, 1, labels["and1"])
	assert.Equal(t, 1, labels["or1"])
}

func TestLabel_S3_Reconvergent(t *testing.T) {
	g := graph.FromFanins(map[string][]string{
		"a": {}, "b": {}, "c": {}, "d": {},
		"and1": {"a", "b"},
		"and2": {"c", "d"},
		"xor1": {"and1", "and2"},
		"or1":  {"and1", "c"},
		"out":  {"xor1", "or1"},
	})
	order, _, err := g.TopologicalOrder()
	require.NoError(t, err)
	cuts, err := cutset.EnumerateCuts(g, order, 3, 0)
	require.NoError(t, err)

	labels, _, err := depthlabel.Label(g, order, cuts)
	require.NoError(t, err)

	assert.Equal(t, 0, labels["a"])
	assert.Equal(t, 1, labels["and1"])
	assert.Equal(t, 1, labels["and2"])
	assert.Equal(t, 2, labels["xor1"])
	assert.Equal(t, 2, labels["or1"])
	assert.Equal(t, 3, labels["out"])
}

func TestLabel_PIsAreZero(t *testing.T) {
	g := andOrGraph()
	order, _, err := g.TopologicalOrder()
	require.NoError(t, err)
	cuts, err := cutset.EnumerateCuts(g, order, 2, 0)
	require.NoError(t, err)
	labels, _, err := depthlabel.Label(g, order, cuts)
	require.NoError(t, err)

	for _, v := range []string{"a", "b", "c"} {
		assert.Equal(t, 0, labels[v])
	}
}

func TestLabel_EveryNodeHasMinimizingCut(t *testing.T) {
	g := andOrGraph()
	order, _, err := g.TopologicalOrder()
	require.NoError(t, err)
	cuts, err := cutset.EnumerateCuts(g, order, 3, 0)
	require.NoError(t, err)
	labels, depths, err := depthlabel.Label(g, order, cuts)
	require.NoError(t, err)

	for v, perCut := range depths {
		found := false
		for _, d := range perCut {
			if d == labels[v] {
				found = true
				break
			}
		}
		assert.Truef(t, found, "node %s: no cut achieves its own label", v)
	}
}
