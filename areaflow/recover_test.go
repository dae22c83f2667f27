package areaflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityasaboo10/lut-mapping-optimization/areaflow"
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

func pipeline(t *testing.T, g *graph.Graph[string], k int) ([]string, map[string][]string, map[string][]cutset.Cut[string], map[string]int, depthlabel.Table[string]) {
	order, fanouts, err := g.TopologicalOrder()
	require.NoError(t, err)
	cuts, err := cutset.EnumerateCuts(g, order, k, 0)
	require.NoError(t, err)
	labels, depths, err := depthlabel.Label(g, order, cuts)
	require.NoError(t, err)
	return order, fanouts, cuts, labels, depths
}

func TestRecover_S2_K3_AbsorbsAnd1(t *testing.T) {
	g := andOrGraph()
	order, fanouts, cuts, labels, depths := pipeline(t, g, 3)

	chosen, af, err := areaflow.Recover(g, order, fanouts, cuts, labels, depths)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, chosen["or1"].Elems())
	assert.Equal(t, 1.0, af["or1"])
	assert.False(t, chosen["or1"].Contains("and1"), "and1 should be fully absorbed into or1's cut")
}

func TestRecover_PreservesDepth(t *testing.T) {
	g := graph.FromFanins(map[string][]string{
		"a": {}, "b": {}, "c": {}, "d": {},
		"and1": {"a", "b"},
		"and2": {"c", "d"},
		"xor1": {"and1", "and2"},
		"or1":  {"and1", "c"},
		"out":  {"xor1", "or1"},
	})
	order, fanouts, cuts, labels, depths := pipeline(t, g, 3)

	chosen, _, err := areaflow.Recover(g, order, fanouts, cuts, labels, depths)
	require.NoError(t, err)

	for v, c := range chosen {
		d, ok := depths[v][c.Signature()]
		require.True(t, ok)
		assert.LessOrEqual(t, d, labels[v])
	}
}

func TestRecover_Idempotent(t *testing.T) {
	g := andOrGraph()
	order, fanouts, cuts, labels, depths := pipeline(t, g, 3)

	chosen1, af1, err := areaflow.Recover(g, order, fanouts, cuts, labels, depths)
	require.NoError(t, err)
	chosen2, af2, err := areaflow.Recover(g, order, fanouts, cuts, labels, depths)
	require.NoError(t, err)

	for v := range chosen1 {
		assert.True(t, chosen1[v].Equal(chosen2[v]))
	}
	assert.Equal(t, af1, af2)
}

func TestRecover_PIsHaveZeroAreaFlow(t *testing.T) {
	g := andOrGraph()
	order, fanouts, cuts, labels, depths := pipeline(t, g, 2)

	_, af, err := areaflow.Recover(g, order, fanouts, cuts, labels, depths)
	require.NoError(t, err)
	assert.Equal(t, 0.0, af["a"])
	assert.Equal(t, 0.0, af["b"])
	assert.Equal(t, 0.0, af["c"])
}
