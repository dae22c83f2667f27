package areaflow

import (
	"cmp"
	"fmt"
	"math"

	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
	"github.com/adityasaboo10/lut-mapping-optimization/depthlabel"
	"github.com/adityasaboo10/lut-mapping-optimization/graph"
)

// Recover chooses, for every non-PI node, a single K-feasible cut that
// does not increase the node's depth label and minimizes
// 1 + Σ af(u)/refcount(u) over non-PI cut members u.
//
// order must be the same topological order used to compute labels and
// cutDepth; fanouts comes from the same graph.TopologicalOrder call.
// Iteration is strictly topological (PIs first) so af(u) is always
// defined by the time a cut referencing u is costed.
func Recover[T cmp.Ordered](
	g *graph.Graph[T],
	order []T,
	fanouts map[T][]T,
	cuts map[T][]cutset.Cut[T],
	labels map[T]int,
	cutDepth depthlabel.Table[T],
) (chosen map[T]cutset.Cut[T], areaFlow map[T]float64, err error) {
	pis := g.PrimaryInputs()

	refcount := make(map[T]int, len(order))
	for _, v := range order {
		rc := len(fanouts[v])
		if rc < 1 {
			rc = 1
		}
		refcount[v] = rc
	}

	areaFlow = make(map[T]float64, len(order))
	chosen = make(map[T]cutset.Cut[T], len(order))

	for _, v := range order {
		if _, isPI := pis[v]; isPI {
			areaFlow[v] = 0
			continue
		}

		label := labels[v]
		depths := cutDepth[v]

		pool := admissibleCuts(cuts[v], depths, label)
		if len(pool) == 0 {
			pool = minimumDepthCuts(cuts[v], depths)
		}
		if len(pool) == 0 {
			return nil, nil, fmt.Errorf("%w: %v", ErrNoAdmissibleCut, v)
		}

		bestCut, bestCost := cheapestCut(pool, pis, areaFlow, refcount)
		chosen[v] = bestCut
		areaFlow[v] = bestCost
	}

	return chosen, areaFlow, nil
}

func admissibleCuts[T cmp.Ordered](cuts []cutset.Cut[T], depths map[string]int, label int) []cutset.Cut[T] {
	out := make([]cutset.Cut[T], 0, len(cuts))
	for _, c := range cuts {
		if d, ok := depths[c.Signature()]; ok && d <= label {
			out = append(out, c)
		}
	}
	return out
}

func minimumDepthCuts[T cmp.Ordered](cuts []cutset.Cut[T], depths map[string]int) []cutset.Cut[T] {
	minDepth := -1
	for _, c := range cuts {
		if d, ok := depths[c.Signature()]; ok {
			if minDepth == -1 || d < minDepth {
				minDepth = d
			}
		}
	}
	var out []cutset.Cut[T]
	for _, c := range cuts {
		if depths[c.Signature()] == minDepth {
			out = append(out, c)
		}
	}
	return out
}

func cheapestCut[T cmp.Ordered](pool []cutset.Cut[T], pis map[T]struct{}, areaFlow map[T]float64, refcount map[T]int) (cutset.Cut[T], float64) {
	var best cutset.Cut[T]
	bestCost := math.Inf(1)
	first := true

	for _, c := range pool {
		cost := 1.0
		for _, u := range c.Elems() {
			if _, ok := pis[u]; ok {
				continue
			}
			cost += areaFlow[u] / float64(refcount[u])
		}
		if first || cost < bestCost || (cost == bestCost && c.Compare(best) < 0) {
			best, bestCost, first = c, cost, false
		}
	}
	return best, bestCost
}
