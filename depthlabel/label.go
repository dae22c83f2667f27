package depthlabel

import (
	"cmp"
	"fmt"

	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
	"github.com/adityasaboo10/lut-mapping-optimization/graph"
)

// Table maps node -> cut signature -> 1 + max(leaf labels), the per-cut
// depth table area-flow recovery needs to see every candidate's depth,
// not only the winning one.
type Table[T cmp.Ordered] map[T]map[string]int

// Label computes the depth label of every node in g and the full per-cut
// depth table. order must be a topological order of g; cuts must already
// hold every node's set-minimal K-feasible cuts (cutset.EnumerateCuts).
//
// Primary inputs get ℓ=0 and a single cut_depth entry of 0 for their
// trivial {v} cut. Every other node's label is the minimum, over its
// cuts, of 1 + the maximum label among the cut's elements.
func Label[T cmp.Ordered](g *graph.Graph[T], order []T, cuts map[T][]cutset.Cut[T]) (map[T]int, Table[T], error) {
	labels := make(map[T]int, len(order))
	depths := make(Table[T], len(order))

	for _, v := range order {
		fins := g.Fanins(v)
		if len(fins) == 0 {
			vCuts := cuts[v]
			if len(vCuts) == 0 {
				return nil, nil, fmt.Errorf("%w: %v", ErrMissingCuts, v)
			}
			labels[v] = 0
			depths[v] = map[string]int{vCuts[0].Signature(): 0}
			continue
		}

		vCuts := cuts[v]
		if len(vCuts) == 0 {
			return nil, nil, fmt.Errorf("%w: %v", ErrMissingCuts, v)
		}

		perCut := make(map[string]int, len(vCuts))
		best := -1
		for _, c := range vCuts {
			maxLabel := 0
			for _, u := range c.Elems() {
				if l := labels[u]; l > maxLabel {
					maxLabel = l
				}
			}
			d := 1 + maxLabel
			perCut[c.Signature()] = d
			if best == -1 || d < best {
				best = d
			}
		}
		labels[v] = best
		depths[v] = perCut
	}

	return labels, depths, nil
}
