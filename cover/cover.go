package cover

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
	"github.com/adityasaboo10/lut-mapping-optimization/graph"
)

// LUT is one lookup table in the final cover: an output node, its sorted
// K-feasible inputs, and the LUT level (the output's depth label).
type LUT[T cmp.Ordered] struct {
	Output T
	Inputs []T
	Level  int
}

// Build back-traces chosen cuts from every output, placing each reached
// non-PI node as one LUT, and returns the result sorted by
// (Level ascending, Output ascending).
func Build[T cmp.Ordered](g *graph.Graph[T], chosen map[T]cutset.Cut[T], labels map[T]int, outputs []T) ([]LUT[T], error) {
	pis := g.PrimaryInputs()
	covered := make(map[T]struct{})
	var luts []LUT[T]

	var place func(v T) error
	place = func(v T) error {
		if _, isPI := pis[v]; isPI {
			return nil
		}
		if _, done := covered[v]; done {
			return nil
		}
		c, ok := chosen[v]
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingChosenCut, v)
		}
		covered[v] = struct{}{}
		luts = append(luts, LUT[T]{Output: v, Inputs: c.Elems(), Level: labels[v]})

		for _, u := range c.Elems() {
			if err := place(u); err != nil {
				return err
			}
		}
		return nil
	}

	for _, po := range outputs {
		if !g.Has(po) {
			return nil, fmt.Errorf("%w: %v", ErrDanglingOutput, po)
		}
		if err := place(po); err != nil {
			return nil, err
		}
	}

	sort.Slice(luts, func(i, j int) bool {
		if luts[i].Level != luts[j].Level {
			return luts[i].Level < luts[j].Level
		}
		return cmp.Less(luts[i].Output, luts[j].Output)
	})
	return luts, nil
}
