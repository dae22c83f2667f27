package cutset

import (
	"cmp"
	"sort"

	"github.com/adityasaboo10/lut-mapping-optimization/graph"
	"github.com/adityasaboo10/lut-mapping-optimization/internal/bitset"
)

// Option configures EnumerateCuts / EnumerateCutsWithStats.
type Option[T cmp.Ordered] func(*config[T])

type config[T cmp.Ordered] struct {
	vendorPackShortcut bool
}

// WithVendorPackShortcut enables an optional, non-default packing mode:
// any node whose full set of reachable primary inputs is ≤ K also gets
// that set considered as a candidate cut, even when it is not the cut the
// Cartesian-product search would have found. This can over-pack and lose
// sharing opportunities, so it is off unless requested explicitly.
func WithVendorPackShortcut[T cmp.Ordered]() Option[T] {
	return func(c *config[T]) { c.vendorPackShortcut = true }
}

// Stats carries per-node cut-generation counters, purely observational
// (never consumed by labeling or area recovery): how many candidates were
// produced before set-minimality pruning, how many survived, and how many
// were discarded as dominated or duplicate.
type Stats struct {
	Generated int
	Kept      int
	Pruned    int
}

// EnumerateCuts produces, for every node of g, its set-minimal K-feasible
// cuts. order must be a topological order of g (as returned by
// (*graph.Graph[T]).TopologicalOrder). cutLimit <= 0 means unbounded.
func EnumerateCuts[T cmp.Ordered](g *graph.Graph[T], order []T, k, cutLimit int, opts ...Option[T]) (map[T][]Cut[T], error) {
	cuts, _, err := EnumerateCutsWithStats(g, order, k, cutLimit, opts...)
	return cuts, err
}

// EnumerateCutsWithStats is EnumerateCuts plus per-node cut-generation
// Stats, for callers that want enumeration diagnostics alongside the
// cuts themselves.
func EnumerateCutsWithStats[T cmp.Ordered](g *graph.Graph[T], order []T, k, cutLimit int, opts ...Option[T]) (map[T][]Cut[T], map[T]Stats, error) {
	if k < 1 {
		return nil, nil, ErrInvalidK
	}
	cfg := &config[T]{}
	for _, o := range opts {
		o(cfg)
	}

	pos := make(map[T]int, len(order))
	for i, v := range order {
		pos[v] = i
	}

	type entry struct {
		cut  Cut[T]
		bits bitset.Set
	}
	work := make(map[T][]entry, len(order))
	cuts := make(map[T][]Cut[T], len(order))
	stats := make(map[T]Stats, len(order))

	var reach map[T]Cut[T]
	if cfg.vendorPackShortcut {
		reach = make(map[T]Cut[T], len(order))
	}

	universe := len(order)

	for _, v := range order {
		fins := g.Fanins(v)

		if len(fins) == 0 {
			c := New([]T{v})
			b := bitset.New(universe)
			b.SetBit(pos[v])
			work[v] = []entry{{cut: c, bits: b}}
			cuts[v] = []Cut[T]{c}
			stats[v] = Stats{Generated: 1, Kept: 1}
			if cfg.vendorPackShortcut {
				reach[v] = c
			}
			continue
		}

		if cfg.vendorPackShortcut {
			reach[v] = unionReach(reach, fins)
		}

		lists := make([][]entry, len(fins))
		for i, f := range fins {
			lists[i] = work[f]
		}

		var candidates []bitset.Set
		generated := 0
		var rec func(idx int, acc bitset.Set)
		rec = func(idx int, acc bitset.Set) {
			if idx == len(lists) {
				generated++
				candidates = append(candidates, acc)
				return
			}
			for _, e := range lists[idx] {
				next := acc.Clone()
				if !next.UnionInPlace(e.bits, k) {
					continue // running union already exceeds K; abort this branch
				}
				rec(idx+1, next)
			}
		}
		rec(0, bitset.New(universe))

		out := make([]Cut[T], 0, len(candidates)+2)
		for _, b := range candidates {
			out = append(out, bitsToCut(b, order))
		}

		trivial := New(fins)
		generated++
		if trivial.Len() <= k {
			out = append(out, trivial)
		}
		if cfg.vendorPackShortcut && reach[v].Len() <= k {
			generated++
			out = append(out, reach[v])
		}

		minimal := pruneSetMinimal(out)
		if len(minimal) == 0 {
			return nil, nil, &InfeasibleError[T]{Node: v, K: k}
		}

		pruned := generated - len(minimal)
		if cutLimit > 0 && len(minimal) > cutLimit {
			sortCuts(minimal)
			minimal = minimal[:cutLimit]
		}

		entries := make([]entry, len(minimal))
		for i, c := range minimal {
			b := bitset.New(universe)
			for _, e := range c.Elems() {
				b.SetBit(pos[e])
			}
			entries[i] = entry{cut: c, bits: b}
		}
		work[v] = entries
		cuts[v] = minimal
		stats[v] = Stats{Generated: generated, Kept: len(minimal), Pruned: pruned}
	}

	return cuts, stats, nil
}

func unionReach[T cmp.Ordered](reach map[T]Cut[T], fins []T) Cut[T] {
	seen := make(map[T]struct{})
	var elems []T
	for _, f := range fins {
		for _, e := range reach[f].Elems() {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				elems = append(elems, e)
			}
		}
	}
	return New(elems)
}

func bitsToCut[T cmp.Ordered](b bitset.Set, order []T) Cut[T] {
	idxs := b.Bits()
	elems := make([]T, len(idxs))
	for i, idx := range idxs {
		elems[i] = order[idx]
	}
	return New(elems)
}

// pruneSetMinimal discards every candidate that has another candidate as a
// subset (including itself, for exact duplicates past the first
// occurrence), leaving only the set-minimal cuts.
func pruneSetMinimal[T cmp.Ordered](candidates []Cut[T]) []Cut[T] {
	ordered := make([]Cut[T], len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Len() < ordered[j].Len() })

	kept := make([]Cut[T], 0, len(ordered))
	for _, c := range ordered {
		dominated := false
		for _, d := range kept {
			if d.Len() > c.Len() {
				break // kept is sorted ascending by size; nothing further can be a subset
			}
			if d.IsSubsetOf(c) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, c)
		}
	}
	return kept
}

func sortCuts[T cmp.Ordered](cuts []Cut[T]) {
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Compare(cuts[j]) < 0 })
}
