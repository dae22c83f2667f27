package graph

// PrimaryInputs returns the set of nodes with no fanins: {v : fanins(v) = ∅}.
func (g *Graph[T]) PrimaryInputs() map[T]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pis := make(map[T]struct{})
	for v, fins := range g.fanins {
		if len(fins) == 0 {
			pis[v] = struct{}{}
		}
	}
	return pis
}

// DetectOutputs returns, in ascending order, every node that appears in no
// fanin list — i.e. nothing downstream depends on it. Callers needing a
// caller-supplied output set should bypass this and pass their own list to
// the orchestrator instead.
func (g *Graph[T]) DetectOutputs() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hasFanout := make(map[T]struct{}, len(g.fanins))
	for _, fins := range g.fanins {
		for _, u := range fins {
			hasFanout[u] = struct{}{}
		}
	}

	outs := make([]T, 0, len(g.fanins))
	for v := range g.fanins {
		if _, ok := hasFanout[v]; !ok {
			outs = append(outs, v)
		}
	}
	sortOrdered(outs)
	return outs
}
