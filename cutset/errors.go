package cutset

import (
	"errors"
	"fmt"
)

// ErrInvalidK indicates K < 1.
var ErrInvalidK = errors.New("cutset: K must be >= 1")

// ErrNoFeasibleCut indicates a node has no K-feasible cut at all, i.e. its
// trivial fanin cut alone already exceeds K. Use errors.As to recover the
// offending node via *InfeasibleError[T].
var ErrNoFeasibleCut = errors.New("cutset: no K-feasible cut")

// InfeasibleError reports which node has no K-feasible cut under the
// configured K. It wraps ErrNoFeasibleCut so errors.Is still matches.
type InfeasibleError[T any] struct {
	Node T
	K    int
}

func (e *InfeasibleError[T]) Error() string {
	return fmt.Sprintf("cutset: node %v has no %d-feasible cut", e.Node, e.K)
}

func (e *InfeasibleError[T]) Unwrap() error { return ErrNoFeasibleCut }
