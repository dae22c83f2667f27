package graph

import "errors"

// Sentinel errors for the graph package. Callers branch on these via
// errors.Is; context (the offending node) is attached at the call site
// with fmt.Errorf("%w: ...").
var (
	// ErrCycleDetected indicates TopologicalOrder could not consume every
	// node: the input is not a DAG.
	ErrCycleDetected = errors.New("graph: cycle detected")

	// ErrMissingFanin indicates a node lists a fanin that never appears as
	// a key in the graph. This is a caller bug.
	ErrMissingFanin = errors.New("graph: referenced fanin is not a node")

	// ErrDuplicateNode indicates AddNode was called twice for the same id
	// with conflicting fanins.
	ErrDuplicateNode = errors.New("graph: node already added")
)
