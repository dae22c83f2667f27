package cover

import "errors"

// ErrMissingChosenCut indicates a node reachable from a primary output has
// no entry in the chosen-cut map. This only occurs if a caller hand-builds
// an inconsistent chosen-cut map; the engine's own pipeline always covers
// every non-PI node (areaflow.Recover runs over the same topological
// order that reaches every node).
var ErrMissingChosenCut = errors.New("cover: node has no chosen cut")

// ErrDanglingOutput indicates a requested output is not a node of the
// graph at all.
var ErrDanglingOutput = errors.New("cover: output is not a node of the graph")
