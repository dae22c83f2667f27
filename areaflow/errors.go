package areaflow

import "errors"

// ErrNoAdmissibleCut indicates a node has neither a depth-preserving cut
// nor any cut at its minimum recorded depth. This should never happen
// when labels and cut_depth were produced by depthlabel.Label over the
// same cut set; it only guards against a caller assembling an
// inconsistent labels/cut_depth pair by hand.
var ErrNoAdmissibleCut = errors.New("areaflow: no admissible cut")
