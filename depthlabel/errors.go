package depthlabel

import "errors"

// ErrMissingCuts indicates a non-PI node has an empty cut list, which
// should never happen if cuts came from cutset.EnumerateCuts; it guards
// against a caller assembling an inconsistent cut map by hand.
var ErrMissingCuts = errors.New("depthlabel: node has no cuts")
