package muxgraph

import "errors"

// ErrInvalidDataWidth is returned when dataWidth is less than 2 — a 1:1
// "multiplexer" has no select line and is not a meaningful target.
var ErrInvalidDataWidth = errors.New("muxgraph: dataWidth must be >= 2")
