// Package cover builds the final LUT cover by back-tracing chosen cuts
// from every primary output. Each non-PI node reached becomes exactly
// one LUT; primary inputs are never emitted.
package cover
