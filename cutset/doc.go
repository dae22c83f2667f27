// Package cutset enumerates set-minimal K-feasible cuts for every node of
// a DAG. A cut at node v is a node set separating v from every primary
// input; K-feasible means it has at most K elements.
//
// EnumerateCuts visits nodes in topological order, forming the Cartesian
// product of each fanin's already-computed cut set, pruning any union
// that exceeds K as early as possible, then discarding dominated
// (non-set-minimal) candidates before moving to the next node.
package cutset
