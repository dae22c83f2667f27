// Package graph defines the DAG type the mapping engine operates on and the
// structural queries every later stage depends on: topological ordering,
// derived fanouts, and primary-input/primary-output detection.
//
// A Graph[T] is a mapping from each node to its ordered fanins. Node
// identities are any cmp.Ordered value, so callers may use plain strings
// (as muxgraph does) or interned integer handles for larger networks.
//
// Graph is mutable only during construction (AddNode/FromFanins); every
// other method treats it as read-only, matching the single-pass, no-shared-
// mutable-state execution model the mapping engine requires.
package graph
