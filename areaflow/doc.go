// Package areaflow implements FlowMap-r's depth-preserving area recovery:
// a second dynamic program, run strictly in topological
// order so every fanin's area-flow value is available before it is
// needed, that replaces each node's depth-minimizing cut with the
// cheapest cut that does not increase its label.
package areaflow
