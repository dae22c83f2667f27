// Package flowmap is the mapping engine's orchestrator: it composes
// cutset.EnumerateCuts, depthlabel.Label, areaflow.Recover, and
// cover.Build into a single Engine.Run call, the way a graph builder
// composes several constructor steps behind one entry point. Engine is
// configured with functional options the same way; K is the one
// required parameter, everything else (CutLimit, Outputs, Verbose)
// defaults sensibly.
package flowmap
