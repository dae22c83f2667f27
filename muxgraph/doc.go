// Package muxgraph builds the k:1 multiplexer combinational network used
// as a synthetic mapping target, the way a graph builder constructs a
// named topology behind a constructor-style closure and a deterministic
// id function for vertex naming.
//
// Build(dataWidth) emits dataWidth data-input primary inputs, the
// ceil(log2(dataWidth)) select-line primary inputs the decoder needs, one
// NOT gate per select line actually used in a 0-bit position, one AND gate
// per data line gating it with its selector literals, and a binary OR tree
// combining the AND outputs — never a single wide OR, so the network never
// presents a fanin list wider than 2 at an OR node regardless of
// dataWidth, keeping cut enumeration feasible for small K.
package muxgraph
