package muxgraph

import (
	"fmt"
	"math/bits"

	"github.com/adityasaboo10/lut-mapping-optimization/graph"
)

// config holds Build's naming knobs: sensible defaults, overridden in
// order by opts.
type config struct {
	dataPrefix   string
	selectPrefix string
}

// Option customizes Build's node-naming scheme.
type Option func(*config)

// WithDataPrefix overrides the default "D" prefix for data-line PIs.
func WithDataPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.dataPrefix = prefix
		}
	}
}

// WithSelectPrefix overrides the default "S" prefix for select-line PIs.
func WithSelectPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.selectPrefix = prefix
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{dataPrefix: "D", selectPrefix: "S"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Build returns the combinational DAG of a dataWidth:1 multiplexer: one
// data PI per input, ceil(log2(dataWidth)) select PIs, a NOT per select
// line consumed in its zero form, one AND gate per data line gating it
// with its selector literals, and a binary OR tree — never a single
// wide OR — combining the AND outputs into a single primary output.
func Build(dataWidth int, opts ...Option) (*graph.Graph[string], []string, error) {
	if dataWidth < 2 {
		return nil, nil, ErrInvalidDataWidth
	}
	cfg := newConfig(opts...)

	fanins := make(map[string][]string)

	selBits := selectBitsFor(dataWidth)
	if selBits == 0 {
		selBits = 1
	}

	for i := 0; i < dataWidth; i++ {
		fanins[fmt.Sprintf("%s%d", cfg.dataPrefix, i)] = nil
	}
	for j := 0; j < selBits; j++ {
		fanins[fmt.Sprintf("%s%d", cfg.selectPrefix, j)] = nil
	}

	notNameFor := make(map[int]string, selBits)
	notCount := 1
	literalForZeroBit := func(selIdx int) string {
		if name, ok := notNameFor[selIdx]; ok {
			return name
		}
		name := fmt.Sprintf("not%d", notCount)
		notCount++
		fanins[name] = []string{fmt.Sprintf("%s%d", cfg.selectPrefix, selIdx)}
		notNameFor[selIdx] = name
		return name
	}

	andNodes := make([]string, dataWidth)
	for i := 0; i < dataWidth; i++ {
		inputs := make([]string, 0, selBits+1)
		for j := 0; j < selBits; j++ {
			bit := (i >> (selBits - 1 - j)) & 1
			if bit == 1 {
				inputs = append(inputs, fmt.Sprintf("%s%d", cfg.selectPrefix, j))
			} else {
				inputs = append(inputs, literalForZeroBit(j))
			}
		}
		inputs = append(inputs, fmt.Sprintf("%s%d", cfg.dataPrefix, i))

		andName := fmt.Sprintf("and%d", i+1)
		fanins[andName] = inputs
		andNodes[i] = andName
	}

	output := orTree(fanins, andNodes)

	g := graph.FromFanins(fanins)
	return g, []string{output}, nil
}

// orTree pairs up nodes layer by layer into 2-input OR gates until a
// single root remains, so no OR node ever sees more than two fanins
// regardless of dataWidth, avoiding an infeasible cut at small K. Gate
// names are numbered in creation order across all layers.
func orTree(fanins map[string][]string, leaves []string) string {
	if len(leaves) == 1 {
		return leaves[0]
	}

	orCount := 1
	layer := leaves
	for len(layer) > 1 {
		next := make([]string, 0, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i+1 == len(layer) {
				next = append(next, layer[i])
				continue
			}
			orName := fmt.Sprintf("or%d", orCount)
			orCount++
			fanins[orName] = []string{layer[i], layer[i+1]}
			next = append(next, orName)
		}
		layer = next
	}
	return layer[0]
}

// selectBitsFor reports ceil(log2(n)) for n >= 1 without relying on
// floating-point rounding; Build uses it to size the select lines.
func selectBitsFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
