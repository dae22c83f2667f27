package flowmap

import (
	"cmp"
	"fmt"

	"github.com/google/uuid"

	"github.com/adityasaboo10/lut-mapping-optimization/areaflow"
	"github.com/adityasaboo10/lut-mapping-optimization/cover"
	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
	"github.com/adityasaboo10/lut-mapping-optimization/depthlabel"
	"github.com/adityasaboo10/lut-mapping-optimization/graph"
	"github.com/adityasaboo10/lut-mapping-optimization/mlog"
)

// Engine runs the cutset→depthlabel→areaflow→cover pipeline over one
// graph at a time. Engines share no state; a caller may run several
// concurrently from separate goroutines over independent graphs.
type Engine[T cmp.Ordered] struct {
	cfg    Config[T]
	jobID  uuid.UUID
	logger *mlog.Logger
}

// NewEngine builds an Engine for LUT size k, applying opts in order.
func NewEngine[T cmp.Ordered](k int, opts ...Option[T]) *Engine[T] {
	s := &settings[T]{cfg: Config[T]{K: k}}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = mlog.New(mlog.Options{Verbose: s.cfg.Verbose})
	}
	jobID := uuid.New()
	return &Engine[T]{
		cfg:    s.cfg,
		jobID:  jobID,
		logger: s.logger.SpawnForJob(jobID.String()),
	}
}

// JobID returns the UUID minted for this Engine, used only to correlate
// its diagnostic trace lines — never consumed by any mapping decision.
func (e *Engine[T]) JobID() uuid.UUID { return e.jobID }

// Result is the full output of one Engine.Run: depth labels, the chosen
// cut per non-PI node, the area-flow value per node, the final LUT cover,
// and per-node cut-generation Stats.
type Result[T cmp.Ordered] struct {
	Labels     map[T]int
	ChosenCuts map[T]cutset.Cut[T]
	AreaFlow   map[T]float64
	LUTs       []cover.LUT[T]
	Stats      map[T]cutset.Stats
}

// Run executes the full B→C→D→E pipeline over g. g is never mutated.
func (e *Engine[T]) Run(g *graph.Graph[T]) (*Result[T], error) {
	if e.cfg.K < 1 {
		return nil, fmt.Errorf("flowmap: %w", cutset.ErrInvalidK)
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("flowmap: %w", err)
	}

	order, fanouts, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("flowmap: %w", err)
	}

	outputs := e.cfg.Outputs
	if outputs == nil {
		outputs = g.DetectOutputs()
	}

	var cutOpts []cutset.Option[T]
	if e.cfg.VendorPackShortcut {
		cutOpts = append(cutOpts, cutset.WithVendorPackShortcut[T]())
	}
	cuts, stats, err := cutset.EnumerateCutsWithStats(g, order, e.cfg.K, e.cfg.CutLimit, cutOpts...)
	if err != nil {
		return nil, fmt.Errorf("flowmap: %w", err)
	}
	if e.cfg.Verbose {
		for _, v := range order {
			st := stats[v]
			kept := make([][]T, len(cuts[v]))
			for i, c := range cuts[v] {
				kept[i] = c.Elems()
			}
			e.logger.Debug().
				Interface("node", v).
				Interface("cuts", kept).
				Int("generated", st.Generated).
				Int("kept", st.Kept).
				Int("pruned", st.Pruned).
				Msg("cuts enumerated")
		}
	}

	labels, depths, err := depthlabel.Label(g, order, cuts)
	if err != nil {
		return nil, fmt.Errorf("flowmap: %w", err)
	}
	if e.cfg.Verbose {
		for _, v := range order {
			e.logger.Debug().
				Interface("node", v).
				Int("label", labels[v]).
				Interface("cut_depths", depths[v]).
				Msg("node labeled")
		}
	}

	chosen, af, err := areaflow.Recover(g, order, fanouts, cuts, labels, depths)
	if err != nil {
		return nil, fmt.Errorf("flowmap: %w", err)
	}
	if e.cfg.Verbose {
		for _, v := range order {
			c, ok := chosen[v]
			if !ok {
				continue
			}
			e.logger.Debug().
				Interface("node", v).
				Interface("cut", c.Elems()).
				Float64("area_flow", af[v]).
				Msg("cut chosen")
		}
	}

	luts, err := cover.Build(g, chosen, labels, outputs)
	if err != nil {
		return nil, fmt.Errorf("flowmap: %w", err)
	}

	return &Result[T]{
		Labels:     labels,
		ChosenCuts: chosen,
		AreaFlow:   af,
		LUTs:       luts,
		Stats:      stats,
	}, nil
}
