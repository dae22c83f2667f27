package flowmap

import (
	"github.com/adityasaboo10/lut-mapping-optimization/areaflow"
	"github.com/adityasaboo10/lut-mapping-optimization/cover"
	"github.com/adityasaboo10/lut-mapping-optimization/cutset"
	"github.com/adityasaboo10/lut-mapping-optimization/graph"
)

// Re-exported sentinels so a caller of flowmap.Engine.Run never has to
// import every stage package just to branch with errors.Is.
var (
	ErrCycleDetected    = graph.ErrCycleDetected
	ErrMissingFanin     = graph.ErrMissingFanin
	ErrInvalidK         = cutset.ErrInvalidK
	ErrNoFeasibleCut    = cutset.ErrNoFeasibleCut
	ErrMissingChosenCut = cover.ErrMissingChosenCut
	ErrDanglingOutput   = cover.ErrDanglingOutput
	ErrNoAdmissibleCut  = areaflow.ErrNoAdmissibleCut
)
