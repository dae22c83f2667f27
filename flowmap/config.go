package flowmap

import (
	"cmp"

	"github.com/adityasaboo10/lut-mapping-optimization/mlog"
)

// Config holds the mapping engine's tunables.
type Config[T cmp.Ordered] struct {
	// K is the LUT input bound. Required, must be >= 1.
	K int
	// CutLimit caps the number of cuts retained per node. <= 0 means
	// unbounded.
	CutLimit int
	// Outputs, if non-nil, overrides auto-detected primary outputs.
	Outputs []T
	// Verbose enables the diagnostic trace; its field names are not a
	// stable interface.
	Verbose bool
	// VendorPackShortcut enables the optional non-default packing mode
	// (see cutset.WithVendorPackShortcut).
	VendorPackShortcut bool
}

type settings[T cmp.Ordered] struct {
	cfg    Config[T]
	logger *mlog.Logger
}

// Option configures a new Engine.
type Option[T cmp.Ordered] func(*settings[T])

// WithCutLimit caps the number of retained cuts per node.
func WithCutLimit[T cmp.Ordered](limit int) Option[T] {
	return func(s *settings[T]) { s.cfg.CutLimit = limit }
}

// WithOutputs overrides auto-detected primary outputs.
func WithOutputs[T cmp.Ordered](outputs []T) Option[T] {
	return func(s *settings[T]) { s.cfg.Outputs = append([]T(nil), outputs...) }
}

// WithVerbose toggles the diagnostic trace.
func WithVerbose[T cmp.Ordered](verbose bool) Option[T] {
	return func(s *settings[T]) { s.cfg.Verbose = verbose }
}

// WithVendorPackShortcut enables cutset.WithVendorPackShortcut for this
// engine's cut enumeration pass.
func WithVendorPackShortcut[T cmp.Ordered]() Option[T] {
	return func(s *settings[T]) { s.cfg.VendorPackShortcut = true }
}

// WithLogger injects a pre-built logger (e.g. one already scoped to a
// parent request/job) instead of letting NewEngine construct one from
// Config.Verbose.
func WithLogger[T cmp.Ordered](l *mlog.Logger) Option[T] {
	return func(s *settings[T]) { s.logger = l }
}
