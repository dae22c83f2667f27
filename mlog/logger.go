// Package mlog wraps zerolog with mapping-engine field conventions: a
// small struct embedding zerolog.Logger, renamed field keys, and a
// SpawnForJob helper that attaches a correlation field to every line a
// caller emits afterwards. The correlation field here is the mapping
// job's UUID (flowmap.Engine), not a service/request pair.
package mlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// fieldNamesOnce guards zerolog's process-wide field-name settings, so
// concurrent New calls never write them at the same time.
var fieldNamesOnce sync.Once

// Logger is a thin zerolog wrapper with mapping-engine field conventions.
type Logger struct {
	zerolog.Logger
}

// Options configures New.
type Options struct {
	// Verbose enables debug-level diagnostic events. When false, only
	// info-level events and above surface.
	Verbose bool
	// Output overrides the destination; nil means os.Stdout.
	Output io.Writer
}

// New returns a Logger configured per opts.
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	fieldNamesOnce.Do(func() {
		zerolog.TimestampFieldName = "T"
		zerolog.LevelFieldName = "L"
		zerolog.MessageFieldName = "M"
	})

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{l}
}

// SpawnForJob returns a Logger with every subsequent line tagged with the
// given mapping-run job ID.
func (l *Logger) SpawnForJob(jobID string) *Logger {
	return &Logger{l.With().Str("job", jobID).Logger()}
}
