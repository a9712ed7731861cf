package converter

import (
	"sync"

	types "github.com/columncast/cctypes"
	"github.com/columncast/logging"
)

// Diagnostic records one lenient-mode cast failure: the value was
// replaced by null and processing continued.
type Diagnostic struct {
	Column string
	Source types.SourceType
	Dest   types.DestinationType
	Value  any
}

// DiagnosticSink receives lenient-mode cast failures. Implementations
// must be safe to call concurrently from multiple goroutines; ordering
// across rows is not guaranteed.
type DiagnosticSink interface {
	Emit(d Diagnostic)
}

// LogSink writes diagnostics through the structured logger.
type LogSink struct {
	logger logging.Logger
}

func NewLogSink(logger logging.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(d Diagnostic) {
	s.logger.Warnw("substituting null for uncastable value",
		"column", d.Column,
		"source_type", d.Source.String(),
		"destination_type", d.Dest.String(),
		"value", d.Value,
	)
}

// MemorySink collects diagnostics in memory. Useful in tests and for
// hosts that surface per-run cast statistics.
type MemorySink struct {
	mu      sync.Mutex
	records []Diagnostic
}

func (s *MemorySink) Emit(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, d)
}

func (s *MemorySink) Records() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
