// Package parser consumes a token buffer and produces a lossless
// CompilationUnit tree: recursive-descent statement dispatch augmented by
// a Pratt-style operator-precedence expression engine driven by a single
// binding-power table (spec.md §4.4).
package parser

import "github.com/rs/zerolog"

// Option configures a parse run.
type Option func(*parser)

// WithLogger attaches a debug logger. A zero-value zerolog.Logger is a
// true no-op, matching lexer.WithLogger's contract.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *parser) { p.logger = logger }
}

// WithDebugTrace enables a debug-level log line for every statement and
// expression production entered, mirroring the teacher's mode-tracing
// style for diagnosing grammar dispatch issues.
func WithDebugTrace(enabled bool) Option {
	return func(p *parser) { p.debugTrace = enabled }
}

// WithTelemetry directs run statistics into dst. The caller supplies the
// struct so telemetry collection has no cost for callers who don't ask
// for it.
func WithTelemetry(dst *ParseTelemetry) Option {
	return func(p *parser) { p.telemetry = dst }
}

// ParseTelemetry is a best-effort summary of one parse run, grounded on
// the teacher's ParseTelemetry/DebugEvent instrumentation.
type ParseTelemetry struct {
	TokenCount        int
	SkippedTokenCount int // tokens discarded during statement-boundary error recovery
	MissingTokenCount int // synthesized missing-token diagnostics emitted
}
