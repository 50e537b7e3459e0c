// Package trace records compilation phases of syntek as begin/end events.
//
// Enable it from the command line:
//
//	syntek diag --trace=- --trace-level=phase src/
//
// Tracers:
//
//   - Nop: disabled, zero cost
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels are off, error, phase, file and debug. Scopes order events from
// coarse to fine: driver, pass, file, node.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer sp.End("")
package trace
