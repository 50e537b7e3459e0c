// Package driver runs the front-end pipeline (lex, parse, resolve) over
// files and directories and gathers diagnostics.
package driver

import (
	"fmt"

	"syntek/internal/observ"
	"syntek/internal/parser"
)

// Options configures every pipeline entry point.
type Options struct {
	// MaxDiagnostics ограничивает Bag каждого файла; 0 - без лимита.
	MaxDiagnostics int
	Mode           parser.ErrorMode
	MaxErrors      uint
	TabWidth       int
	// Jobs - параллелизм AnalyzeDir; 0 - GOMAXPROCS.
	Jobs int
	// Cache может быть nil.
	Cache *DiskCache
	// Timer может быть nil.
	Timer *observ.Timer
	// Progress вызывается из рабочих горутин; должен быть потокобезопасным.
	Progress func(ProgressEvent)
}

// fingerprint returns the options that change analysis output; it is part
// of the cache key.
func (o Options) fingerprint() []byte {
	return fmt.Appendf(nil, "mode=%s;max=%d;tab=%d;diag=%d", o.Mode, o.MaxErrors, o.TabWidth, o.MaxDiagnostics)
}

func (o Options) progress(ev ProgressEvent) {
	if o.Progress != nil {
		o.Progress(ev)
	}
}

// Stage is a step of the per-file pipeline.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLex
	StageParse
	StageResolve
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent reports that the file at Index moved to Stage.
type ProgressEvent struct {
	Path   string
	Index  int
	Total  int
	Stage  Stage
	Cached bool
	Errors int // только для StageDone
}
