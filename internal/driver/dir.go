package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"syntek/internal/diag"
	"syntek/internal/project"
	"syntek/internal/source"
	"syntek/internal/trace"
)

// AnalyzeDir analyzes every .stk file under paths in parallel. Results are
// in the sorted order of the collected files. A file that fails to load
// yields a unit with an IOLoadFileError diagnostic instead of an error.
func AnalyzeDir(ctx context.Context, opts Options, paths ...string) (*source.FileSet, []*Unit, error) {
	files, err := project.CollectSources(paths...)
	if err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSet()
	if len(paths) == 1 {
		fs = source.NewFileSetWithBase(paths[0])
	}
	if len(files) == 0 {
		return fs, nil, nil
	}

	root := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "analyze-dir", trace.ParentFrom(ctx))
	defer root.End(fmt.Sprintf("%d files", len(files)))
	ctx = trace.WithSpan(ctx, root)

	// FileSet не потокобезопасен: загружаем всё заранее
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		ids[i], loadErrs[i] = fs.Load(path)
		if loadErrs[i] != nil {
			// пустой виртуальный файл, чтобы диагностике было куда указывать
			ids[i] = fs.AddVirtual(path, nil)
		}
		opts.progress(ProgressEvent{Path: path, Index: i, Total: len(files), Stage: StageQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	units := make([]*Unit, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				u := opts.newUnit(fs, ids[i])
				u.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: ids[i]}, loadErrs[i].Error()))
				units[i] = u
				opts.progress(ProgressEvent{Path: path, Index: i, Total: len(files), Stage: StageDone, Errors: 1})
				return nil
			}
			units[i] = opts.analyzeCached(gctx, fs, ids[i], i, len(files))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fs, units, err
	}
	return fs, units, nil
}

func (o Options) analyzeCached(ctx context.Context, fs *source.FileSet, id source.FileID, index, total int) *Unit {
	file := fs.Get(id)
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file:"+file.Path, trace.ParentFrom(ctx))
	ctx = trace.WithSpan(ctx, sp)
	ev := ProgressEvent{Path: file.Path, Index: index, Total: total}

	key := cacheKey(file, o)
	var cached CachedUnit
	if ok, err := o.Cache.Get(key, &cached); ok {
		u := fromCached(file, &cached, o.MaxDiagnostics)
		ev.Stage, ev.Cached, ev.Errors = StageDone, true, errorCount(u.Bag)
		o.progress(ev)
		sp.End("cached")
		return u
	} else if err != nil {
		// испорченная запись: считаем промахом и перезапишем
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-miss", err.Error())
	}

	u := o.newUnit(fs, id)
	for _, st := range []struct {
		stage Stage
		run   func(context.Context, *Unit)
	}{
		{StageLex, o.lex},
		{StageParse, o.parse},
		{StageResolve, o.resolve},
	} {
		ev.Stage = st.stage
		o.progress(ev)
		st.run(ctx, u)
	}

	if err := o.Cache.Put(key, toCached(u)); err != nil {
		u.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: id}, "cache write failed: "+err.Error()))
	}
	ev.Stage, ev.Errors = StageDone, errorCount(u.Bag)
	o.progress(ev)
	sp.End("")
	return u
}

func errorCount(b *diag.Bag) int {
	n := 0
	for _, d := range b.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
