package driver

import (
	"context"
	"fmt"
	"time"

	"syntek/internal/ast"
	"syntek/internal/diag"
	"syntek/internal/lexer"
	"syntek/internal/parser"
	"syntek/internal/scope"
	"syntek/internal/source"
	"syntek/internal/token"
	"syntek/internal/trace"
)

// Unit is the analysis result for one file. Fields stay nil for the
// stages that did not run; a unit restored from the cache has only Bag and
// Summary.
type Unit struct {
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	Program ast.NodeID
	Syntax  []*parser.SyntaxError
	Scopes  *scope.Tree
	Bag     *diag.Bag
	Cached  bool
	Summary Summary
}

// Summary holds counts that survive caching.
type Summary struct {
	Tokens int
	Nodes  int
	Scopes int
}

func (o Options) reporter(bag *diag.Bag) diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: bag})
}

// phase runs fn inside a trace span and records its duration.
func (o Options) phase(ctx context.Context, name string, fn func()) {
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, name, trace.ParentFrom(ctx))
	start := time.Now()
	fn()
	o.Timer.Add(name, time.Since(start))
	sp.End("")
}

func (o Options) lex(ctx context.Context, u *Unit) {
	o.phase(ctx, "lex", func() {
		u.Tokens = lexer.Tokenize(u.File, lexer.Options{
			Reporter: o.reporter(u.Bag),
			TabWidth: o.TabWidth,
		})
	})
	u.Summary.Tokens = len(u.Tokens)
}

func (o Options) parse(ctx context.Context, u *Unit) {
	o.phase(ctx, "parse", func() {
		u.Builder = ast.NewBuilder(ast.Hints{Nodes: uint(len(u.Tokens))})
		res := parser.Parse(u.Tokens, u.Builder, parser.Options{
			Mode:      o.Mode,
			MaxErrors: o.MaxErrors,
			Reporter:  o.reporter(u.Bag),
		})
		u.Program = res.Program
		u.Syntax = res.Errors
	})
	u.Summary.Nodes = int(u.Builder.Nodes.Len())
	if o.Mode == parser.ModeCollect && o.MaxErrors > 0 && uint(len(u.Syntax)) >= o.MaxErrors {
		last := u.Syntax[len(u.Syntax)-1].Token.Span
		u.Bag.Add(diag.New(diag.SevInfo, diag.SynTooManyErrors, last,
			fmt.Sprintf("stopped after %d syntax errors", len(u.Syntax))))
	}
}

// resolve turns a ContractError panic into a diagnostic; other panics propagate.
func (o Options) resolve(ctx context.Context, u *Unit) {
	o.phase(ctx, "resolve", func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			ce, ok := r.(*scope.ContractError)
			if !ok {
				panic(r)
			}
			u.Scopes = nil
			u.Bag.Add(diag.NewError(diag.ScopeContract, u.Builder.Nodes.Span(ce.Node), ce.Error()))
		}()
		u.Scopes = scope.Resolve(u.Builder.Nodes, u.Program)
	})
	if u.Scopes != nil {
		u.Summary.Scopes = u.Scopes.Len()
	}
}

func (o Options) newUnit(fs *source.FileSet, id source.FileID) *Unit {
	return &Unit{File: fs.Get(id), Bag: diag.NewBag(o.MaxDiagnostics)}
}

// TokenizeFile runs the lexer only.
func TokenizeFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *Unit {
	u := opts.newUnit(fs, id)
	opts.lex(ctx, u)
	return u
}

// ParseFile runs lexer and parser.
func ParseFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *Unit {
	u := opts.newUnit(fs, id)
	opts.lex(ctx, u)
	opts.parse(ctx, u)
	return u
}

// AnalyzeFile runs the full pipeline: lex, parse, resolve.
func AnalyzeFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *Unit {
	u := opts.newUnit(fs, id)
	opts.lex(ctx, u)
	opts.parse(ctx, u)
	opts.resolve(ctx, u)
	return u
}

type stageFunc func(context.Context, *source.FileSet, source.FileID, Options) *Unit

func loadAndRun(ctx context.Context, path string, opts Options, run stageFunc) (*source.FileSet, *Unit, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return fs, run(ctx, fs, id, opts), nil
}

// Tokenize loads path into a fresh FileSet and lexes it.
func Tokenize(ctx context.Context, path string, opts Options) (*source.FileSet, *Unit, error) {
	return loadAndRun(ctx, path, opts, TokenizeFile)
}

// Parse loads path into a fresh FileSet and parses it.
func Parse(ctx context.Context, path string, opts Options) (*source.FileSet, *Unit, error) {
	return loadAndRun(ctx, path, opts, ParseFile)
}

// Analyze loads path into a fresh FileSet and runs the full pipeline.
func Analyze(ctx context.Context, path string, opts Options) (*source.FileSet, *Unit, error) {
	return loadAndRun(ctx, path, opts, AnalyzeFile)
}
