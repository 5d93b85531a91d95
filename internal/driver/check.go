package driver

import (
	"context"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"github.com/mohamed/svlang/internal/compilation"
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/parser"
	"github.com/mohamed/svlang/internal/preprocessor"
	"github.com/mohamed/svlang/internal/source"
	"github.com/mohamed/svlang/internal/syntax"
)

// CheckRequest describes one check invocation: the files making up a
// design, which top-level definitions to elaborate (empty means parse
// and bind every file but skip instance elaboration), and the knobs a
// Compilation applies uniformly.
type CheckRequest struct {
	Paths          []string
	MaxDiagnostics int
	Tops           []string
	Config         compilation.Config
	Jobs           int

	// IncludeDirs is searched (in order) for quoted and angled `include
	// targets that aren't found relative to the including file itself.
	IncludeDirs []string
	// Defines seeds the macro table of every file before its first token,
	// each entry either "NAME" or "NAME=VALUE".
	Defines []string

	// Progress receives one Event per file as it moves through the
	// pipeline; nil disables progress reporting.
	Progress ProgressSink
}

// FileResult is one input file's outcome: whether it loaded, and the
// diagnostics its own preprocessing+parsing produced.
type FileResult struct {
	Path string
	Err  error
	Bag  *diag.Bag
}

// CheckResult is everything a caller needs to render a check's outcome:
// the shared FileSet and Compilation, per-file parse diagnostics, the
// elaboration diagnostics, and the elaborated instance trees (nil if no
// Tops were requested).
type CheckResult struct {
	FileSet     *source.FileSet
	Compilation *compilation.Compilation
	Files       []FileResult
	ElabBag     *diag.Bag
	Tops        []*compilation.Instance
}

// HasErrors reports whether any file failed to load or parse, or any
// error diagnostic was produced across parsing or elaboration.
func (r *CheckResult) HasErrors() bool {
	for _, f := range r.Files {
		if f.Err != nil || (f.Bag != nil && f.Bag.HasErrors()) {
			return true
		}
	}
	return r.ElabBag != nil && r.ElabBag.HasErrors()
}

// loadedFile is the disk-I/O-bound half of preprocessing a source file:
// reading its bytes. Splitting this out is what lets Check parallelize
// across files with golang.org/x/sync/errgroup even though the parse
// itself must run single-threaded against one shared *syntax.Builder.
type loadedFile struct {
	path    string
	content []byte
	err     error
}

// Check builds one Compilation over req.Paths and, if req.Tops is
// non-empty, elaborates each named top-level definition's instance tree.
//
// Reading every file's bytes happens concurrently (bounded by req.Jobs,
// defaulting to GOMAXPROCS); preprocessing, parsing, and elaboration
// then run sequentially on the calling goroutine because every one of
// them mutates the single shared syntax.Builder / symbols.Table a
// Compilation owns.
func Check(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	loaded, err := loadFiles(ctx, req.Paths, req.Jobs)
	if err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	b := syntax.NewBuilder(syntax.Hints{})
	elabBag := diag.NewBag(req.MaxDiagnostics)
	comp := compilation.New(diag.BagReporter{Bag: elabBag}, b, req.Config)

	result := &CheckResult{FileSet: fs, Compilation: comp}

	var resolver source.IncludeResolver
	if len(req.IncludeDirs) > 0 {
		resolver = &source.DirIncludeResolver{UserDirs: req.IncludeDirs}
	}
	macros := ParseDefines(req.Defines)

	for _, lf := range loaded {
		emit(req.Progress, lf.path, StageLoad, StatusWorking)
		if lf.err != nil {
			result.Files = append(result.Files, FileResult{Path: lf.path, Err: lf.err})
			emit(req.Progress, lf.path, StageLoad, StatusError)
			continue
		}

		fileID := fs.Add(lf.path, lf.content, source.FileFlags(0))
		bag := diag.NewBag(req.MaxDiagnostics)

		emit(req.Progress, lf.path, StageParse, StatusWorking)
		pp := preprocessor.New(fs, fileID, preprocessor.Options{
			Reporter:         diag.BagReporter{Bag: bag},
			IncludeResolver:  resolver,
			PredefinedMacros: macros,
		})
		maxErrors, castErr := safecast.Conv[uint](max(req.MaxDiagnostics, 0))
		if castErr != nil {
			return nil, castErr
		}
		parseRes := parser.ParseFile(pp, b, parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: maxErrors,
		})

		comp.AddSyntaxTree(parseRes.File)
		result.Files = append(result.Files, FileResult{Path: lf.path, Bag: bag})
		if bag.HasErrors() {
			emit(req.Progress, lf.path, StageParse, StatusError)
		} else {
			emit(req.Progress, lf.path, StageParse, StatusDone)
		}
	}

	if len(req.Tops) > 0 {
		emitStage(req.Progress, StageElaborate, StatusWorking)
		result.Tops = comp.Elaborate(req.Tops...)
	}
	result.ElabBag = elabBag
	doneStatus := StatusDone
	if result.HasErrors() {
		doneStatus = StatusError
	}
	emitStage(req.Progress, StageDone, doneStatus)
	return result, nil
}

func loadFiles(ctx context.Context, paths []string, jobs int) ([]loadedFile, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	out := make([]loadedFile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			content, err := readFile(path)
			out[i] = loadedFile{path: path, content: content, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
