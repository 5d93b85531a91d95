package preprocessor

import (
	"github.com/mohamed/svlang/internal/diag"
	"github.com/mohamed/svlang/internal/source"
)

// DefaultMaxIncludeDepth bounds nested `include chains against a runaway
// or cyclic include graph.
const DefaultMaxIncludeDepth = 16

// Options configures a Preprocessor.
type Options struct {
	Reporter        diag.Reporter
	IncludeResolver source.IncludeResolver
	MaxIncludeDepth int

	// PredefinedMacros seeds the macro table before the first token is
	// requested, in `-D NAME[=VALUE]` command-line form.
	PredefinedMacros map[string]string
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}

func (o Options) maxIncludeDepth() int {
	if o.MaxIncludeDepth <= 0 {
		return DefaultMaxIncludeDepth
	}
	return o.MaxIncludeDepth
}
