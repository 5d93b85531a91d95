package lexer

import "github.com/mohamed/svlang/internal/diag"

// Options configures a Lexer. Reporter may be nil, in which case
// diagnostics are silently discarded.
type Options struct {
	Reporter diag.Reporter

	// KeywordVersion selects which keyword table applies; empty means the
	// full current LRM keyword set. Reserved for `` `begin_keywords ``
	// directive support in the preprocessor.
	KeywordVersion string
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}
