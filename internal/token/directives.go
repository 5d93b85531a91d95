package token

// directiveNames is the set of compiler directive names the preprocessor
// itself interprets (as opposed to a user macro name, which lexes to the
// same Directive-shaped text but is classified MacroUsage instead).
var directiveNames = map[string]struct{}{
	"define":            {},
	"undef":             {},
	"undefineall":       {},
	"ifdef":             {},
	"ifndef":            {},
	"else":              {},
	"elsif":             {},
	"endif":             {},
	"include":           {},
	"resetall":          {},
	"timescale":         {},
	"default_nettype":   {},
	"celldefine":        {},
	"endcelldefine":     {},
	"unconnected_drive": {},
	"nounconnected_drive": {},
	"pragma":            {},
	"line":              {},
	"begin_keywords":    {},
	"end_keywords":      {},
	"__FILE__":          {},
	"__LINE__":          {},
}

// LookupDirectiveKeyword reports whether name is a directive the
// preprocessor interprets itself, as opposed to a user-defined macro.
func LookupDirectiveKeyword(name string) (struct{}, bool) {
	v, ok := directiveNames[name]
	return v, ok
}
