package driver

import "strings"

// ParseDefines turns a repeatable "-D NAME[=VALUE]" flag's collected
// values into the map preprocessor.Options.PredefinedMacros wants. A
// bare NAME defines an object-like macro whose body is the empty
// string, matching `define NAME with no replacement text.
func ParseDefines(defines []string) map[string]string {
	if len(defines) == 0 {
		return nil
	}
	out := make(map[string]string, len(defines))
	for _, d := range defines {
		name, value, _ := strings.Cut(d, "=")
		out[name] = value
	}
	return out
}
