package parser

import "strings"

// Null-like tokens that numeric exports leave behind in identifier cells.
var nullTokens = map[string]struct{}{
	"nan": {},
	"nat": {},
}

// Canonicalize normalizes a raw cell value into a comparable identifier.
// Surrounding whitespace is trimmed, null-like tokens collapse to "", and a
// trailing ".0" left by numeric-typed identifier columns is stripped.
// Total over any input; an empty result means "no identifier".
func Canonicalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if _, ok := nullTokens[strings.ToLower(s)]; ok {
		return ""
	}
	// Strip repeatedly so the function is idempotent even on doubled
	// artifacts ("123.0.0").
	for strings.HasSuffix(s, ".0") {
		s = strings.TrimSuffix(s, ".0")
	}
	return s
}
