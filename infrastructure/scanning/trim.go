// Package scanning detects function boundaries in source text using surface
// heuristics and brace counting. It does not tokenize: braces inside string
// literals and comments are counted like any other.
package scanning

import "strings"

// whitespace is the C-locale isspace set.
const whitespace = " \t\n\v\f\r"

// Trim strips leading and trailing whitespace from s.
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}
