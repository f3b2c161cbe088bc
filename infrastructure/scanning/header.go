package scanning

import "strings"

// controlKeywords open blocks that look like headers but are not functions.
// Matched as plain prefixes, case-sensitive.
var controlKeywords = []string{"if", "for", "while", "switch"}

// IsHeader reports whether line plausibly starts a function definition whose
// body opens on the same line.
//
// The check is a surface heuristic. Headers split across lines are missed,
// and lambdas or initializer lists ending in '{' are accepted.
func IsHeader(line string) bool {
	s := Trim(line)
	if s == "" {
		return false
	}
	if s[0] == '/' || s[0] == '#' {
		return false
	}

	open := strings.IndexByte(s, '(')
	closing := strings.IndexByte(s, ')')
	if open < 0 || closing < 0 || closing < open {
		return false
	}
	if s[len(s)-1] != '{' {
		return false
	}

	for _, kw := range controlKeywords {
		if strings.HasPrefix(s, kw) {
			return false
		}
	}
	return true
}
