package scanning

import "strings"

// CountLoopLines returns the number of lines containing "for" or "while"
// anywhere, identifiers and comments included.
func CountLoopLines(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.Contains(line, "for") || strings.Contains(line, "while") {
			n++
		}
	}
	return n
}
