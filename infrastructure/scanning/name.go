package scanning

import (
	"strings"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// ExtractName returns the identifier immediately preceding the first '(' of
// a header line, or metric.UnknownName when there is none.
func ExtractName(line string) string {
	s := Trim(line)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return metric.UnknownName
	}

	start := open
	for start > 0 && isIdentByte(s[start-1]) {
		start--
	}
	if start == open {
		return metric.UnknownName
	}
	return s[start:open]
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
