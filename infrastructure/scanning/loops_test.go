package scanning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLoopLines(t *testing.T) {
	lines := []string{
		"for (int i = 0; i < n; i++) {",
		"while (x) {",
		"do { } while (x);",
		"items.forEach(f);",
		"// wherefore art thou",
		"int x = 0;",
		"",
		"For (upper case)",
	}

	assert.Equal(t, 5, CountLoopLines(lines))
}

func TestCountLoopLines_Empty(t *testing.T) {
	assert.Equal(t, 0, CountLoopLines(nil))
	assert.Equal(t, 0, CountLoopLines([]string{"void f() {", "}"}))
}
