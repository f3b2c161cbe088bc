package scanning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenHeader(t *testing.T) {
	tests := []struct {
		line string
		want ScanState
	}{
		{"void f() {", ScanState{Depth: 1, MaxDepth: 1}},
		{"void f() { {", ScanState{Depth: 2, MaxDepth: 2}},
		{"void f() { } {", ScanState{Depth: 1, MaxDepth: 1}},
		{"void f() { }", ScanState{Depth: 0, MaxDepth: 0}},
		{"} void f() {", ScanState{Depth: 0, MaxDepth: 0}},
		{"no braces", ScanState{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OpenHeader(tt.line), "OpenHeader(%q)", tt.line)
	}
}

func TestScanState_Feed(t *testing.T) {
	s := ScanState{Depth: 1, MaxDepth: 1}

	s = s.Feed("if (a) {")
	assert.Equal(t, ScanState{Depth: 2, MaxDepth: 2}, s)

	s = s.Feed("} else {")
	assert.Equal(t, ScanState{Depth: 2, MaxDepth: 2}, s)

	s = s.Feed("{ { } }")
	assert.Equal(t, ScanState{Depth: 2, MaxDepth: 4}, s)

	s = s.Feed("}")
	assert.Equal(t, ScanState{Depth: 1, MaxDepth: 4}, s)
	assert.False(t, s.Closed())

	s = s.Feed("}")
	assert.True(t, s.Closed())
}

func TestScanState_FeedIsByValue(t *testing.T) {
	orig := ScanState{Depth: 1, MaxDepth: 1}
	next := orig.Feed("{{{")

	assert.Equal(t, ScanState{Depth: 1, MaxDepth: 1}, orig)
	assert.Equal(t, ScanState{Depth: 4, MaxDepth: 4}, next)
}

func TestScanState_CountsBracesInLiterals(t *testing.T) {
	s := ScanState{Depth: 1, MaxDepth: 1}.Feed(`printf("{"); // }`)

	assert.Equal(t, ScanState{Depth: 1, MaxDepth: 2}, s)
}

func TestScanState_Closed(t *testing.T) {
	assert.True(t, ScanState{}.Closed())
	assert.True(t, ScanState{Depth: -1}.Closed())
	assert.False(t, ScanState{Depth: 1}.Closed())
}
