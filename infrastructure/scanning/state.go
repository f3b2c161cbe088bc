package scanning

// ScanState is the brace-tracking state threaded through a function body.
// It is passed and returned by value.
type ScanState struct {
	// Depth is the count of unmatched '{' since the header began.
	Depth int
	// MaxDepth is the highest Depth observed.
	MaxDepth int
}

// OpenHeader returns the state after the header line's own braces. MaxDepth
// is seeded with the net depth, not the peak reached within the header.
func OpenHeader(line string) ScanState {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return ScanState{Depth: depth, MaxDepth: depth}
}

// Feed advances the state over one body line, character by character.
func (s ScanState) Feed(line string) ScanState {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			s.Depth++
			s.MaxDepth = max(s.MaxDepth, s.Depth)
		case '}':
			s.Depth--
		}
	}
	return s
}

// Closed reports whether the function's braces have balanced out.
func (s ScanState) Closed() bool {
	return s.Depth <= 0
}
