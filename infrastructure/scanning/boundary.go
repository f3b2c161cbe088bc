package scanning

import (
	"iter"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// ScanNext finds the first function whose header is at or after index from
// and consumes its body. It returns the record, the index of the line after
// the function, and false when no header remains.
//
// A function that never closes ends at the last line. Lines inside a
// consumed body are never examined for headers.
func ScanNext(lines []string, from int) (metric.FunctionRecord, int, bool) {
	for i := max(from, 0); i < len(lines); i++ {
		header := lines[i]
		if !IsHeader(header) {
			continue
		}

		state := OpenHeader(header)
		next := i + 1
		for next < len(lines) && !state.Closed() {
			state = state.Feed(lines[next])
			next++
		}

		// next is one past the last consumed index, which is the 1-based
		// number of the closing line.
		record := metric.NewFunctionRecord(ExtractName(header), i+1, next, state.MaxDepth)
		return record, next, true
	}
	return metric.FunctionRecord{}, len(lines), false
}

// Functions returns the functions of lines in discovery order. The sequence
// is lazy: each step scans only as far as the next function's end.
func Functions(lines []string) iter.Seq[metric.FunctionRecord] {
	return func(yield func(metric.FunctionRecord) bool) {
		cursor := 0
		for {
			record, next, ok := ScanNext(lines, cursor)
			if !ok || !yield(record) {
				return
			}
			cursor = next
		}
	}
}
