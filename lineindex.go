package lazylabel

import "sort"

// buildLineIndex computes the cumulative top-edge y coordinate of each
// line of the paragraph, starting at originY. The result has one entry
// per line plus a trailing sentinel equal to the bottom edge of the
// last line, and is non-decreasing throughout.
//
// This only needs to run when the measurement or the widget height
// changes, never per scroll frame.
func buildLineIndex(par Paragraph, originY float64) []float64 {
	count := par.LineCount()
	offsets := make([]float64, count+1)
	y := originY
	for i := 0; i < count; i++ {
		offsets[i] = y
		y += par.LineHeight(i)
	}
	offsets[count] = y
	return offsets
}

// locateRange finds the [start, end) line range that must be rendered
// to cover the [yLow, yHigh] window. Both searches are leftmost-match
// binary searches; the end search resumes from start.
//
// The raw results are then widened by one line on each side so that
// lines partially visible at the window edges never miss pixels during
// fast scrolling. This over-render margin is deliberate and callers
// must clamp end (and possibly start) to their line count.
func locateRange(offsets []float64, yLow, yHigh float64) (start, end int) {
	start = sort.SearchFloat64s(offsets, yLow)
	end = start + sort.SearchFloat64s(offsets[start:], yHigh)
	if start > 0 {
		start -= 1
	}
	end += 1
	return start, end
}
