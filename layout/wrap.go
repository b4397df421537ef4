package layout

import "github.com/iw2rmb/textbox/internal/grapheme"

type wrapUnit struct {
	span  grapheme.Span
	width int

	isWhitespace bool
}

type wrappedSegment struct {
	// first and last index units as [first, last).
	first int
	last  int

	start int
	end   int
	cells int
}

// wrapSegments splits one hard line into segments of at most cellLimit cells.
// A cellLimit of zero disables wrapping. Every line yields at least one
// segment, so empty lines still produce a run.
func wrapSegments(units []wrapUnit, mode WrapMode, cellLimit int) []wrappedSegment {
	if len(units) == 0 {
		return []wrappedSegment{{}}
	}
	if mode == WrapNone || cellLimit <= 0 {
		return []wrappedSegment{segmentFromUnitRange(units, 0, len(units))}
	}

	segments := make([]wrappedSegment, 0, 1)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := units[overflow].width
			if used > 0 && used+w > cellLimit {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			}
		}
		// Whitespace that overflows stays on the line it trails.
		for end < len(units) && units[end].isWhitespace {
			end++
		}

		segments = append(segments, segmentFromUnitRange(units, start, end))
		start = end
	}
	return segments
}

// findWordWrapBreak returns the unit index just past the last whitespace run
// in [start, overflow).
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	lastBreak := -1
	for i := start; i < overflow; {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}
	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

func segmentFromUnitRange(units []wrapUnit, first, last int) wrappedSegment {
	seg := wrappedSegment{
		first: first,
		last:  last,
		start: units[first].span.Start,
		end:   units[last-1].span.End,
	}
	for _, u := range units[first:last] {
		seg.cells += u.width
	}
	return seg
}

// hangingCells is the width of seg once trailing whitespace is allowed to
// hang past cellLimit. Without a limit it is the full width.
func (seg wrappedSegment) hangingCells(units []wrapUnit, cellLimit int) int {
	if cellLimit <= 0 || seg.cells <= cellLimit {
		return seg.cells
	}
	content := seg.cells
	for i := seg.last - 1; i >= seg.first && units[i].isWhitespace; i-- {
		content -= units[i].width
	}
	return max(content, cellLimit)
}
