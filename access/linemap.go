package access

import "github.com/iw2rmb/textbox/layout"

// LineSpan is the part of a hard line shown by one visual line.
type LineSpan struct {
	// Line is the hard line index.
	Line int
	// Start is the byte offset of the span inside its hard line, accumulated
	// over the preceding visual lines of the same hard line.
	Start int
	// Lengths holds the byte length of every character of the span.
	Lengths []int
	// Newline is set when the span ends its hard line and a real newline
	// follows it.
	Newline bool
}

// Len returns the number of bytes the span covers, excluding any newline.
func (s LineSpan) Len() int {
	n := 0
	for _, l := range s.Lengths {
		n += l
	}
	return n
}

// End returns the byte offset just past the span.
func (s LineSpan) End() int { return s.Start + s.Len() }

// LineMap translates between buffer positions (hard line, byte offset) and
// visual positions (visual line, character index).
//
// The hard-line accumulator and the visual-line index advance together: the
// accumulator restarts at zero whenever the hard line changes and otherwise
// adds up the bytes of the soft-wrapped continuation lines.
type LineMap struct {
	spans []LineSpan
}

// NewLineMap builds a LineMap from runs in rendering order. lineCount is the
// number of hard lines in the buffer.
func NewLineMap(runs []layout.Run, lineCount int) LineMap {
	spans := make([]LineSpan, 0, len(runs))
	current := 0
	prevLine := -1
	for _, r := range runs {
		if r.Line != prevLine {
			current = 0
		}
		s := LineSpan{
			Line:    r.Line,
			Start:   current,
			Lengths: make([]int, 0, len(r.Glyphs)),
		}
		last := 0
		for _, g := range r.Glyphs {
			s.Lengths = append(s.Lengths, g.End-g.Start)
			last = max(last, g.End)
		}
		if len(r.Glyphs) == 0 {
			last = r.End
		}
		s.Newline = last == len(r.Text) && r.Line < lineCount-1

		spans = append(spans, s)
		current += s.Len()
		prevLine = r.Line
	}
	return LineMap{spans: spans}
}

// NewLineMapFromSpans builds a LineMap from precomputed spans.
func NewLineMapFromSpans(spans []LineSpan) LineMap {
	return LineMap{spans: append([]LineSpan(nil), spans...)}
}

func (m LineMap) Len() int { return len(m.spans) }

func (m LineMap) Span(visual int) (LineSpan, bool) {
	if visual < 0 || visual >= len(m.spans) {
		return LineSpan{}, false
	}
	return m.spans[visual], true
}

// ToVisual maps a buffer position to the first visual line of its hard line
// whose span covers col, and the character index of col inside it.
func (m LineMap) ToVisual(row, col int) (visual, char int, ok bool) {
	for i, s := range m.spans {
		if s.Line != row || col < s.Start || col > s.End() {
			continue
		}
		local := col - s.Start
		acc := 0
		for c, l := range s.Lengths {
			if acc >= local {
				return i, c, true
			}
			acc += l
		}
		return i, len(s.Lengths), true
	}
	return 0, 0, false
}

// ToBuffer maps a visual position back to a buffer position. Character
// indices past the span clamp to its end; a position after a synthetic
// newline maps to the end of the hard line.
func (m LineMap) ToBuffer(visual, char int) (row, col int, ok bool) {
	s, ok := m.Span(visual)
	if !ok {
		return 0, 0, false
	}
	char = min(max(char, 0), len(s.Lengths))
	col = s.Start
	for _, l := range s.Lengths[:char] {
		col += l
	}
	return s.Line, col, true
}
