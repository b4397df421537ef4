package layout

// Wrapped reports whether the hard line continues in a following run.
func (r Run) Wrapped() bool {
	return r.End < len(r.Text)
}

// VisualEnd is the offset a caret uses for the end of this run. For a run
// that wraps into the next one it is the start of its last glyph, so the
// caret stays on this visual line.
func (r Run) VisualEnd() int {
	if r.Wrapped() && len(r.Glyphs) > 0 {
		last := r.Glyphs[0]
		for _, g := range r.Glyphs {
			if g.End > last.End {
				last = g
			}
		}
		return last.Start
	}
	return r.End
}

// CaretX returns the x position of a caret at byte offset col.
func (r Run) CaretX(col int) float32 {
	for _, g := range r.Glyphs {
		if g.Start == col {
			return r.leadingEdge(g)
		}
	}
	for _, g := range r.Glyphs {
		if g.End == col {
			return r.trailingEdge(g)
		}
	}
	if r.RTL {
		return r.Width
	}
	return 0
}

// OffsetAtX returns the byte offset closest to x within the run.
func (r Run) OffsetAtX(x float32) int {
	if len(r.Glyphs) == 0 {
		return r.Start
	}

	left, right := r.Glyphs[0].X, r.Glyphs[0].X+r.Glyphs[0].W
	for _, g := range r.Glyphs {
		if x >= g.X && x < g.X+g.W {
			before := x < g.X+g.W/2
			if r.RTL {
				before = !before
			}
			if before {
				return g.Start
			}
			if g.End == r.End {
				return r.VisualEnd()
			}
			return g.End
		}
		left = min(left, g.X)
		right = max(right, g.X+g.W)
	}

	atStart := x < left
	if r.RTL {
		atStart = x >= right
	}
	if atStart {
		return r.Start
	}
	return r.VisualEnd()
}

func (r Run) leadingEdge(g Glyph) float32 {
	if r.RTL {
		return g.X + g.W
	}
	return g.X
}

func (r Run) trailingEdge(g Glyph) float32 {
	if r.RTL {
		return g.X
	}
	return g.X + g.W
}

// RunIndex returns the index of the run showing a caret at (row, col).
// A position on a soft-wrap boundary belongs to the run it starts.
func RunIndex(runs []Run, row, col int) (int, bool) {
	found := -1
	for i, r := range runs {
		if r.Line != row {
			if found >= 0 {
				break
			}
			continue
		}
		if col >= r.Start && col < r.End {
			return i, true
		}
		if col >= r.Start && col <= r.End {
			found = i
		}
	}
	return found, found >= 0
}

// RunAtY returns the index of the run whose line box contains y, clamped to
// the first or last run.
func RunAtY(runs []Run, m Metrics, y float32) (int, bool) {
	if len(runs) == 0 {
		return 0, false
	}
	for i, r := range runs {
		if y < r.Top+m.LineHeight {
			return i, true
		}
	}
	return len(runs) - 1, true
}

// HitTest maps a point to a (row, col) buffer position.
func HitTest(runs []Run, m Metrics, x, y float32) (row, col int, ok bool) {
	i, ok := RunAtY(runs, m, y)
	if !ok {
		return 0, 0, false
	}
	return runs[i].Line, runs[i].OffsetAtX(x), true
}

// Extent returns the width and height covered by runs.
func Extent(runs []Run, m Metrics) (w, h float32) {
	for _, r := range runs {
		w = max(w, r.Width)
	}
	return w, float32(len(runs)) * m.LineHeight
}
