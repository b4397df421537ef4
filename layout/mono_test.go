package layout

import "testing"

func TestMono_Shape_NoWrap(t *testing.T) {
	runs := Cells().Shape([]string{"ab", "", "c"}, 0, WrapNone)
	if len(runs) != 3 {
		t.Fatalf("runs=%d, want 3", len(runs))
	}

	r := runs[0]
	if r.Line != 0 || r.Start != 0 || r.End != 2 || r.Width != 2 || r.Top != 0 {
		t.Fatalf("run 0: got %+v", r)
	}
	if len(r.Glyphs) != 2 || r.Glyphs[1] != (Glyph{Start: 1, End: 2, X: 1, W: 1}) {
		t.Fatalf("run 0 glyphs: got %+v", r.Glyphs)
	}

	empty := runs[1]
	if empty.Line != 1 || len(empty.Glyphs) != 0 || empty.Start != 0 || empty.End != 0 || empty.Top != 1 {
		t.Fatalf("empty run: got %+v", empty)
	}
}

func TestMono_Shape_WordWrapKeepsTrailingSpace(t *testing.T) {
	runs := Cells().Shape([]string{"hello world"}, 8, WrapWord)
	if len(runs) != 2 {
		t.Fatalf("runs=%d, want 2: %+v", len(runs), runs)
	}
	if runs[0].Start != 0 || runs[0].End != 6 {
		t.Fatalf("first run span: got [%d,%d), want [0,6)", runs[0].Start, runs[0].End)
	}
	if runs[1].Start != 6 || runs[1].End != 11 || runs[1].Line != 0 {
		t.Fatalf("second run: got %+v", runs[1])
	}
	if runs[1].Glyphs[0].X != 0 {
		t.Fatalf("continuation starts at x=%v, want 0", runs[1].Glyphs[0].X)
	}
	if !runs[0].Wrapped() || runs[1].Wrapped() {
		t.Fatalf("wrapped flags: got %v %v, want true false", runs[0].Wrapped(), runs[1].Wrapped())
	}
}

func TestMono_Shape_OverflowingSpacesHang(t *testing.T) {
	runs := Cells().Shape([]string{"abcd        "}, 5, WrapWord)
	if len(runs) != 1 {
		t.Fatalf("runs=%d, want 1: %+v", len(runs), runs)
	}
	r := runs[0]
	if r.Width != 5 {
		t.Fatalf("width: got %v, want 5", r.Width)
	}
	if w, _ := Extent(runs, Cells().Metrics()); w != 5 {
		t.Fatalf("extent width: got %v, want 5", w)
	}
	for i, g := range r.Glyphs {
		if g.X+g.W > 5 {
			t.Fatalf("glyph %d ends at %v, past the wrap width", i, g.X+g.W)
		}
	}
	if got := r.CaretX(r.End); got != 5 {
		t.Fatalf("caret at end: got %v, want 5", got)
	}
}

func TestMono_Shape_GraphemeWrap(t *testing.T) {
	runs := Cells().Shape([]string{"abcdefg"}, 3, WrapGrapheme)
	if len(runs) != 3 {
		t.Fatalf("runs=%d, want 3", len(runs))
	}
	total := 0
	for _, r := range runs {
		for _, g := range r.Glyphs {
			total += g.End - g.Start
		}
	}
	if total != 7 {
		t.Fatalf("glyph bytes=%d, want 7", total)
	}
}

func TestMono_Shape_WideAndTab(t *testing.T) {
	runs := Cells().Shape([]string{"テ\tx"}, 0, WrapNone)
	g := runs[0].Glyphs
	if len(g) != 3 {
		t.Fatalf("glyphs=%d, want 3", len(g))
	}
	if g[0].W != 2 {
		t.Fatalf("wide glyph width=%v, want 2", g[0].W)
	}
	// tab from column 2 advances to column 4
	if g[1].X != 2 || g[1].W != 2 {
		t.Fatalf("tab glyph: got %+v", g[1])
	}
}

func TestMono_Shape_RTLMirrorsPositions(t *testing.T) {
	runs := Cells().Shape([]string{"שלום"}, 0, WrapNone)
	r := runs[0]
	if !r.RTL {
		t.Fatalf("expected RTL run")
	}
	first := r.Glyphs[0]
	if first.Start != 0 || first.X != 3 {
		t.Fatalf("first logical glyph: got %+v, want x=3", first)
	}
}
