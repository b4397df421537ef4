package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/bidi"

	"github.com/iw2rmb/textbox/internal/grapheme"
)

// Mono shapes text on a fixed cell grid: every cluster advances by its
// terminal cell width times Advance.
type Mono struct {
	Advance    float32
	LineHeight float32
	FontSize   float32
	TabWidth   int
}

// Cells returns a Mono where one cell is one unit wide and one unit tall.
func Cells() Mono {
	return Mono{Advance: 1, LineHeight: 1, FontSize: 1, TabWidth: 4}
}

func (m Mono) Metrics() Metrics {
	return Metrics{FontSize: m.FontSize, LineHeight: m.LineHeight}
}

func (m Mono) Shape(lines []string, maxWidth float32, mode WrapMode) []Run {
	adv := m.Advance
	if adv <= 0 {
		adv = 1
	}
	cellLimit := 0
	if mode != WrapNone && maxWidth > 0 {
		cellLimit = int(maxWidth / adv)
		if cellLimit < 1 {
			cellLimit = 1
		}
	}

	runs := make([]Run, 0, len(lines))
	for row, line := range lines {
		units := m.units(line)
		rtl := isRTL(line)
		for _, seg := range wrapSegments(units, mode, cellLimit) {
			cells := seg.hangingCells(units, cellLimit)
			run := Run{
				Line:  row,
				Text:  line,
				RTL:   rtl,
				Top:   float32(len(runs)) * m.LineHeight,
				Width: float32(cells) * adv,
				Start: seg.start,
				End:   seg.end,
			}
			cell := 0
			for _, u := range units[seg.first:seg.last] {
				// Whitespace hanging past the wrap width collapses at its edge.
				x := min(cell, cells)
				g := Glyph{
					Start: u.span.Start,
					End:   u.span.End,
					X:     float32(x) * adv,
					W:     float32(min(u.width, cells-x)) * adv,
				}
				if rtl {
					g.X = run.Width - g.X - g.W
				}
				run.Glyphs = append(run.Glyphs, g)
				cell += u.width
			}
			runs = append(runs, run)
		}
	}
	return runs
}

func (m Mono) units(line string) []wrapUnit {
	tabWidth := m.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}
	spans := grapheme.Clusters(line)
	units := make([]wrapUnit, 0, len(spans))
	col := 0
	for _, sp := range spans {
		text := line[sp.Start:sp.End]
		w := clusterCellWidth(text, col, tabWidth)
		units = append(units, wrapUnit{
			span:         sp,
			width:        w,
			isWhitespace: grapheme.IsSpace(text),
		})
		col += w
	}
	return units
}

func clusterCellWidth(text string, col, tabWidth int) int {
	if text == "\t" {
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(text)
	if w == 0 {
		w = uniseg.StringWidth(text)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// isRTL reports whether the first strongly directional rune of text is
// right-to-left.
func isRTL(text string) bool {
	for _, r := range text {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}
