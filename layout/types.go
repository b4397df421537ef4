// Package layout defines the read-only shaping service a text box consumes
// and ships Mono, a fixed-advance shaper suitable for terminals and tests.
//
// All geometry is in physical units relative to the content origin.
package layout

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Glyph is one shaped cluster of a run. Start and End are byte offsets into
// the run's hard line text.
type Glyph struct {
	Start int
	End   int
	X     float32
	W     float32
}

// Run is one visual line. A hard line wraps into one or more runs that share
// the same Line index.
type Run struct {
	// Line is the hard line index this run belongs to.
	Line int
	// Text is the full text of the hard line, not just this run.
	Text string
	// Glyphs are in rendering order.
	Glyphs []Glyph
	RTL    bool

	// Top is the y coordinate of the run's line box.
	Top   float32
	Width float32

	// Start and End delimit the bytes of Text covered by this run. They are
	// set for empty runs too.
	Start int
	End   int
}

// Metrics are the line metrics shared by every run of a layout.
type Metrics struct {
	FontSize   float32
	LineHeight float32
}

// WrapMode controls how hard lines break into runs.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

// Shaper lays out hard lines into runs.
type Shaper interface {
	Metrics() Metrics
	// Shape lays out lines. maxWidth is ignored for WrapNone.
	Shape(lines []string, maxWidth float32, mode WrapMode) []Run
}
