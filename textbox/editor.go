package textbox

import (
	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/internal/grapheme"
	"github.com/iw2rmb/textbox/layout"
)

// Action is a native cursor action of an Editor.
type Action uint8

const (
	ActionPrevious Action = iota
	ActionNext
	ActionLeft
	ActionRight
	ActionPreviousWord
	ActionNextWord
	ActionLeftWord
	ActionRightWord
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
	ActionParagraphStart
	ActionParagraphEnd
	ActionBufferStart
	ActionBufferEnd
)

// Editor couples a buffer with its layout. Runs are shaped lazily and
// cached until the text, the wrap mode or the wrap width changes.
type Editor struct {
	buf    *buffer.Buffer
	shaper layout.Shaper

	wrap  layout.WrapMode
	width float32

	cache layoutCache

	// preferredX keeps the caret column across consecutive vertical moves.
	preferredX    float32
	hasPreferredX bool
}

type layoutCache struct {
	valid       bool
	textVersion uint64
	wrap        layout.WrapMode
	width       float32
	runs        []layout.Run
}

// NewEditor returns an editor over text. A nil shaper uses layout.Cells().
func NewEditor(text string, shaper layout.Shaper) *Editor {
	if shaper == nil {
		shaper = layout.Cells()
	}
	return &Editor{buf: buffer.New(text), shaper: shaper}
}

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Text() string { return e.buf.Text() }

// SetText replaces the text, moving the cursor to the start.
func (e *Editor) SetText(s string) {
	e.buf.SetText(s)
	e.hasPreferredX = false
}

// SetWrap sets how hard lines break. width is the wrap width in physical
// units and is ignored for layout.WrapNone.
func (e *Editor) SetWrap(mode layout.WrapMode, width float32) {
	e.wrap = mode
	e.width = width
}

func (e *Editor) Metrics() layout.Metrics { return e.shaper.Metrics() }

// Runs returns the current visual lines in rendering order.
func (e *Editor) Runs() []layout.Run {
	width := e.width
	if e.wrap == layout.WrapNone {
		width = 0
	}
	c := &e.cache
	if c.valid && c.textVersion == e.buf.TextVersion() && c.wrap == e.wrap && c.width == width {
		return c.runs
	}
	*c = layoutCache{
		valid:       true,
		textVersion: e.buf.TextVersion(),
		wrap:        e.wrap,
		width:       width,
		runs:        e.shaper.Shape(e.buf.Lines(), width, e.wrap),
	}
	return c.runs
}

// Extent returns the laid out content bounds relative to the content origin.
func (e *Editor) Extent() layout.Rect {
	w, h := layout.Extent(e.Runs(), e.Metrics())
	return layout.Rect{W: w, H: h}
}

// CaretBox returns the caret bounds relative to the content origin.
func (e *Editor) CaretBox(caretWidth float32) layout.Rect {
	runs := e.Runs()
	lh := e.Metrics().LineHeight
	c := e.buf.Cursor()
	i, ok := layout.RunIndex(runs, c.Row, c.Col)
	if !ok {
		return layout.Rect{W: caretWidth, H: lh}
	}
	r := runs[i]
	x := r.CaretX(c.Col)
	if r.RTL {
		x -= caretWidth
	}
	return layout.Rect{X: x, Y: r.Top, W: caretWidth, H: lh}
}

// Do performs a native action on the cursor. The selection anchor is left
// alone.
func (e *Editor) Do(a Action) {
	if a != ActionUp && a != ActionDown {
		e.hasPreferredX = false
	}

	switch a {
	case ActionPrevious:
		e.buf.Move(buffer.MotionPrevious)
	case ActionNext:
		e.buf.Move(buffer.MotionNext)
	case ActionLeft:
		e.buf.Move(e.visual(buffer.MotionPrevious, buffer.MotionNext))
	case ActionRight:
		e.buf.Move(e.visual(buffer.MotionNext, buffer.MotionPrevious))
	case ActionPreviousWord:
		e.buf.Move(buffer.MotionPreviousWord)
	case ActionNextWord:
		e.buf.Move(buffer.MotionNextWord)
	case ActionLeftWord:
		e.buf.Move(e.visual(buffer.MotionPreviousWord, buffer.MotionNextWord))
	case ActionRightWord:
		e.buf.Move(e.visual(buffer.MotionNextWord, buffer.MotionPreviousWord))
	case ActionUp:
		e.verticalLine(-1)
	case ActionDown:
		e.verticalLine(1)
	case ActionHome:
		if r, ok := e.cursorRun(); ok {
			e.buf.SetCursor(buffer.Pos{Row: r.Line, Col: r.Start})
		}
	case ActionEnd:
		if r, ok := e.cursorRun(); ok {
			e.buf.SetCursor(buffer.Pos{Row: r.Line, Col: r.VisualEnd()})
		}
	case ActionParagraphStart:
		e.buf.Move(buffer.MotionParagraphStart)
	case ActionParagraphEnd:
		e.buf.Move(buffer.MotionParagraphEnd)
	case ActionBufferStart:
		e.buf.Move(buffer.MotionBufferStart)
	case ActionBufferEnd:
		e.buf.Move(buffer.MotionBufferEnd)
	}
}

// visual picks ltr or rtl depending on the direction of the cursor's run.
func (e *Editor) visual(ltr, rtl buffer.Motion) buffer.Motion {
	if r, ok := e.cursorRun(); ok && r.RTL {
		return rtl
	}
	return ltr
}

func (e *Editor) cursorRun() (layout.Run, bool) {
	runs := e.Runs()
	c := e.buf.Cursor()
	i, ok := layout.RunIndex(runs, c.Row, c.Col)
	if !ok {
		return layout.Run{}, false
	}
	return runs[i], true
}

func (e *Editor) caretX(r layout.Run) float32 {
	if !e.hasPreferredX {
		e.preferredX = r.CaretX(e.buf.Cursor().Col)
		e.hasPreferredX = true
	}
	return e.preferredX
}

func (e *Editor) verticalLine(step int) {
	runs := e.Runs()
	c := e.buf.Cursor()
	i, ok := layout.RunIndex(runs, c.Row, c.Col)
	if !ok {
		return
	}
	x := e.caretX(runs[i])
	j := i + step
	if j < 0 || j >= len(runs) {
		return
	}
	e.buf.SetCursor(buffer.Pos{Row: runs[j].Line, Col: runs[j].OffsetAtX(x)})
}

// Vertical moves the caret by dy physical units, keeping its x position.
func (e *Editor) Vertical(dy float32) {
	runs := e.Runs()
	c := e.buf.Cursor()
	i, ok := layout.RunIndex(runs, c.Row, c.Col)
	if !ok {
		return
	}
	x := e.caretX(runs[i])
	m := e.Metrics()
	j, _ := layout.RunAtY(runs, m, runs[i].Top+dy+m.LineHeight/2)
	e.buf.SetCursor(buffer.Pos{Row: runs[j].Line, Col: runs[j].OffsetAtX(x)})
}

// Click places the cursor at content-local (x, y) and drops the selection.
func (e *Editor) Click(x, y float32) {
	e.hasPreferredX = false
	e.buf.ClearSelection()
	if row, col, ok := layout.HitTest(e.Runs(), e.Metrics(), x, y); ok {
		e.buf.SetCursor(buffer.Pos{Row: row, Col: col})
	}
}

// Drag extends the selection to content-local (x, y), anchoring it at the
// cursor when none is active.
func (e *Editor) Drag(x, y float32) {
	e.hasPreferredX = false
	if _, ok := e.buf.Anchor(); !ok {
		e.buf.SetAnchor(e.buf.Cursor())
	}
	if row, col, ok := layout.HitTest(e.Runs(), e.Metrics(), x, y); ok {
		e.buf.SetCursor(buffer.Pos{Row: row, Col: col})
	}
}

func (e *Editor) SelectAll() {
	e.Do(ActionBufferStart)
	e.buf.SetAnchor(e.buf.Cursor())
	e.Do(ActionBufferEnd)
}

// SelectWord selects the word segment under the cursor. Runs of whitespace
// and punctuation count as segments of their own.
func (e *Editor) SelectWord() {
	e.hasPreferredX = false
	c := e.buf.Cursor()
	line := e.buf.Line(c.Row)
	start, end := c.Col, c.Col
	for _, s := range grapheme.Segments(line) {
		if c.Col < s.End || s.End == len(line) {
			start, end = s.Start, s.End
			break
		}
	}
	e.buf.SetAnchor(buffer.Pos{Row: c.Row, Col: start})
	e.buf.SetCursor(buffer.Pos{Row: c.Row, Col: end})
}

func (e *Editor) SelectParagraph() {
	e.Do(ActionParagraphStart)
	e.buf.SetAnchor(e.buf.Cursor())
	e.Do(ActionParagraphEnd)
}

// Insert replaces the selection, if any, with s.
func (e *Editor) Insert(s string) {
	e.hasPreferredX = false
	e.buf.InsertText(s)
}

// DeleteSelection deletes the selected text and reports whether anything was
// removed.
func (e *Editor) DeleteSelection() bool {
	e.hasPreferredX = false
	return e.buf.DeleteSelection()
}

// SetSelection installs cursor and anchor. Equal ends clear the selection.
func (e *Editor) SetSelection(cursor, anchor buffer.Pos) {
	e.hasPreferredX = false
	e.buf.SetCursor(cursor)
	if cursor == anchor {
		e.buf.ClearSelection()
		return
	}
	e.buf.SetAnchor(anchor)
}
