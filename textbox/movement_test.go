package textbox

import (
	"testing"

	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/layout"
)

func newEditor(text string, mode layout.WrapMode, width float32) *Editor {
	e := NewEditor(text, layout.Cells())
	e.SetWrap(mode, width)
	return e
}

func TestEditorMove_ExtendAnchorsAtCursor(t *testing.T) {
	e := newEditor("abc", layout.WrapNone, 0)
	e.Move(Grapheme(Downstream), true, 0)
	e.Move(Grapheme(Downstream), true, 0)

	r, ok := e.Buffer().Selection()
	if !ok || r != (buffer.Range{Start: buffer.Pos{}, End: buffer.Pos{Row: 0, Col: 2}}) {
		t.Fatalf("selection: got %v %v, want [0,2)", r, ok)
	}

	e.Move(Grapheme(Upstream), false, 0)
	if _, ok := e.Buffer().Anchor(); ok {
		t.Fatalf("plain move must drop the selection")
	}
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor: got %v, want {0 1}", got)
	}
}

func TestEditorMove_VisualDirectionFollowsRun(t *testing.T) {
	e := newEditor("אב", layout.WrapNone, 0)
	e.Move(Grapheme(Left), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: len("א")}) {
		t.Fatalf("left in rtl: got %v, want logical next", got)
	}
	e.Move(Grapheme(Right), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("right in rtl: got %v, want logical previous", got)
	}

	ltr := newEditor("ab", layout.WrapNone, 0)
	ltr.Move(Grapheme(Right), false, 0)
	if got := ltr.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("right in ltr: got %v, want {0 1}", got)
	}
}

func TestEditorMove_WordDirections(t *testing.T) {
	e := newEditor("one two", layout.WrapNone, 0)
	e.Move(Word(Downstream), false, 0)
	if got := e.Buffer().Cursor().Col; got != 3 {
		t.Fatalf("next word: got %d, want 3", got)
	}
	e.Move(Word(Right), false, 0)
	if got := e.Buffer().Cursor().Col; got != 7 {
		t.Fatalf("right word: got %d, want 7", got)
	}
	e.Move(Word(Upstream), false, 0)
	if got := e.Buffer().Cursor().Col; got != 4 {
		t.Fatalf("previous word: got %d, want 4", got)
	}
}

func TestEditorMove_LineKeepsPreferredX(t *testing.T) {
	e := newEditor("abcdef\nab\nabcdef", layout.WrapNone, 0)
	e.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 5})

	e.Move(Line(Downstream), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("down onto short line: got %v, want {1 2}", got)
	}
	e.Move(Line(Downstream), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 2, Col: 5}) {
		t.Fatalf("down keeps column: got %v, want {2 5}", got)
	}
	e.Move(Line(Downstream), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 2, Col: 5}) {
		t.Fatalf("down past last line: got %v, want unchanged", got)
	}
}

func TestEditorMove_LineStartEndOnWrappedRun(t *testing.T) {
	e := newEditor("hello world", layout.WrapWord, 8)

	e.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 8})
	e.Move(LineStart, false, 0)
	if got := e.Buffer().Cursor().Col; got != 6 {
		t.Fatalf("home on continuation: got %d, want 6", got)
	}
	e.Move(LineEnd, false, 0)
	if got := e.Buffer().Cursor().Col; got != 11 {
		t.Fatalf("end on last run: got %d, want 11", got)
	}

	e.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 2})
	e.Move(LineEnd, false, 0)
	if got := e.Buffer().Cursor().Col; got != 5 {
		t.Fatalf("end on wrapped run: got %d, want 5", got)
	}
}

func TestEditorMove_PageUsesHeight(t *testing.T) {
	e := newEditor("a\nb\nc\nd\ne\nf\ng\nh", layout.WrapNone, 0)
	e.Move(Page(Downstream), false, 3)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 3, Col: 0}) {
		t.Fatalf("page down: got %v, want {3 0}", got)
	}
	e.Move(Page(Downstream), false, 100)
	if got := e.Buffer().Cursor().Row; got != 7 {
		t.Fatalf("page down past end: got row %d, want 7", got)
	}
	e.Move(Page(Upstream), false, 5)
	if got := e.Buffer().Cursor().Row; got != 2 {
		t.Fatalf("page up: got row %d, want 2", got)
	}
}

func TestEditorMove_BodyAndUnsupported(t *testing.T) {
	e := newEditor("ab\ncd", layout.WrapNone, 0)
	e.Move(Body(Downstream), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("body downstream: got %v", got)
	}
	e.Move(Line(Left), false, 0)
	e.Move(Page(Right), false, 10)
	e.Move(Body(Left), false, 0)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("unsupported movements must not move: got %v", got)
	}
}

func TestEditorMove_EmptyBufferIsNoop(t *testing.T) {
	movements := []Movement{
		Grapheme(Upstream), Grapheme(Downstream), Grapheme(Left), Grapheme(Right),
		Word(Upstream), Word(Downstream), Word(Left), Word(Right),
		Line(Upstream), Line(Downstream), Page(Upstream), Page(Downstream),
		Body(Upstream), Body(Downstream), LineStart, LineEnd,
	}
	e := newEditor("", layout.WrapWord, 10)
	for _, m := range movements {
		e.Move(m, false, 10)
		if got := e.Buffer().Cursor(); got != (buffer.Pos{}) {
			t.Fatalf("%v on empty buffer: got %v", m, got)
		}
	}
}

func TestEditor_SelectWord(t *testing.T) {
	e := newEditor("one two  three", layout.WrapNone, 0)
	e.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 5})
	e.SelectWord()
	if got, _ := e.Buffer().SelectedText(); got != "two" {
		t.Fatalf("word: got %q, want %q", got, "two")
	}

	e.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 7})
	e.Buffer().ClearSelection()
	e.SelectWord()
	if got, _ := e.Buffer().SelectedText(); got != "  " {
		t.Fatalf("space run: got %q, want two spaces", got)
	}

	e.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 14})
	e.Buffer().ClearSelection()
	e.SelectWord()
	if got, _ := e.Buffer().SelectedText(); got != "three" {
		t.Fatalf("word at end: got %q, want %q", got, "three")
	}
}

func TestEditor_ClickAndDrag(t *testing.T) {
	e := newEditor("abc\ndef", layout.WrapNone, 0)
	e.Click(1.2, 0.5)
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("click: got %v, want {0 1}", got)
	}
	e.Drag(2.6, 1.5)
	r, ok := e.Buffer().Selection()
	if !ok || r.Start != (buffer.Pos{Row: 0, Col: 1}) || r.End != (buffer.Pos{Row: 1, Col: 3}) {
		t.Fatalf("drag selection: got %v %v", r, ok)
	}
	e.Click(0, 0)
	if _, ok := e.Buffer().Anchor(); ok {
		t.Fatalf("click must drop the selection")
	}
}

func TestEditor_CaretBox(t *testing.T) {
	e := newEditor("ab\ncd", layout.WrapNone, 0)
	e.Buffer().SetCursor(buffer.Pos{Row: 1, Col: 1})
	if got := e.CaretBox(1); got != (layout.Rect{X: 1, Y: 1, W: 1, H: 1}) {
		t.Fatalf("caret box: got %+v", got)
	}
}
