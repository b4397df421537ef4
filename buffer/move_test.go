package buffer

import "testing"

func TestBuffer_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\nçd")

	b.Move(MotionPrevious)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.Move(MotionNext)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}

	b.SetCursor(Pos{Row: 0, Col: 2})
	b.Move(MotionNext)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	// "ç" is two bytes
	b.Move(MotionNext)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}

	b.SetCursor(Pos{Row: 1, Col: 0})
	b.Move(MotionPrevious)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("hello, big world\nnext")

	b.Move(MotionNextWord)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 5}) {
		t.Fatalf("cursor=%v, want (0,5)", got)
	}
	b.Move(MotionNextWord)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 10}) {
		t.Fatalf("cursor=%v, want (0,10)", got)
	}

	b.SetCursor(Pos{Row: 0, Col: 16})
	b.Move(MotionNextWord)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.Move(MotionPreviousWord)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 16}) {
		t.Fatalf("cursor=%v, want (0,16)", got)
	}
	b.Move(MotionPreviousWord)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 11}) {
		t.Fatalf("cursor=%v, want (0,11)", got)
	}

	// inside a word, previous word goes to its start
	b.SetCursor(Pos{Row: 0, Col: 8})
	b.Move(MotionPreviousWord)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 7}) {
		t.Fatalf("cursor=%v, want (0,7)", got)
	}
}

func TestBuffer_MoveParagraphAndBuffer(t *testing.T) {
	b := New("a\nbc")

	b.SetCursor(Pos{Row: 1, Col: 1})
	b.Move(MotionParagraphEnd)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	b.Move(MotionParagraphStart)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.Move(MotionBufferStart)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
	b.Move(MotionBufferEnd)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
}

func TestBuffer_Move_LeavesAnchor(t *testing.T) {
	b := New("abc")
	b.SetAnchor(Pos{})
	b.Move(MotionBufferEnd)

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection to follow cursor")
	}
	if r.End != (Pos{Row: 0, Col: 3}) {
		t.Fatalf("selection end=%v, want (0,3)", r.End)
	}
}

func TestBuffer_Move_EmptyBufferIsNoop(t *testing.T) {
	b := New("")
	for _, m := range []Motion{
		MotionPrevious, MotionNext, MotionPreviousWord, MotionNextWord,
		MotionParagraphStart, MotionParagraphEnd, MotionBufferStart, MotionBufferEnd,
	} {
		b.Move(m)
		if got := b.Cursor(); got != (Pos{}) {
			t.Fatalf("motion %d moved cursor to %v", m, got)
		}
	}
	if b.Version() != 0 {
		t.Fatalf("version=%d, want 0", b.Version())
	}
}
