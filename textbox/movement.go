package textbox

import "fmt"

// Direction of a movement. Upstream and Downstream follow buffer order;
// Left and Right follow rendering order and depend on the direction of the
// visual line holding the cursor.
type Direction uint8

const (
	Upstream Direction = iota
	Downstream
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Upstream:
		return "upstream"
	case Downstream:
		return "downstream"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Unit is the granularity of a movement.
type Unit uint8

const (
	UnitGrapheme Unit = iota
	UnitWord
	UnitLine
	UnitPage
	UnitBody
	UnitLineStart
	UnitLineEnd
)

// Movement is an abstract cursor movement. Build one with Grapheme, Word,
// Line, Page, Body, LineStart or LineEnd.
type Movement struct {
	Unit      Unit
	Direction Direction
}

func Grapheme(d Direction) Movement { return Movement{Unit: UnitGrapheme, Direction: d} }
func Word(d Direction) Movement     { return Movement{Unit: UnitWord, Direction: d} }
func Line(d Direction) Movement     { return Movement{Unit: UnitLine, Direction: d} }
func Page(d Direction) Movement     { return Movement{Unit: UnitPage, Direction: d} }
func Body(d Direction) Movement     { return Movement{Unit: UnitBody, Direction: d} }

var (
	LineStart = Movement{Unit: UnitLineStart}
	LineEnd   = Movement{Unit: UnitLineEnd}
)

func (m Movement) String() string {
	switch m.Unit {
	case UnitGrapheme:
		return "grapheme(" + m.Direction.String() + ")"
	case UnitWord:
		return "word(" + m.Direction.String() + ")"
	case UnitLine:
		return "line(" + m.Direction.String() + ")"
	case UnitPage:
		return "page(" + m.Direction.String() + ")"
	case UnitBody:
		return "body(" + m.Direction.String() + ")"
	case UnitLineStart:
		return "line-start"
	case UnitLineEnd:
		return "line-end"
	default:
		return fmt.Sprintf("Movement(%d,%d)", m.Unit, m.Direction)
	}
}

// Move applies a movement to the cursor. When extend is set and no
// selection is active, the selection is anchored at the current cursor;
// without extend any selection is dropped first. pageHeight is the visible
// height used by Page movements.
//
// Move never scrolls; callers recompute the caret afterwards.
func (e *Editor) Move(m Movement, extend bool, pageHeight float32) {
	if extend {
		if _, ok := e.buf.Anchor(); !ok {
			e.buf.SetAnchor(e.buf.Cursor())
		}
	} else {
		e.buf.ClearSelection()
	}

	if a, ok := actionFor(m); ok {
		e.Do(a)
		return
	}
	switch {
	case m.Unit == UnitPage && m.Direction == Upstream:
		e.Vertical(-pageHeight)
	case m.Unit == UnitPage && m.Direction == Downstream:
		e.Vertical(pageHeight)
	}
}

func actionFor(m Movement) (Action, bool) {
	switch m.Unit {
	case UnitGrapheme:
		switch m.Direction {
		case Upstream:
			return ActionPrevious, true
		case Downstream:
			return ActionNext, true
		case Left:
			return ActionLeft, true
		case Right:
			return ActionRight, true
		}
	case UnitWord:
		switch m.Direction {
		case Upstream:
			return ActionPreviousWord, true
		case Downstream:
			return ActionNextWord, true
		case Left:
			return ActionLeftWord, true
		case Right:
			return ActionRightWord, true
		}
	case UnitLine:
		switch m.Direction {
		case Upstream:
			return ActionUp, true
		case Downstream:
			return ActionDown, true
		}
	case UnitBody:
		switch m.Direction {
		case Upstream:
			return ActionBufferStart, true
		case Downstream:
			return ActionBufferEnd, true
		}
	case UnitLineStart:
		return ActionHome, true
	case UnitLineEnd:
		return ActionEnd, true
	}
	return 0, false
}
