package buffer

import "github.com/iw2rmb/textbox/internal/grapheme"

// Motion is a layout-independent cursor motion.
type Motion int

const (
	MotionPrevious Motion = iota // previous grapheme, crossing hard lines
	MotionNext                   // next grapheme, crossing hard lines
	MotionPreviousWord
	MotionNextWord
	MotionParagraphStart // start of the current hard line
	MotionParagraphEnd   // end of the current hard line
	MotionBufferStart
	MotionBufferEnd
)

// Move applies m to the cursor. The selection anchor is left untouched so
// callers decide whether the motion extends or replaces a selection.
func (b *Buffer) Move(m Motion) {
	b.SetCursor(b.MotionTarget(b.cursor, m))
}

// MotionTarget returns where m would move a cursor sitting at p.
func (b *Buffer) MotionTarget(p Pos, m Motion) Pos {
	p = b.clampPos(p)
	line := b.lines[p.Row]

	switch m {
	case MotionPrevious:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: grapheme.Prev(line, p.Col)}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
		}
	case MotionNext:
		if p.Col < len(line) {
			return Pos{Row: p.Row, Col: grapheme.Next(line, p.Col)}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1, Col: 0}
		}
	case MotionPreviousWord:
		if p.Col == 0 {
			if p.Row > 0 {
				return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
			}
			return p
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case MotionNextWord:
		if p.Col == len(line) {
			if p.Row < len(b.lines)-1 {
				return Pos{Row: p.Row + 1, Col: 0}
			}
			return p
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	case MotionParagraphStart:
		return Pos{Row: p.Row, Col: 0}
	case MotionParagraphEnd:
		return Pos{Row: p.Row, Col: len(line)}
	case MotionBufferStart:
		return Pos{}
	case MotionBufferEnd:
		return b.lastPos()
	}
	return p
}

// Word boundaries follow Unicode word segmentation; only segments holding a
// letter or digit count as words. Motions stop at hard line edges.
func prevWordBoundary(line string, col int) int {
	start := 0
	for _, w := range grapheme.Words(line) {
		if w.Start >= col {
			break
		}
		start = w.Start
	}
	return start
}

func nextWordBoundary(line string, col int) int {
	for _, w := range grapheme.Words(line) {
		if w.End > col {
			return w.End
		}
	}
	return len(line)
}
