package buffer

import "strings"

type selectionState struct {
	active bool
	anchor Pos
}

// Buffer is the document state: text, cursor, and selection anchor.
//
// A selection is active when an anchor is set. The selected range spans the
// anchor and the cursor; an active selection may be empty when the anchor
// sits on the cursor.
type Buffer struct {
	lines       []string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// SetText replaces the whole document, moving the cursor to the start and
// dropping any selection.
func (b *Buffer) SetText(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}

// Version changes on every observable mutation (text, cursor, selection).
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Lines returns a copy of the hard lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Anchor returns the selection anchor and whether a selection is active.
func (b *Buffer) Anchor() (Pos, bool) {
	return b.sel.anchor, b.sel.active
}

// SetAnchor activates the selection with its anchor at p.
func (b *Buffer) SetAnchor(p Pos) {
	next := selectionState{active: true, anchor: b.clampPos(p)}
	if next == b.sel {
		return
	}
	b.sel = next
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized selected range. ok is false when no
// selection is active or the active selection is empty.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.cursor})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return textForLinesRange(b.lines, r), true
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.Line)
}

func (b *Buffer) lastPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
