package buffer

import "strings"

// InsertText inserts text at the cursor, replacing the selection if one is
// active. The cursor ends after the inserted text and the selection is
// dropped.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	if s == "" && r.IsEmpty() {
		b.ClearSelection()
		return
	}

	b.cursor = b.replaceRange(r, s)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}

// DeleteSelection deletes the selected text and reports whether anything was
// deleted. An active but empty selection is dropped and reports false.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		b.ClearSelection()
		return false
	}

	b.cursor = b.replaceRange(r, "")
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos) {
	r = NormalizeRange(Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)})

	prefix := b.lines[r.Start.Row][:r.Start.Col]
	suffix := b.lines[r.End.Row][r.End.Col:]

	ins := strings.Split(text, "\n")
	repl := make([]string, len(ins))
	copy(repl, ins)
	repl[0] = prefix + repl[0]
	last := len(repl) - 1
	nextCursor = Pos{Row: r.Start.Row + last, Col: len(repl[last])}
	repl[last] += suffix

	out := make([]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out
	return nextCursor
}

func textForLinesRange(lines []string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return lines[r.Start.Row][r.Start.Col:r.End.Col]
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		start, end := 0, len(lines[row])
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		sb.WriteString(lines[row][start:end])
	}
	return sb.String()
}
