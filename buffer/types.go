package buffer

import "github.com/iw2rmb/textbox/internal/grapheme"

// Pos points into the document by hard line (Row) and byte offset (Col).
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order once normalized.
type Range struct {
	Start Pos
	End   Pos
}

func ComparePos(a, b Pos) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds and snaps Col down to a grapheme
// boundary of its row.
//
// - rowCount is the number of hard lines (treated as at least 1).
// - line(row) returns the text of the given row.
func ClampPos(p Pos, rowCount int, line func(row int) string) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)

	text := ""
	if line != nil {
		text = line(row)
	}
	col := grapheme.Floor(text, clampInt(p.Col, 0, len(text)))
	return Pos{Row: row, Col: col}
}
