package editor

import "fmt"

// LineNumberWidth returns the line-number gutter width for lineCount.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	d := 0
	for n := lineCount; n > 0; n /= 10 {
		d++
	}
	return d
}

// gutterWidth is zero when line numbers are off.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return min(LineNumberWidth(m.lineCount()), m.width)
}

// renderGutter renders the gutter cell of one screen row. line is the hard
// line shown on the row, or -1 past the end of the text; first reports
// whether the row shows the start of that line.
func (m Model) renderGutter(line int, first, active bool) string {
	w := m.gutterWidth()
	if w == 0 {
		return ""
	}
	digits := w - 1
	num := fmt.Sprintf("%*s", digits, "")
	if line >= 0 && first {
		num = fmt.Sprintf("%*d", digits, line+1)
	}
	if len(num) > digits {
		num = num[len(num)-digits:]
	}
	st := m.cfg.Style.LineNum
	if active {
		st = m.cfg.Style.LineNumActive
	}
	return st.Render(num) + m.cfg.Style.Gutter.Render(" ")
}
