package editor

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/layout"
	"github.com/iw2rmb/textbox/textbox"
)

type cellClass uint8

const (
	cellText cellClass = iota
	cellSelection
	cellCursor
)

// cell is one terminal cell of a row. Cells covered by the tail of a wide
// cluster have empty text.
type cell struct {
	text string
	cls  cellClass
}

// frame is the state rendered by one View call.
type frame struct {
	runs      []layout.Run
	cursor    buffer.Pos
	caret     layout.Rect
	sel       buffer.Range
	selOK     bool
	editing   bool
	offX      int
	offY      int
	textWidth int
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.renderContent()
}

func (m Model) snapshot() frame {
	off := m.sess.Offset()
	f := frame{
		editing:   m.sess.Editing(),
		offX:      int(math.Round(float64(off.X))),
		offY:      int(math.Round(float64(off.Y))),
		textWidth: m.width - m.gutterWidth(),
	}
	m.content.WithEditor(func(e *textbox.Editor) {
		b := e.Buffer()
		f.runs = e.Runs()
		f.cursor = b.Cursor()
		f.caret = e.CaretBox(1)
		f.sel, f.selOK = b.Selection()
	})
	return f
}

func (m Model) renderContent() string {
	f := m.snapshot()
	st := m.cfg.Style

	out := make([]string, 0, m.height)
	for y := 0; y < m.height; y++ {
		idx := y - f.offY
		var sb strings.Builder
		if idx >= 0 && idx < len(f.runs) {
			r := f.runs[idx]
			active := f.editing && r.Line == f.cursor.Row
			sb.WriteString(m.renderGutter(r.Line, r.Start == 0, active))
			sb.WriteString(renderCells(st, f.rowCells(r, y)))
		} else {
			sb.WriteString(m.renderGutter(-1, false, false))
			sb.WriteString(renderCells(st, f.blankCells()))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (f frame) blankCells() []cell {
	cells := make([]cell, max(f.textWidth, 0))
	for i := range cells {
		cells[i] = cell{text: " "}
	}
	return cells
}

func (f frame) rowCells(r layout.Run, y int) []cell {
	cells := f.blankCells()
	w := len(cells)

	for _, g := range r.Glyphs {
		gw := int(g.W)
		if gw <= 0 {
			continue
		}
		cls := cellText
		if f.selected(r.Line, g) {
			cls = cellSelection
		}
		start := int(g.X) + f.offX
		text := r.Text[g.Start:g.End]
		if start < 0 || start+gw > w || text == "\t" {
			// Clipped wide clusters and tabs render as blanks.
			for i := max(start, 0); i < min(start+gw, w); i++ {
				cells[i] = cell{text: " ", cls: cls}
			}
			continue
		}
		cells[start] = cell{text: text, cls: cls}
		for i := start + 1; i < start+gw; i++ {
			cells[i] = cell{cls: cls}
		}
	}

	if f.editing && int(f.caret.Y)+f.offY == y {
		cx := int(math.Floor(float64(f.caret.X))) + f.offX
		if cx >= 0 && cx < w {
			for cx > 0 && cells[cx].text == "" {
				cx--
			}
			cells[cx].cls = cellCursor
			for i := cx + 1; i < w && cells[i].text == ""; i++ {
				cells[i].cls = cellCursor
			}
		}
	}
	return cells
}

func (f frame) selected(line int, g layout.Glyph) bool {
	if !f.selOK {
		return false
	}
	start := buffer.Pos{Row: line, Col: g.Start}
	end := buffer.Pos{Row: line, Col: g.End}
	return buffer.ComparePos(start, f.sel.Start) >= 0 && buffer.ComparePos(end, f.sel.End) <= 0
}

// renderCells renders runs of equally classed cells with one style call each.
func renderCells(st Style, cells []cell) string {
	var out, chunk strings.Builder
	cur := cellText
	flush := func() {
		if chunk.Len() == 0 {
			return
		}
		out.WriteString(styleFor(st, cur).Render(chunk.String()))
		chunk.Reset()
	}
	for _, c := range cells {
		if c.text == "" {
			continue
		}
		if c.cls != cur {
			flush()
			cur = c.cls
		}
		chunk.WriteString(c.text)
	}
	flush()
	return out.String()
}

func styleFor(st Style, cls cellClass) lipgloss.Style {
	switch cls {
	case cellSelection:
		return st.Selection
	case cellCursor:
		return st.Cursor
	default:
		return st.Text
	}
}
