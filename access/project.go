package access

import (
	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/internal/grapheme"
	"github.com/iw2rmb/textbox/layout"
)

// Input is everything the projector needs from a live text box. It is a
// snapshot; Project never retains it.
type Input struct {
	Region uint64
	// Text is the full buffer text, exposed as the region node value.
	Text string

	Runs      []layout.Run
	Metrics   layout.Metrics
	LineCount int

	// Bounds is the container in physical units.
	Bounds layout.Rect
	// OriginX and OriginY locate the content origin in physical units, with
	// the viewport offset already applied.
	OriginX, OriginY float32

	Cursor    buffer.Pos
	Anchor    buffer.Pos
	HasAnchor bool

	Multiline bool
}

// Project builds the accessibility tree for one text box.
func Project(in Input) Tree {
	root := RootID(in.Region)
	lm := NewLineMap(in.Runs, in.LineCount)

	t := Tree{
		Root: Node{
			ID:            root,
			Parent:        root,
			Role:          RoleTextField,
			Bounds:        rectOf(in.Bounds.X, in.Bounds.Y, in.Bounds.Right(), in.Bounds.Bottom()),
			Value:         in.Text,
			Multiline:     in.Multiline,
			DefaultAction: ActionFocus,
		},
		Lines: make([]Node, 0, len(in.Runs)),
	}

	for i, r := range in.Runs {
		span, _ := lm.Span(i)
		n := lineNode(root, i, r, span, in)
		t.Root.Children = append(t.Root.Children, n.ID)
		t.Lines = append(t.Lines, n)
	}

	focus := position(root, lm, in.Cursor)
	anchor := focus
	if in.HasAnchor {
		anchor = position(root, lm, in.Anchor)
	}
	t.Selection = TextSelection{Anchor: anchor, Focus: focus}
	return t
}

func lineNode(root NodeID, i int, r layout.Run, span LineSpan, in Input) Node {
	n := Node{
		ID:        root.Child(i),
		Parent:    root,
		Role:      RoleInlineTextBox,
		Multiline: in.Multiline,
	}
	if r.RTL {
		n.Direction = RightToLeft
	}

	x0 := in.OriginX
	y0 := in.OriginY + r.Top
	n.Bounds = rectOf(x0, y0, x0+r.Width, y0+in.Metrics.LineHeight)

	start, end := r.Start, r.Start
	for _, g := range r.Glyphs {
		n.CharacterLengths = append(n.CharacterLengths, g.End-g.Start)
		n.CharacterPositions = append(n.CharacterPositions, g.X)
		n.CharacterWidths = append(n.CharacterWidths, g.W)
		start = min(start, g.Start)
		end = max(end, g.End)
	}
	value := r.Text[start:end]

	for _, w := range grapheme.Words(value) {
		n.WordLengths = append(n.WordLengths, w.Len())
	}

	if span.Newline {
		value += "\n"
		n.CharacterLengths = append(n.CharacterLengths, 1)
		n.CharacterPositions = append(n.CharacterPositions, r.Width)
		n.CharacterWidths = append(n.CharacterWidths, 0)
	}
	n.Value = value
	return n
}

func position(root NodeID, lm LineMap, p buffer.Pos) TextPosition {
	visual, char, ok := lm.ToVisual(p.Row, p.Col)
	if !ok {
		return TextPosition{Node: root.Child(0)}
	}
	return TextPosition{Node: root.Child(visual), CharacterIndex: char}
}

// Resolve maps an incoming selection back to buffer positions. ok is false
// when either end names a node that is not a line of this region.
func Resolve(sel TextSelection, region uint64, lm LineMap) (focus, anchor buffer.Pos, ok bool) {
	focus, ok = resolvePosition(sel.Focus, region, lm)
	if !ok {
		return buffer.Pos{}, buffer.Pos{}, false
	}
	anchor, ok = resolvePosition(sel.Anchor, region, lm)
	if !ok {
		return buffer.Pos{}, buffer.Pos{}, false
	}
	return focus, anchor, true
}

func resolvePosition(p TextPosition, region uint64, lm LineMap) (buffer.Pos, bool) {
	if p.Node.Region != region || p.Node.IsRoot() {
		return buffer.Pos{}, false
	}
	row, col, ok := lm.ToBuffer(p.Node.Line, p.CharacterIndex)
	if !ok {
		return buffer.Pos{}, false
	}
	return buffer.Pos{Row: row, Col: col}, true
}

func rectOf(x0, y0, x1, y1 float32) Rect {
	return Rect{X0: float64(x0), Y0: float64(y0), X1: float64(x1), Y1: float64(y1)}
}
