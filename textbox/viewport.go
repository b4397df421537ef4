package textbox

import (
	"math"

	"github.com/iw2rmb/textbox/layout"
)

// Offset is a 2D viewport translation applied to the content.
type Offset struct {
	X, Y float32
}

func (o Offset) Scale(s float32) Offset { return Offset{X: o.X * s, Y: o.Y * s} }

func (o Offset) Round() Offset {
	return Offset{X: float32(math.Round(float64(o.X))), Y: float32(math.Round(float64(o.Y)))}
}

func (o Offset) finite() Offset {
	return Offset{X: finiteOr0(o.X), Y: finiteOr0(o.Y)}
}

func finiteOr0(v float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return v
}

// ToTextSpace maps a window-physical point into content-local coordinates
// for a container at the given physical bounds.
func ToTextSpace(px, py float32, container layout.Rect, off Offset, scale float32) (x, y float32) {
	return px - off.X*scale - container.X, py - off.Y*scale - container.Y
}

// EnforceContentBounds clamps a physical offset so the translated content
// covers the container as far as it can. Along an axis where the content
// fits, the content rests aligned with the container start; otherwise it
// may scroll between its two ends but never past them.
//
// Non-finite offsets reset to zero. The result is a fixed point: enforcing
// it again returns it unchanged.
func EnforceContentBounds(content, container layout.Rect, off Offset) Offset {
	off = off.finite()
	off.X = clampAxis(content.X, content.W, container.X, container.W, off.X)
	off.Y = clampAxis(content.Y, content.H, container.Y, container.H, off.Y)
	return off
}

func clampAxis(cStart, cLen, kStart, kLen, off float32) float32 {
	rest := kStart - cStart
	if cLen <= kLen {
		return rest
	}
	lo := kStart + kLen - (cStart + cLen)
	return min(max(off, lo), rest)
}

// EnsureVisible shifts a physical offset by the least amount that brings box
// inside container once translated. When box is larger than the container
// its start edge is kept visible.
func EnsureVisible(box, container layout.Rect, off Offset) Offset {
	off.X = revealAxis(box.X, box.W, container.X, container.W, off.X)
	off.Y = revealAxis(box.Y, box.H, container.Y, container.H, off.Y)
	return off
}

func revealAxis(bStart, bLen, kStart, kLen, off float32) float32 {
	start := bStart + off
	if end, kEnd := start+bLen, kStart+kLen; end > kEnd {
		off -= end - kEnd
		start = bStart + off
	}
	if start < kStart {
		off += kStart - start
	}
	return off
}
