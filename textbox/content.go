package textbox

import (
	"sync"

	"github.com/iw2rmb/textbox/layout"
)

// Content is the handle to the text and layout of one text box. Its editor
// is only reachable through scoped borrows that end before the borrowing
// call returns.
type Content struct {
	mu sync.Mutex
	ed *Editor

	container layout.Rect
	scale     float32
}

// NewContent returns content over text shaped by shaper. A nil shaper uses
// layout.Cells().
func NewContent(text string, shaper layout.Shaper) *Content {
	return &Content{ed: NewEditor(text, shaper), scale: 1}
}

// WithEditor runs fn with exclusive access to the editor.
func (c *Content) WithEditor(fn func(*Editor)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.ed)
}

func withEditor[T any](c *Content, fn func(*Editor) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.ed)
}

func (c *Content) Text() string {
	return withEditor(c, (*Editor).Text)
}

// SetContainer sets the physical bounds of the region that clips the
// content. Wrapped layouts break lines at the container width.
func (c *Content) SetContainer(r layout.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.container = r
	c.ed.width = r.W
}

func (c *Content) Container() layout.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.container
}

// SetScale sets the device pixel ratio. Non-positive values mean 1.
func (c *Content) SetScale(s float32) {
	if s <= 0 {
		s = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = s
}

func (c *Content) Scale() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale
}

// Bounds returns the physical bounds of the untranslated content: it starts
// at the container origin and spans the laid out extent.
func (c *Content) Bounds() layout.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	ext := c.ed.Extent()
	return layout.Rect{X: c.container.X, Y: c.container.Y, W: ext.W, H: ext.H}
}
