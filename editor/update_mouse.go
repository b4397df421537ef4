package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textbox/textbox"
)

// multiClickInterval bounds the delay between presses of a double or triple
// click.
const multiClickInterval = 400 * time.Millisecond

// clickTracker counts consecutive presses on the same cell.
type clickTracker struct {
	at    time.Time
	x, y  int
	count int

	now func() time.Time
}

func (c *clickTracker) press(x, y int) int {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	t := now()
	if c.count > 0 && x == c.x && y == c.y && t.Sub(c.at) <= multiClickInterval {
		c.count = c.count%3 + 1
	} else {
		c.count = 1
	}
	c.at, c.x, c.y = t, x, y
	return c.count
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	x, y := float32(msg.X), float32(msg.Y)

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if dx, dy, ok := wheelDelta(msg.Button); ok {
			return m.handle(textbox.Wheel{DX: dx, DY: dy})
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			m.clicks.count = 0
			return m.handle(textbox.PointerDown{X: x, Y: y})
		}
		evs := []textbox.HostEvent{textbox.PointerDown{X: x, Y: y, Inside: true}}
		switch m.clicks.press(msg.X, msg.Y) {
		case 2:
			evs = append(evs, textbox.DoubleClick{})
		case 3:
			evs = append(evs, textbox.TripleClick{})
		}
		return m.handle(evs...)

	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handle(textbox.PointerMove{X: x, Y: y})

	case tea.MouseActionRelease:
		return m.handle(textbox.PointerUp{X: x, Y: y})
	}
	return m, nil
}

// wheelDelta returns the scroll delta of a wheel button. Positive deltas
// reveal text above and to the left.
func wheelDelta(b tea.MouseButton) (dx, dy float32, ok bool) {
	switch b { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		return 0, 1, true
	case tea.MouseButtonWheelDown:
		return 0, -1, true
	case tea.MouseButtonWheelLeft:
		return 1, 0, true
	case tea.MouseButtonWheelRight:
		return -1, 0, true
	}
	return 0, 0, false
}

// mouseInBounds reports whether a cell lies on the component. Gutter presses
// count as inside and land on the start of the row.
func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
