package editor

import (
	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/textbox"
)

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
}

// SubmitEvent reports submitted text. Final is false when editing was
// abandoned by a click outside the box.
type SubmitEvent struct {
	Text  string
	Final bool
}

// ErrorMsg carries a recoverable session failure, such as an unreadable
// clipboard, back to the Bubble Tea program.
type ErrorMsg struct{ Err error }

func buildChangeEvent(c *textbox.Content) ChangeEvent {
	var ev ChangeEvent
	c.WithEditor(func(e *textbox.Editor) {
		b := e.Buffer()
		ev.Version = b.Version()
		ev.Cursor = b.Cursor()
		ev.Text = b.Text()
		if r, ok := b.Selection(); ok {
			ev.Selection.Active = true
			ev.Selection.Range = r
		}
	})
	return ev
}
