package textbox

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/textbox/access"
	"github.com/iw2rmb/textbox/layout"
)

// ErrNoContent is returned by NewSession when no content is given.
var ErrNoContent = errors.New("textbox: session needs content")

// DefaultScrollSensitivity is the physical distance one scroll step pans.
const DefaultScrollSensitivity = 35

// Config configures a Session. The zero value is usable.
type Config struct {
	Kind Kind

	// Region identifies the text box in the accessibility tree.
	Region uint64

	Host      Host
	Clipboard Clipboard
	Logger    *zerolog.Logger

	// ScrollSensitivity scales scroll deltas. Zero means
	// DefaultScrollSensitivity.
	ScrollSensitivity float32
	// CaretWidth is the logical caret width. Zero means 1.
	CaretWidth float32
}

// Session is the edit state machine of one text box. It is Idle until
// StartEdit and Editing until EndEdit. Commands that change the cursor,
// the selection or the text are ignored while Idle, so an idle session
// never holds a selection.
//
// A Session is not safe for concurrent use; events are processed one at a
// time on the caller's goroutine.
type Session struct {
	cfg  Config
	log  zerolog.Logger
	host Host
	clip Clipboard

	content *Content
	kind    Kind
	editing bool
	offset  Offset

	onChange func(*Session, string)
	onSubmit func(*Session, string, bool)

	queue    []Event
	draining bool
}

// NewSession binds a session to content.
func NewSession(content *Content, cfg Config) (*Session, error) {
	if content == nil {
		return nil, ErrNoContent
	}
	if cfg.ScrollSensitivity == 0 {
		cfg.ScrollSensitivity = DefaultScrollSensitivity
	}
	if cfg.CaretWidth <= 0 {
		cfg.CaretWidth = 1
	}

	s := &Session{cfg: cfg, host: cfg.Host, clip: cfg.Clipboard}
	if s.host == nil {
		s.host = NopHost{}
	}
	if s.clip == nil {
		s.clip = SystemClipboard{}
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	s.log = log.With().Str("component", "textbox").Uint64("region", cfg.Region).Logger()

	s.bind(content, cfg.Kind)
	return s, nil
}

func (s *Session) bind(c *Content, k Kind) {
	s.content = c
	s.kind = k
	c.WithEditor(func(e *Editor) {
		e.SetWrap(k.wrapMode(), c.container.W)
		if !s.editing {
			e.Buffer().ClearSelection()
		}
	})
	s.setCaret()
}

func (s *Session) Editing() bool     { return s.editing }
func (s *Session) Kind() Kind        { return s.kind }
func (s *Session) Content() *Content { return s.content }
func (s *Session) Offset() Offset    { return s.offset }
func (s *Session) Text() string      { return s.content.Text() }
func (s *Session) Region() uint64    { return s.cfg.Region }

// Dispatch queues ev and processes the queue until it is empty. Handlers
// and callbacks may queue follow-up events; they run after the current
// handler returns. A Dispatch made while the queue is draining only queues.
//
// Errors are recoverable failures such as clipboard errors; the session
// stays usable after any of them.
func (s *Session) Dispatch(ev Event) error {
	return s.DispatchAll(ev)
}

// DispatchAll queues evs in order before draining, so follow-ups of the
// first event run after the last one.
func (s *Session) DispatchAll(evs ...Event) error {
	s.queue = append(s.queue, evs...)
	if s.draining {
		return nil
	}
	s.draining = true
	defer func() { s.draining = false }()

	var errs []error
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		if err := s.handle(next); err != nil {
			s.log.Warn().Err(err).Str("event", eventName(next)).Msg("event failed")
			errs = append(errs, err)
		}
	}
	s.host.Redraw()
	return errors.Join(errs...)
}

func (s *Session) emit(ev Event) {
	s.queue = append(s.queue, ev)
}

func (s *Session) ignore(ev Event, reason string) {
	s.log.Debug().Str("event", eventName(ev)).Msg(reason)
}

func (s *Session) handle(ev Event) error {
	switch ev := ev.(type) {
	case StartEdit:
		if s.editing || s.host.Disabled() {
			s.ignore(ev, "start ignored")
			return nil
		}
		s.editing = true
		s.host.Focus()
		s.host.Capture()
		s.host.SetChecked(true)

	case EndEdit:
		s.content.WithEditor(func(e *Editor) { e.Buffer().ClearSelection() })
		s.editing = false
		s.host.SetChecked(false)
		s.host.Release()

	case InsertText:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		s.content.WithEditor(func(e *Editor) { e.Insert(ev.Text) })
		s.setCaret()
		s.changed()

	case DeleteText:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		s.deleteText(ev.Movement)
		s.setCaret()
		s.changed()

	case MoveCursor:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		page := s.content.Container().H
		s.content.WithEditor(func(e *Editor) { e.Move(ev.Movement, ev.Extend, page) })
		s.setCaret()

	case SelectAll:
		return s.selecting(ev, (*Editor).SelectAll)
	case SelectWord:
		return s.selecting(ev, (*Editor).SelectWord)
	case SelectParagraph:
		return s.selecting(ev, (*Editor).SelectParagraph)

	case Deselect:
		s.content.WithEditor(func(e *Editor) { e.Buffer().ClearSelection() })

	case Hit:
		if s.host.Disabled() {
			s.ignore(ev, "disabled")
			return nil
		}
		x, y := s.textSpace(ev.X, ev.Y)
		s.content.WithEditor(func(e *Editor) { e.Click(x, y) })
		s.setCaret()

	case Drag:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		x, y := s.textSpace(ev.X, ev.Y)
		s.content.WithEditor(func(e *Editor) { e.Drag(x, y) })
		s.setCaret()

	case Submit:
		if fn := s.onSubmit; fn != nil {
			s.onSubmit = nil
			fn(s, s.content.Text(), ev.Final)
			s.onSubmit = fn
		}
		s.emit(EndEdit{})

	case Scroll:
		s.scroll(ev.DX, ev.DY)

	case Copy:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		text, ok := s.selectedText()
		if !ok {
			return nil
		}
		if err := s.clip.WriteText(text); err != nil {
			return clipboardErr("copy", err)
		}

	case Cut:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		text, ok := s.selectedText()
		if !ok {
			return nil
		}
		if err := s.clip.WriteText(text); err != nil {
			return clipboardErr("cut", err)
		}
		s.deleteText(Grapheme(Upstream))
		s.setCaret()
		s.changed()

	case Paste:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		text, err := s.clip.ReadText()
		if err != nil {
			return clipboardErr("paste", err)
		}
		s.emit(InsertText{Text: s.pasteText(text)})

	case PasteText:
		if !s.editing {
			s.ignore(ev, "not editing")
			return nil
		}
		s.emit(InsertText{Text: s.pasteText(ev.Text)})

	case ResetText:
		s.content.WithEditor(func(e *Editor) { e.SetText(ev.Text) })
		s.scroll(0, 0)

	case GeometryChanged:
		s.setCaret()

	case SetOnChange:
		s.onChange = ev.Fn
	case SetOnSubmit:
		s.onSubmit = ev.Fn

	case InitContent:
		c := ev.Content
		if c == nil {
			c = s.content
		}
		s.bind(c, ev.Kind)

	case SetTextSelection:
		s.importSelection(ev.Selection)

	default:
		s.ignore(ev, "unknown event")
	}
	return nil
}

func (s *Session) selecting(ev Event, fn func(*Editor)) error {
	if !s.editing {
		s.ignore(ev, "not editing")
		return nil
	}
	s.content.WithEditor(fn)
	s.setCaret()
	return nil
}

// deleteText removes the selection or, without one, the text m spans.
func (s *Session) deleteText(m Movement) {
	page := s.content.Container().H
	s.content.WithEditor(func(e *Editor) {
		if e.DeleteSelection() {
			return
		}
		e.Move(m, true, page)
		e.DeleteSelection()
	})
}

func (s *Session) selectedText() (string, bool) {
	type sel struct {
		text string
		ok   bool
	}
	r := withEditor(s.content, func(e *Editor) sel {
		t, ok := e.Buffer().SelectedText()
		return sel{t, ok}
	})
	return r.text, r.ok && r.text != ""
}

func (s *Session) pasteText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if s.kind == SingleLine {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i]
		}
	}
	return text
}

// changed hands the text to the change callback. The callback is taken out
// of its slot for the duration of the call.
func (s *Session) changed() {
	fn := s.onChange
	if fn == nil {
		return
	}
	s.onChange = nil
	fn(s, s.content.Text())
	s.onChange = fn
}

func (s *Session) textSpace(px, py float32) (float32, float32) {
	return ToTextSpace(px, py, s.content.Container(), s.offset, s.content.Scale())
}

// setCaret scrolls the viewport so the caret is visible and the content
// stays within its bounds.
func (s *Session) setCaret() {
	c := s.content
	scale := c.Scale()
	container := c.Container()
	bounds := c.Bounds()

	off := EnforceContentBounds(bounds, container, s.offset.Scale(scale))

	caret := withEditor(c, func(e *Editor) layout.Rect {
		return e.CaretBox(s.cfg.CaretWidth * scale)
	})
	caret.X += bounds.X
	caret.Y += bounds.Y

	container.X -= 1
	container.W += 2
	off = EnsureVisible(caret, container, off)

	s.offset = off.Round().Scale(1 / scale)
}

func (s *Session) scroll(dx, dy float32) {
	c := s.content
	scale := c.Scale()
	off := s.offset.Scale(scale)
	off.X += dx * s.cfg.ScrollSensitivity
	off.Y += dy * s.cfg.ScrollSensitivity
	off = EnforceContentBounds(c.Bounds(), c.Container(), off)
	s.offset = off.Scale(1 / scale)
}

// Accessibility projects the current layout, cursor and selection into an
// accessibility tree.
func (s *Session) Accessibility() access.Tree {
	c := s.content
	scale := c.Scale()
	container := c.Container()
	bounds := c.Bounds()
	off := s.offset.Scale(scale)

	return withEditor(c, func(e *Editor) access.Tree {
		b := e.Buffer()
		anchor, hasAnchor := b.Anchor()
		return access.Project(access.Input{
			Region:    s.cfg.Region,
			Text:      b.Text(),
			Runs:      e.Runs(),
			Metrics:   e.Metrics(),
			LineCount: b.LineCount(),
			Bounds:    container,
			OriginX:   bounds.X + off.X,
			OriginY:   bounds.Y + off.Y,
			Cursor:    b.Cursor(),
			Anchor:    anchor,
			HasAnchor: hasAnchor,
			Multiline: s.kind.Multiline(),
		})
	})
}

func (s *Session) importSelection(sel access.TextSelection) {
	editing := s.editing
	ok := withEditor(s.content, func(e *Editor) bool {
		lm := access.NewLineMap(e.Runs(), e.Buffer().LineCount())
		focus, anchor, ok := access.Resolve(sel, s.cfg.Region, lm)
		if !ok {
			return false
		}
		if !editing {
			anchor = focus
		}
		e.SetSelection(focus, anchor)
		return true
	})
	if !ok {
		s.log.Debug().
			Str("anchor", sel.Anchor.Node.String()).
			Str("focus", sel.Focus.Node.String()).
			Msg("selection names unknown node")
		return
	}
	s.setCaret()
}
