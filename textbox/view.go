package textbox

import "github.com/iw2rmb/textbox/access"

// Key is a symbolic key code.
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyA
	KeyC
	KeyV
	KeyX
)

// Modifiers is a set of active modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifiers) Has(o Modifiers) bool { return m&o == o }

// HostEvent is raw input delivered by the host. Coordinates are
// window-physical.
type HostEvent interface {
	isHostEvent()
}

type (
	// PointerDown is a primary button press. Inside reports whether it
	// landed on the text box.
	PointerDown struct {
		X, Y   float32
		Inside bool
	}
	PointerUp   struct{ X, Y float32 }
	PointerMove struct{ X, Y float32 }
	DoubleClick struct{}
	TripleClick struct{}
	Wheel       struct{ DX, DY float32 }
	FocusIn     struct{}
	FocusOut    struct{}
	CharInput   struct {
		Rune rune
		Mods Modifiers
	}
	KeyDown struct {
		Key  Key
		Mods Modifiers
	}
	// ActionRequest is an assistive technology request to select text.
	ActionRequest struct{ Selection access.TextSelection }
)

func (PointerDown) isHostEvent()   {}
func (PointerUp) isHostEvent()     {}
func (PointerMove) isHostEvent()   {}
func (DoubleClick) isHostEvent()   {}
func (TripleClick) isHostEvent()   {}
func (Wheel) isHostEvent()         {}
func (FocusIn) isHostEvent()       {}
func (FocusOut) isHostEvent()      {}
func (CharInput) isHostEvent()     {}
func (KeyDown) isHostEvent()       {}
func (ActionRequest) isHostEvent() {}

// View translates host input into session events.
type View struct {
	s       *Session
	source  func() string
	pressed bool
}

func NewView(s *Session) *View {
	return &View{s: s}
}

func (v *View) Session() *Session { return v.s }

// SetSource binds the text box to an external value. The bound text is
// restored when editing is abandoned by clicking elsewhere and after a
// single line submit.
func (v *View) SetSource(fn func() string) { v.source = fn }

// Pressed reports whether a pointer press that started on the text box is
// still held.
func (v *View) Pressed() bool { return v.pressed }

// Handle translates ev and dispatches the resulting events.
func (v *View) Handle(ev HostEvent) error {
	evs := v.translate(ev)
	if len(evs) == 0 {
		return nil
	}
	return v.s.DispatchAll(evs...)
}

func (v *View) translate(ev HostEvent) []Event {
	switch ev := ev.(type) {
	case PointerDown:
		if ev.Inside {
			v.pressed = true
			return []Event{StartEdit{}, Hit{X: ev.X, Y: ev.Y}}
		}
		if !v.s.Editing() {
			return nil
		}
		out := []Event{Submit{Final: false}}
		if v.source != nil {
			out = append(out, ResetText{Text: v.source()})
		}
		return out

	case PointerUp:
		if !v.pressed {
			return nil
		}
		v.pressed = false
		return []Event{StartEdit{}}

	case PointerMove:
		if v.pressed {
			return []Event{Drag{X: ev.X, Y: ev.Y}}
		}

	case DoubleClick:
		return []Event{SelectWord{}}
	case TripleClick:
		return []Event{SelectParagraph{}}

	case Wheel:
		return []Event{Scroll{DX: ev.DX, DY: ev.DY}}

	case FocusIn:
		if !v.pressed {
			return []Event{StartEdit{}}
		}
	case FocusOut:
		return []Event{EndEdit{}}

	case CharInput:
		switch ev.Rune {
		case 0x1b, '\b', '\t', 0x7f, '\r':
			return nil
		}
		if ev.Mods.Has(ModCtrl) {
			return nil
		}
		return []Event{InsertText{Text: string(ev.Rune)}}

	case KeyDown:
		return v.key(ev)

	case ActionRequest:
		return []Event{SetTextSelection{Selection: ev.Selection}}
	}
	return nil
}

func (v *View) key(ev KeyDown) []Event {
	ctrl := ev.Mods.Has(ModCtrl)
	shift := ev.Mods.Has(ModShift)

	switch ev.Key {
	case KeyEnter:
		if v.s.Kind() != SingleLine {
			return []Event{InsertText{Text: "\n"}}
		}
		out := []Event{Submit{Final: true}}
		if v.source != nil {
			out = append(out, SelectAll{}, InsertText{Text: v.source()})
		}
		return out

	case KeyArrowLeft, KeyArrowRight:
		d := Left
		if ev.Key == KeyArrowRight {
			d = Right
		}
		m := Grapheme(d)
		if ctrl {
			m = Word(d)
		}
		return []Event{MoveCursor{Movement: m, Extend: shift}}

	case KeyArrowUp:
		return []Event{MoveCursor{Movement: Line(Upstream), Extend: shift}}
	case KeyArrowDown:
		return []Event{MoveCursor{Movement: Line(Downstream), Extend: shift}}

	case KeyBackspace:
		if ctrl {
			return []Event{DeleteText{Movement: Word(Upstream)}}
		}
		return []Event{DeleteText{Movement: Grapheme(Upstream)}}
	case KeyDelete:
		if ctrl {
			return []Event{DeleteText{Movement: Word(Downstream)}}
		}
		return []Event{DeleteText{Movement: Grapheme(Downstream)}}

	case KeyEscape:
		return []Event{EndEdit{}}

	case KeyHome:
		return []Event{MoveCursor{Movement: LineStart, Extend: shift}}
	case KeyEnd:
		return []Event{MoveCursor{Movement: LineEnd, Extend: shift}}

	case KeyPageUp, KeyPageDown:
		d := Upstream
		if ev.Key == KeyPageDown {
			d = Downstream
		}
		m := Page(d)
		if ctrl {
			m = Body(d)
		}
		return []Event{MoveCursor{Movement: m, Extend: shift}}

	case KeyA:
		if ctrl {
			return []Event{SelectAll{}}
		}
	case KeyC:
		if ev.Mods == ModCtrl {
			return []Event{Copy{}}
		}
	case KeyV:
		if ev.Mods == ModCtrl {
			return []Event{Paste{}}
		}
	case KeyX:
		if ev.Mods == ModCtrl {
			return []Event{Cut{}}
		}
	}
	return nil
}
