package textbox

import "github.com/iw2rmb/textbox/access"

// Event is one command of the edit session vocabulary.
type Event interface {
	isEvent()
}

type (
	// StartEdit enters the editing state unless the host is disabled.
	StartEdit struct{}
	// EndEdit leaves the editing state and drops the selection.
	EndEdit struct{}

	InsertText struct{ Text string }
	// DeleteText deletes the selection or, without one, the text covered by
	// Movement.
	DeleteText struct{ Movement Movement }
	MoveCursor struct {
		Movement Movement
		Extend   bool
	}

	SelectAll       struct{}
	SelectWord      struct{}
	SelectParagraph struct{}
	Deselect        struct{}

	// Hit places the cursor at a window-physical point.
	Hit struct{ X, Y float32 }
	// Drag extends the selection to a window-physical point.
	Drag struct{ X, Y float32 }

	// Submit reports the text to the submit callback and ends editing.
	// Final is false when editing ends because focus moved elsewhere.
	Submit struct{ Final bool }

	// Scroll pans the viewport by a physical delta.
	Scroll struct{ DX, DY float32 }

	Copy  struct{}
	Cut   struct{}
	Paste struct{}
	// PasteText pastes host-supplied text, such as a bracketed terminal
	// paste, with the same normalization as Paste.
	PasteText struct{ Text string }

	// ResetText replaces the whole text in either state.
	ResetText struct{ Text string }

	// GeometryChanged reports that the container or content was resized.
	GeometryChanged struct{}

	SetOnChange struct{ Fn func(*Session, string) }
	SetOnSubmit struct{ Fn func(*Session, string, bool) }

	// InitContent binds the session to other content. A nil Content keeps
	// the current one.
	InitContent struct {
		Content *Content
		Kind    Kind
	}

	// SetTextSelection installs a selection requested by assistive
	// technology.
	SetTextSelection struct{ Selection access.TextSelection }
)

func (StartEdit) isEvent()        {}
func (EndEdit) isEvent()          {}
func (InsertText) isEvent()       {}
func (DeleteText) isEvent()       {}
func (MoveCursor) isEvent()       {}
func (SelectAll) isEvent()        {}
func (SelectWord) isEvent()       {}
func (SelectParagraph) isEvent()  {}
func (Deselect) isEvent()         {}
func (Hit) isEvent()              {}
func (Drag) isEvent()             {}
func (Submit) isEvent()           {}
func (Scroll) isEvent()           {}
func (Copy) isEvent()             {}
func (Cut) isEvent()              {}
func (Paste) isEvent()            {}
func (PasteText) isEvent()        {}
func (ResetText) isEvent()        {}
func (GeometryChanged) isEvent()  {}
func (SetOnChange) isEvent()      {}
func (SetOnSubmit) isEvent()      {}
func (InitContent) isEvent()      {}
func (SetTextSelection) isEvent() {}

func eventName(ev Event) string {
	switch ev.(type) {
	case StartEdit:
		return "start_edit"
	case EndEdit:
		return "end_edit"
	case InsertText:
		return "insert_text"
	case DeleteText:
		return "delete_text"
	case MoveCursor:
		return "move_cursor"
	case SelectAll:
		return "select_all"
	case SelectWord:
		return "select_word"
	case SelectParagraph:
		return "select_paragraph"
	case Deselect:
		return "deselect"
	case Hit:
		return "hit"
	case Drag:
		return "drag"
	case Submit:
		return "submit"
	case Scroll:
		return "scroll"
	case Copy:
		return "copy"
	case Cut:
		return "cut"
	case Paste:
		return "paste"
	case PasteText:
		return "paste_text"
	case ResetText:
		return "reset_text"
	case GeometryChanged:
		return "geometry_changed"
	case SetOnChange:
		return "set_on_change"
	case SetOnSubmit:
		return "set_on_submit"
	case InitContent:
		return "init_content"
	case SetTextSelection:
		return "set_text_selection"
	default:
		return "unknown"
	}
}
