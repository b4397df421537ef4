package textbox

// Host is the set of capabilities a session needs from the widget hosting
// it.
type Host interface {
	// Focus gives the region keyboard focus.
	Focus()
	// Capture routes pointer input to the region until Release.
	Capture()
	Release()
	// SetChecked marks the region as being edited.
	SetChecked(bool)
	Disabled() bool
	// Redraw requests a repaint.
	Redraw()
}

// NopHost ignores every request and is never disabled.
type NopHost struct{}

func (NopHost) Focus()          {}
func (NopHost) Capture()        {}
func (NopHost) Release()        {}
func (NopHost) SetChecked(bool) {}
func (NopHost) Disabled() bool  { return false }
func (NopHost) Redraw()         {}
