package editor

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/textbox/textbox"
)

// DefaultScrollSensitivity is the number of cells one wheel notch pans.
const DefaultScrollSensitivity = 3

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string
	Kind textbox.Kind

	// Region identifies the text box in accessibility trees.
	Region uint64

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when empty.
	KeyMap KeyMap

	// Clipboard defaults to the system clipboard.
	Clipboard textbox.Clipboard
	Logger    *zerolog.Logger

	// ScrollSensitivity is in cells per wheel notch. Zero means
	// DefaultScrollSensitivity.
	ScrollSensitivity float32
	// CaretWidth is in cells. Zero means 1.
	CaretWidth float32

	// Source is the bound external value. It is restored when a single line
	// box submits or when editing is abandoned by clicking elsewhere.
	Source func() string

	// Disabled boxes never enter editing.
	Disabled bool

	OnChange func(ChangeEvent)
	OnSubmit func(SubmitEvent)
}
