package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textbox/textbox"
)

// KeyMap defines the editor key bindings. Each binding stands for one
// textbox key press.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	PageUp, PageDown                          key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete         key.Binding
	WordBackspace, WordDelete key.Binding
	Enter, Escape             key.Binding

	SelectAll        key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+pgup", "ctrl+home"), key.WithHelp("ctrl+home", "start of text")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+pgdown", "ctrl+end"), key.WithHelp("ctrl+end", "end of text")),

		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:        key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		WordBackspace: key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("alt+backspace", "delete word left")),
		WordDelete:    key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+d", "delete word right")),
		Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline/submit")),
		Escape:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func (km KeyMap) empty() bool {
	return len(km.Enter.Keys()) == 0 && len(km.Left.Keys()) == 0
}

type keyPress struct {
	b  key.Binding
	ev textbox.KeyDown
}

func (km KeyMap) presses() []keyPress {
	const (
		shift = textbox.ModShift
		ctrl  = textbox.ModCtrl
	)
	return []keyPress{
		{km.Left, textbox.KeyDown{Key: textbox.KeyArrowLeft}},
		{km.Right, textbox.KeyDown{Key: textbox.KeyArrowRight}},
		{km.Up, textbox.KeyDown{Key: textbox.KeyArrowUp}},
		{km.Down, textbox.KeyDown{Key: textbox.KeyArrowDown}},
		{km.ShiftLeft, textbox.KeyDown{Key: textbox.KeyArrowLeft, Mods: shift}},
		{km.ShiftRight, textbox.KeyDown{Key: textbox.KeyArrowRight, Mods: shift}},
		{km.ShiftUp, textbox.KeyDown{Key: textbox.KeyArrowUp, Mods: shift}},
		{km.ShiftDown, textbox.KeyDown{Key: textbox.KeyArrowDown, Mods: shift}},
		{km.WordLeft, textbox.KeyDown{Key: textbox.KeyArrowLeft, Mods: ctrl}},
		{km.WordRight, textbox.KeyDown{Key: textbox.KeyArrowRight, Mods: ctrl}},
		{km.ShiftWordLeft, textbox.KeyDown{Key: textbox.KeyArrowLeft, Mods: ctrl | shift}},
		{km.ShiftWordRight, textbox.KeyDown{Key: textbox.KeyArrowRight, Mods: ctrl | shift}},
		{km.Home, textbox.KeyDown{Key: textbox.KeyHome}},
		{km.End, textbox.KeyDown{Key: textbox.KeyEnd}},
		{km.ShiftHome, textbox.KeyDown{Key: textbox.KeyHome, Mods: shift}},
		{km.ShiftEnd, textbox.KeyDown{Key: textbox.KeyEnd, Mods: shift}},
		{km.PageUp, textbox.KeyDown{Key: textbox.KeyPageUp}},
		{km.PageDown, textbox.KeyDown{Key: textbox.KeyPageDown}},
		{km.DocStart, textbox.KeyDown{Key: textbox.KeyPageUp, Mods: ctrl}},
		{km.DocEnd, textbox.KeyDown{Key: textbox.KeyPageDown, Mods: ctrl}},
		{km.Backspace, textbox.KeyDown{Key: textbox.KeyBackspace}},
		{km.Delete, textbox.KeyDown{Key: textbox.KeyDelete}},
		{km.WordBackspace, textbox.KeyDown{Key: textbox.KeyBackspace, Mods: ctrl}},
		{km.WordDelete, textbox.KeyDown{Key: textbox.KeyDelete, Mods: ctrl}},
		{km.Enter, textbox.KeyDown{Key: textbox.KeyEnter}},
		{km.Escape, textbox.KeyDown{Key: textbox.KeyEscape}},
		{km.SelectAll, textbox.KeyDown{Key: textbox.KeyA, Mods: ctrl}},
		{km.Copy, textbox.KeyDown{Key: textbox.KeyC, Mods: ctrl}},
		{km.Cut, textbox.KeyDown{Key: textbox.KeyX, Mods: ctrl}},
		{km.Paste, textbox.KeyDown{Key: textbox.KeyV, Mods: ctrl}},
	}
}

// translate maps a key message to host events. Bindings win over typed
// runes; alt-modified runes are dropped.
func (km KeyMap) translate(msg tea.KeyMsg) []textbox.HostEvent {
	for _, p := range km.presses() {
		if key.Matches(msg, p.b) {
			return []textbox.HostEvent{p.ev}
		}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []textbox.HostEvent{textbox.CharInput{Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]textbox.HostEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, textbox.CharInput{Rune: r})
		}
		return out
	}
	return nil
}
