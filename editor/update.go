package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textbox/textbox"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.sess.Editing() {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m, m.dispatch(textbox.PasteText{Text: string(msg.Runes)})
	}

	return m.handle(m.cfg.KeyMap.translate(msg)...)
}
