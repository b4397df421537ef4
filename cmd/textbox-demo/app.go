package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/textbox/editor"
	"github.com/iw2rmb/textbox/internal/config"
)

type (
	fileChangedMsg   struct{ text string }
	configChangedMsg struct{ cfg *config.Config }
)

type appConfig struct {
	path   string
	cfg    *config.Config
	log    zerolog.Logger
	editor editor.Config
}

// shared is state the editor callbacks write to; app values are copied on
// every update.
type shared struct {
	disk    string
	status  string
	pending bool
}

type app struct {
	path   string
	cfg    *config.Config
	log    zerolog.Logger
	st     *shared
	editor editor.Model

	statusStyle lipgloss.Style
}

func newApp(ac appConfig) app {
	st := &shared{disk: ac.editor.Text}
	ec := ac.editor
	ec.Source = func() string { return st.disk }
	ec.OnSubmit = func(ev editor.SubmitEvent) {
		if ev.Final {
			st.status = fmt.Sprintf("submitted %d bytes", len(ev.Text))
		}
	}

	a := app{
		path:        ac.path,
		cfg:         ac.cfg,
		log:         ac.log,
		st:          st,
		editor:      editor.New(ec),
		statusStyle: lipgloss.NewStyle().Faint(true),
	}
	a.editor, _ = a.editor.Focus()
	return a
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height-1
		if a.cfg.Width > 0 {
			w = min(w, a.cfg.Width)
		}
		if a.cfg.Height > 0 {
			h = min(h, a.cfg.Height)
		}
		a.editor = a.editor.SetSize(w, h)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return a, tea.Quit
		case "ctrl+s":
			a.save()
			return a, nil
		}
		if !a.editor.Focused() {
			var cmd tea.Cmd
			a.editor, cmd = a.editor.Focus()
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				return a, cmd
			}
		}

	case fileChangedMsg:
		if msg.text == a.st.disk {
			return a, nil
		}
		a.st.disk = msg.text
		a.st.pending = true
		a.st.status = "file changed on disk"

	case configChangedMsg:
		var cmd tea.Cmd
		if k := msg.cfg.TextboxKind(); k != a.cfg.TextboxKind() {
			a.editor, cmd = a.editor.SetKind(k)
		}
		a.cfg = msg.cfg
		a.st.status = "config reloaded"
		return a, cmd

	case editor.ErrorMsg:
		a.log.Warn().Err(msg.Err).Msg("editor error")
		a.st.status = msg.Err.Error()
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if a.st.pending && !a.editor.Focused() {
		a.st.pending = false
		var reset tea.Cmd
		a.editor, reset = a.editor.SetText(a.st.disk)
		cmd = tea.Batch(cmd, reset)
	}
	return a, cmd
}

func (a app) save() {
	if a.path == "" {
		a.st.status = "no file to save to"
		return
	}
	text := a.editor.Text()
	if err := os.WriteFile(a.path, []byte(text), 0o644); err != nil {
		a.log.Error().Err(err).Str("file", a.path).Msg("save failed")
		a.st.status = err.Error()
		return
	}
	a.st.disk = text
	a.st.status = "saved " + a.path
	a.log.Info().Str("file", a.path).Int("bytes", len(text)).Msg("saved")
}

func (a app) View() string {
	mode := "idle"
	if a.editor.Focused() {
		mode = "editing"
	}
	name := a.path
	if name == "" {
		name = "[scratch]"
	}
	status := fmt.Sprintf("%s  %s  %s", mode, a.cfg.TextboxKind(), name)
	if a.st.status != "" {
		status += "  " + a.st.status
	}
	return a.editor.View() + "\n" + a.statusStyle.Render(status)
}
