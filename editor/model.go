package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textbox/access"
	"github.com/iw2rmb/textbox/layout"
	"github.com/iw2rmb/textbox/textbox"
)

// Model is a Bubble Tea component that renders and interacts with a
// textbox session. Copies of a Model share the session.
type Model struct {
	cfg Config

	content *textbox.Content
	sess    *textbox.Session
	view    *textbox.View
	host    *termHost

	width, height int
	clicks        clickTracker
}

// termHost is the textbox.Host of a terminal: focus and capture are plain
// flags and redraws happen after every Update anyway.
type termHost struct {
	focused  bool
	captured bool
	checked  bool
	disabled bool
}

func (h *termHost) Focus()            { h.focused = true }
func (h *termHost) Capture()          { h.captured = true }
func (h *termHost) Release()          { h.captured = false }
func (h *termHost) SetChecked(v bool) { h.checked = v }
func (h *termHost) Disabled() bool    { return h.disabled }
func (h *termHost) Redraw()           {}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.ScrollSensitivity == 0 {
		cfg.ScrollSensitivity = DefaultScrollSensitivity
	}

	m := Model{
		cfg:     cfg,
		content: textbox.NewContent(cfg.Text, layout.Cells()),
		host:    &termHost{disabled: cfg.Disabled},
	}
	sess, err := textbox.NewSession(m.content, textbox.Config{
		Kind:              cfg.Kind,
		Region:            cfg.Region,
		Host:              m.host,
		Clipboard:         cfg.Clipboard,
		Logger:            cfg.Logger,
		ScrollSensitivity: cfg.ScrollSensitivity,
		CaretWidth:        cfg.CaretWidth,
	})
	if err != nil {
		// Content is never nil here.
		panic(err)
	}
	m.sess = sess
	m.view = textbox.NewView(sess)
	m.view.SetSource(cfg.Source)
	m.installCallbacks()
	return m
}

func (m Model) installCallbacks() {
	var evs []textbox.Event
	if fn := m.cfg.OnChange; fn != nil {
		c := m.content
		evs = append(evs, textbox.SetOnChange{Fn: func(*textbox.Session, string) {
			fn(buildChangeEvent(c))
		}})
	}
	if fn := m.cfg.OnSubmit; fn != nil {
		evs = append(evs, textbox.SetOnSubmit{Fn: func(_ *textbox.Session, text string, final bool) {
			fn(SubmitEvent{Text: text, Final: final})
		}})
	}
	_ = m.sess.DispatchAll(evs...)
}

func (m Model) Session() *textbox.Session { return m.sess }

func (m Model) Text() string { return m.sess.Text() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.layoutContainer()
	return m
}

// layoutContainer places the text container right of the gutter.
func (m Model) layoutContainer() {
	g := m.gutterWidth()
	m.content.SetContainer(layout.Rect{
		X: float32(g),
		W: float32(m.width - g),
		H: float32(m.height),
	})
	_ = m.sess.Dispatch(textbox.GeometryChanged{})
}

func (m Model) Focus() (Model, tea.Cmd) { return m.handle(textbox.FocusIn{}) }

func (m Model) Blur() (Model, tea.Cmd) { return m.handle(textbox.FocusOut{}) }

// Focused reports whether the box is being edited.
func (m Model) Focused() bool { return m.sess.Editing() }

// SetText replaces the text in either state.
func (m Model) SetText(s string) (Model, tea.Cmd) {
	return m, m.dispatch(textbox.ResetText{Text: s})
}

// SetKind rebinds the session with another line model, keeping the text.
func (m Model) SetKind(k textbox.Kind) (Model, tea.Cmd) {
	m.cfg.Kind = k
	return m, m.dispatch(textbox.InitContent{Kind: k})
}

// Accessibility returns the accessible tree of the current layout.
func (m Model) Accessibility() access.Tree { return m.sess.Accessibility() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.FocusMsg:
		return m.Focus()
	case tea.BlurMsg:
		return m.Blur()
	}
	return m, nil
}

func (m Model) handle(evs ...textbox.HostEvent) (Model, tea.Cmd) {
	lines := m.lineCount()
	var cmds []tea.Cmd
	for _, ev := range evs {
		if err := m.view.Handle(ev); err != nil {
			cmds = append(cmds, errCmd(err))
		}
	}
	if m.cfg.ShowLineNums && m.lineCount() != lines {
		m.layoutContainer()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) dispatch(ev textbox.Event) tea.Cmd {
	lines := m.lineCount()
	err := m.sess.Dispatch(ev)
	if m.cfg.ShowLineNums && m.lineCount() != lines {
		m.layoutContainer()
	}
	if err != nil {
		return errCmd(err)
	}
	return nil
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Err: err} }
}

func (m Model) lineCount() int {
	n := 0
	m.content.WithEditor(func(e *textbox.Editor) { n = e.Buffer().LineCount() })
	return n
}
