package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textbox/textbox"
)

func newTestModel(t *testing.T, cfg Config, width, height int) Model {
	t.Helper()
	if cfg.Clipboard == nil {
		cfg.Clipboard = &textbox.MemoryClipboard{}
	}
	return New(cfg).SetSize(width, height)
}

func viewLines(m Model) []string {
	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(stripANSI(got[i]), " ")
	}
	return got
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := newTestModel(t, Config{Text: "a\nb\nc", Kind: textbox.MultiLineUnwrapped}, 20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}

	m = m.SetSize(0, 4)
	if got := m.View(); got != "" {
		t.Fatalf("zero width view: got %q, want empty", got)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := newTestModel(t, Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		Kind:         textbox.MultiLineUnwrapped,
		ShowLineNums: true,
	}, 8, 3)

	got := viewLines(m)
	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_WrappedRowsShareLineNumber(t *testing.T) {
	m := newTestModel(t, Config{
		Text:         "one two three\nx",
		Kind:         textbox.MultiLineWrapped,
		ShowLineNums: true,
	}, 10, 4)

	got := viewLines(m)
	want := []string{
		"1 one two",
		"  three",
		"2 x",
		"",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FocusBlur(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab"}, 10, 1)
	if m.Focused() {
		t.Fatalf("new model must be idle")
	}
	m, _ = m.Focus()
	if !m.Focused() || !m.host.focused || !m.host.checked {
		t.Fatalf("focus: editing=%v host=%+v", m.Focused(), *m.host)
	}
	m, _ = m.Blur()
	if m.Focused() || m.host.checked {
		t.Fatalf("blur: editing=%v host=%+v", m.Focused(), *m.host)
	}

	d := newTestModel(t, Config{Text: "ab", Disabled: true}, 10, 1)
	d, _ = d.Focus()
	if d.Focused() {
		t.Fatalf("disabled model must not start editing")
	}
}

func TestModel_SetText(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab", Kind: textbox.MultiLineUnwrapped}, 10, 2)
	m, _ = m.SetText("x\ny\nz")
	if got := m.Text(); got != "x\ny\nz" {
		t.Fatalf("text: got %q", got)
	}
	got := viewLines(m)
	if got[0] != "x" || got[1] != "y" {
		t.Fatalf("view after SetText: %q", got)
	}
}

func TestModel_GutterGrowsWithLineCount(t *testing.T) {
	m := newTestModel(t, Config{
		Text:         strings.Repeat("x\n", 8) + "x",
		Kind:         textbox.MultiLineUnwrapped,
		ShowLineNums: true,
	}, 10, 2)
	if got := m.content.Container().X; got != 2 {
		t.Fatalf("gutter for 9 lines: got %v, want 2", got)
	}

	m, _ = m.Focus()
	m, _ = m.Update(keyMsg("enter"))
	if got := m.content.Container().X; got != 3 {
		t.Fatalf("gutter for 10 lines: got %v, want 3", got)
	}
}

func TestModel_Accessibility(t *testing.T) {
	m := newTestModel(t, Config{Text: "ab\ncd", Kind: textbox.MultiLineUnwrapped, Region: 7}, 10, 2)
	tree := m.Accessibility()
	if len(tree.Lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(tree.Lines))
	}
	if tree.Root.ID.Region != 7 || tree.Root.Value != "ab\ncd" {
		t.Fatalf("root: got %+v", tree.Root)
	}
}
