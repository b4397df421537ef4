package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/textbox/editor"
	"github.com/iw2rmb/textbox/internal/config"
	"github.com/iw2rmb/textbox/textbox"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestVersionCmd(t *testing.T) {
	got := execute(t, "version")
	if want := "textbox-demo " + textbox.CurrentRelease().String(); strings.TrimSpace(got) != want {
		t.Fatalf("version: got %q, want %q", got, want)
	}
}

func TestTreeCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one two three\nx"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "tree", path, "--width", "8")
	var tree struct {
		Root struct {
			Value string
		}
		Lines []struct {
			Value            string
			CharacterLengths []int
		}
	}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("tree output is not JSON: %v\n%s", err, out)
	}
	if tree.Root.Value != "one two three\nx" {
		t.Fatalf("root value: got %q", tree.Root.Value)
	}
	var values []string
	for _, l := range tree.Lines {
		values = append(values, l.Value)
	}
	want := []string{"one two ", "three", "x"}
	if strings.Join(values, "|") != strings.Join(want, "|") {
		t.Fatalf("line values: got %q, want %q", values, want)
	}
	// The last run of a hard line that is not the last carries the newline.
	if got := len(tree.Lines[1].CharacterLengths); got != 6 {
		t.Fatalf("characters of %q: got %d, want 6", tree.Lines[1].Value, got)
	}
}

func TestTreeCmd_RejectsBadWidth(t *testing.T) {
	if _, err := accessibilityTree("x", textbox.SingleLine, 0); err == nil {
		t.Fatalf("width 0 must fail")
	}
}

func TestConfigCmd_PrintsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textbox.toml")
	if err := os.WriteFile(path, []byte("kind = \"single\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := execute(t, "config", "--config", path)
	if !strings.Contains(out, "kind = 'single'") && !strings.Contains(out, `kind = "single"`) {
		t.Fatalf("config output: %s", out)
	}
	if !strings.Contains(out, "[logging]") {
		t.Fatalf("config output lacks logging table: %s", out)
	}
}

func newTestApp(text string) app {
	cfg := &config.Config{Kind: "multi", Logging: config.LoggingConfig{Level: "info", Format: "json"}}
	a := newApp(appConfig{
		cfg: cfg,
		log: zerolog.Nop(),
		editor: editor.Config{
			Text:      text,
			Kind:      cfg.TextboxKind(),
			Clipboard: &textbox.MemoryClipboard{},
		},
	})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	return m.(app)
}

func TestApp_FileChangeWaitsForIdle(t *testing.T) {
	a := newTestApp("old")
	if !a.editor.Focused() {
		t.Fatalf("app must start editing")
	}

	m, _ := a.Update(fileChangedMsg{text: "new"})
	a = m.(app)
	if got := a.editor.Text(); got != "old" {
		t.Fatalf("text while editing: got %q, want %q", got, "old")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(app)
	if got := a.editor.Text(); got != "new" {
		t.Fatalf("text after editing ends: got %q, want %q", got, "new")
	}
}

func TestApp_SaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	a := newTestApp("")
	a.path = path

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	a = m.(app)
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	a = m.(app)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hi" {
		t.Fatalf("saved text: got %q, want %q", b, "hi")
	}
	if !strings.Contains(a.View(), "saved") {
		t.Fatalf("status line must report the save:\n%s", a.View())
	}
}

func TestApp_ConfigReloadChangesKind(t *testing.T) {
	a := newTestApp("a b c d e f g h i j k l m n o p q r s t u v w x y z")
	m, _ := a.Update(configChangedMsg{cfg: &config.Config{Kind: "wrapped"}})
	a = m.(app)
	if got := len(a.editor.Accessibility().Lines); got < 2 {
		t.Fatalf("wrapped lines after reload: got %d, want wrapping", got)
	}
}
