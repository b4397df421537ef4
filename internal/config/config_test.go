package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/textbox/editor"
	"github.com/iw2rmb/textbox/textbox"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textbox.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, textbox.MultiLineWrapped, cfg.TextboxKind())
	assert.InDelta(t, editor.DefaultScrollSensitivity, cfg.ScrollSensitivity, 0)
	assert.InDelta(t, 1.0, cfg.CaretWidth, 0)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
kind = "Single"
scroll_sensitivity = 10
width = 40

[logging]
level = "debug"
format = "console"
file = "/tmp/textbox.log"
`)
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, textbox.SingleLine, cfg.TextboxKind())
	assert.InDelta(t, 10.0, cfg.ScrollSensitivity, 0)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/textbox.log", cfg.Logging.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `kind = "single"`)
	t.Setenv("TEXTBOX_KIND", "multi")
	t.Setenv("TEXTBOX_LOGGING_LEVEL", "warn")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, textbox.MultiLineUnwrapped, cfg.TextboxKind())
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
kind = "diagonal"
caret_width = -2

[logging]
format = "xml"
`)
	_, err := NewLoader(path).Load()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "diagonal")
	assert.Contains(t, err.Error(), "xml")
	assert.Contains(t, err.Error(), "caret_width")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.toml")).Load()
	require.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := NewLoader(writeConfig(t, "kind = ")).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
