package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/textbox/editor"
	"github.com/iw2rmb/textbox/internal/config"
	"github.com/iw2rmb/textbox/internal/logging"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"kind":      "kind",
	"log-level": "logging.level",
	"log-file":  "logging.file",
	"width":     "width",
	"height":    "height",
}

func loadConfig(cmd *cobra.Command, path string) (*config.Loader, *config.Config, error) {
	loader := config.NewLoader(path)
	for name, key := range flagKeys {
		if err := loader.Viper().BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, nil, fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	return loader, cfg, nil
}

// newLogger writes to the configured file. Without one logs are dropped,
// since the terminal belongs to the UI.
func newLogger(cfg *config.Config) (zerolog.Logger, func() error, error) {
	if cfg.Logging.File == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	log := logging.New(logging.Config{
		Level:      cfg.LogLevel(),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
		Out:        f,
	})
	return log, f.Close, nil
}

func readText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func run(cmd *cobra.Command, f flags, path string) error {
	loader, cfg, err := loadConfig(cmd, f.configPath)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	text, err := readText(path)
	if err != nil {
		return err
	}

	m := newApp(appConfig{
		path: path,
		cfg:  cfg,
		log:  log,
		editor: editor.Config{
			Text:              text,
			Kind:              cfg.TextboxKind(),
			ShowLineNums:      f.lineNumbers,
			Style:             editor.DefaultStyle(),
			Logger:            &log,
			ScrollSensitivity: float32(cfg.ScrollSensitivity),
			CaretWidth:        float32(cfg.CaretWidth),
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())

	if f.watch && path != "" {
		w, err := watchFile(path, log, func(text string) { p.Send(fileChangedMsg{text: text}) })
		if err != nil {
			return err
		}
		defer w.Close()
	}
	loader.Watch(log, func(c *config.Config) { p.Send(configChangedMsg{cfg: c}) })

	log.Info().Str("file", path).Str("kind", cfg.Kind).Msg("starting")
	_, err = p.Run()
	return err
}
