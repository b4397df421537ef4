// Package config loads the demo settings from defaults, an optional TOML
// file and TEXTBOX_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/iw2rmb/textbox/editor"
	"github.com/iw2rmb/textbox/internal/logging"
	"github.com/iw2rmb/textbox/textbox"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Kind              string  `mapstructure:"kind" toml:"kind"`
	// ScrollSensitivity is in cells per wheel notch.
	ScrollSensitivity float64 `mapstructure:"scroll_sensitivity" toml:"scroll_sensitivity"`
	CaretWidth        float64 `mapstructure:"caret_width" toml:"caret_width"`

	// Width and Height size the text box in cells. Zero fills the terminal.
	Width  int `mapstructure:"width" toml:"width"`
	Height int `mapstructure:"height" toml:"height"`

	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	// File receives log output. Empty discards it, since stderr belongs to
	// the terminal UI.
	File string `mapstructure:"file" toml:"file"`
}

// TextboxKind returns the parsed Kind. Load has already validated it.
func (c *Config) TextboxKind() textbox.Kind {
	k, _ := textbox.ParseKind(c.Kind)
	return k
}

func (c *Config) LogLevel() zerolog.Level {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}

// Loader owns the viper instance behind a Config.
type Loader struct {
	v        *viper.Viper
	mu       sync.Mutex
	watching bool
}

// NewLoader reads path when set. Otherwise textbox.toml is looked up in the
// working directory and its absence is not an error.
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("textbox")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TEXTBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return &Loader{v: v}
}

// Viper exposes the underlying instance so flags can be bound to it.
func (l *Loader) Viper() *viper.Viper { return l.v }

func setDefaults(v *viper.Viper) {
	v.SetDefault("kind", textbox.MultiLineWrapped.String())
	v.SetDefault("scroll_sensitivity", editor.DefaultScrollSensitivity)
	v.SetDefault("caret_width", 1.0)
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")
}

// Load reads the file, if any, and returns the validated settings.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *Loader) load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", l.v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	normalize(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validate(cfg *Config) error {
	var errs []error
	if _, err := textbox.ParseKind(cfg.Kind); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if !logging.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format %q must be json or console", cfg.Logging.Format))
	}
	if cfg.ScrollSensitivity < 0 {
		errs = append(errs, fmt.Errorf("scroll_sensitivity %v must not be negative", cfg.ScrollSensitivity))
	}
	if cfg.CaretWidth < 0 {
		errs = append(errs, fmt.Errorf("caret_width %v must not be negative", cfg.CaretWidth))
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must not be negative", cfg.Width, cfg.Height))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Watch reloads the file whenever it changes and hands valid settings to fn.
// Invalid edits are logged and skipped.
func (l *Loader) Watch(log zerolog.Logger, fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.watching || l.v.ConfigFileUsed() == "" {
		return
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")
		l.mu.Lock()
		cfg, err := l.load()
		l.mu.Unlock()
		if err != nil {
			log.Warn().Err(err).Msg("config reload failed")
			return
		}
		fn(cfg)
	})
	l.v.WatchConfig()
	l.watching = true
}
