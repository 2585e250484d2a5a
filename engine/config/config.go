// Package config loads the sandbox settings from an optional YAML file, an
// optional .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hubastard/iui/engine/colors"
	"github.com/hubastard/iui/engine/core"
	"github.com/hubastard/iui/engine/ui"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvTitle     = "IUI_TITLE"
	EnvWidth     = "IUI_WIDTH"
	EnvHeight    = "IUI_HEIGHT"
	EnvVSync     = "IUI_VSYNC"
	EnvLogLevel  = "IUI_LOG_LEVEL"
	EnvLogFormat = "IUI_LOG_FORMAT"
	EnvMaxEvents = "IUI_MAX_EVENTS"
)

type Config struct {
	Window core.Config `yaml:"window"`
	UI     UIConfig    `yaml:"ui"`
	Log    LogConfig   `yaml:"log"`
}

type UIConfig struct {
	// MaxPendingEvents bounds the pointer events queued between frames.
	MaxPendingEvents int `yaml:"max_pending_events"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

func Default() Config {
	return Config{
		Window: core.Config{
			Title:      "iui sandbox",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: colors.DarkGray,
		},
		UI:  UIConfig{MaxPendingEvents: ui.DefaultMaxPending},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load starts from Default, then applies the YAML file at path and the
// environment. An empty path or a missing file is skipped, as are missing env
// files. Variables already set in the process win over env files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	env := map[string]string{}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range vars {
			env[k] = v
		}
	}
	for _, k := range []string{EnvTitle, EnvWidth, EnvHeight, EnvVSync, EnvLogLevel, EnvLogFormat, EnvMaxEvents} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	if v, ok := env[EnvTitle]; ok {
		c.Window.Title = v
	}
	if err := envInt(env, EnvWidth, &c.Window.Width); err != nil {
		return err
	}
	if err := envInt(env, EnvHeight, &c.Window.Height); err != nil {
		return err
	}
	if err := envInt(env, EnvMaxEvents, &c.UI.MaxPendingEvents); err != nil {
		return err
	}
	if v, ok := env[EnvVSync]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVSync, err)
		}
		c.Window.VSync = b
	}
	if v, ok := env[EnvLogLevel]; ok {
		c.Log.Level = v
	}
	if v, ok := env[EnvLogFormat]; ok {
		c.Log.Format = v
	}
	return nil
}

func envInt(env map[string]string, key string, dst *int) error {
	v, ok := env[key]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate checks the values Load cannot default.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Logger builds a logrus logger for the configured level and format.
func (c Config) Logger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.Log.Level); err == nil {
		l.SetLevel(lvl)
	}
	if strings.EqualFold(c.Log.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// UIOptions returns the ui.Context options, logging through l.
func (c Config) UIOptions(l *logrus.Logger) ui.Options {
	opts := ui.Options{MaxPendingEvents: c.UI.MaxPendingEvents}
	if l != nil {
		opts.Log = l.WithField("component", "ui")
	}
	return opts
}
