package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/ardnew/multilog"
	"github.com/ardnew/multilog/target"
)

// Config describes a logger and its targets declaratively.
type Config struct {
	Level   string   `yaml:"level"   toml:"level"`
	Prefix  string   `yaml:"prefix"  toml:"prefix"`
	Targets []Target `yaml:"targets" toml:"targets"`
}

// Target describes a single output destination. Boolean rendering options
// are pointers so an omitted key keeps the target's own default.
type Target struct {
	Type              string `yaml:"type"                toml:"type"`
	Prefix            string `yaml:"prefix"              toml:"prefix"`
	Path              string `yaml:"path"                toml:"path"`
	Append            bool   `yaml:"append"              toml:"append"`
	Colors            *bool  `yaml:"colors"              toml:"colors"`
	WholeMessageColor *bool  `yaml:"whole-message-color" toml:"whole-message-color"`
	Timestamp         *bool  `yaml:"timestamp"           toml:"timestamp"`
	ContextID         *bool  `yaml:"context-id"          toml:"context-id"`
}

// Load reads a Config from path, selecting the decoder by file extension:
// ".toml" is parsed as TOML, anything else as YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", path, err)
		}

		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	return cfg, nil
}

// Build constructs a logger with one registered target per entry, in
// document order. An unparseable level falls back to
// [multilog.DefaultLevel].
func (c Config) Build() (*multilog.Logger, error) {
	logger := multilog.New()
	logger.SetVerboseLevel(multilog.ParseLevel(c.Level))

	for _, t := range c.Targets {
		built, err := t.build()
		if err != nil {
			return nil, err
		}

		logger.AddTarget(built)
	}

	if c.Prefix != "" {
		logger.SetPrefix(c.Prefix)
	}

	return logger, nil
}

// build constructs the described target.
func (t Target) build() (multilog.Target, error) {
	switch strings.ToLower(strings.TrimSpace(t.Type)) {
	case "console":
		return target.NewConsole(t.options()...), nil

	case "file":
		if t.Path == "" {
			return nil, fmt.Errorf("%w: file target requires a path", ErrInvalidTarget)
		}

		return target.NewFile(t.Path, t.options()...), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTargetType, t.Type)
}

// options translates the document keys that were present into functional
// options.
func (t Target) options() []target.Option {
	var opts []target.Option

	if t.Prefix != "" {
		opts = append(opts, target.WithPrefix(t.Prefix))
	}

	if t.Append {
		opts = append(opts, target.WithAppend(true))
	}

	if t.Colors != nil {
		opts = append(opts, target.WithColors(*t.Colors))
	}

	if t.WholeMessageColor != nil {
		opts = append(opts, target.WithWholeMessageColor(*t.WholeMessageColor))
	}

	if t.Timestamp != nil {
		opts = append(opts, target.WithTimestamp(*t.Timestamp))
	}

	if t.ContextID != nil {
		opts = append(opts, target.WithContextID(*t.ContextID))
	}

	return opts
}
