package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goatl/goatl-go/core"
	"github.com/goatl/goatl-go/logger"
	"github.com/goatl/goatl-go/wrap"
)

// Config is the file-based form of the module-level logging defaults.
// All fields are optional; absent values fall through the precedence
// chain at resolution time.
type Config struct {
	// Level is the generic default level name
	Level string `yaml:"level"`
	// Logger names the default target logger for emissions
	Logger   string         `yaml:"logger"`
	Messages MessagesConfig `yaml:"messages"`
	Levels   LevelsConfig   `yaml:"levels"`
	Output   OutputConfig   `yaml:"output"`
}

// MessagesConfig holds per-record message templates. Templates may
// use the {func}, {args}, {result}, {type}, and {err} placeholders.
type MessagesConfig struct {
	Call    string `yaml:"call"`
	Return  string `yaml:"return"`
	Init    string `yaml:"init"`
	Failure string `yaml:"failure"`
}

// LevelsConfig holds per-record level names
type LevelsConfig struct {
	Call    string `yaml:"call"`
	Return  string `yaml:"return"`
	Init    string `yaml:"init"`
	Failure string `yaml:"failure"`
}

// OutputConfig configures the default logger's sink
type OutputConfig struct {
	// Format selects "text" (default) or "json"
	Format string `yaml:"format"`
	// File, when set, appends records to this path in addition to
	// the console
	File string `yaml:"file"`
	// Level gates the default logger
	Level string `yaml:"level"`
	// Async buffers writes behind a bounded queue
	Async bool `yaml:"async"`
	// Buffer is the async queue size
	Buffer int `yaml:"buffer"`
	// Timestamp overrides the formatter's time layout
	Timestamp string `yaml:"timestamp"`
	// Caller enables call-site information
	Caller bool `yaml:"caller"`
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML config bytes. Unknown keys are
// rejected so that typos surface instead of silently falling back to
// defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every level name and the output format
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"level":          c.Level,
		"levels.call":    c.Levels.Call,
		"levels.return":  c.Levels.Return,
		"levels.init":    c.Levels.Init,
		"levels.failure": c.Levels.Failure,
		"output.level":   c.Output.Level,
	} {
		if v == "" {
			continue
		}
		if _, err := core.ParseLevel(v); err != nil {
			return fmt.Errorf("config %s: %w", name, err)
		}
	}
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config output.format: unknown format %q", c.Output.Format)
	}
	return nil
}

// Apply installs the config: wrap module defaults via
// wrap.SetDefaults, and, when the output section is present, the
// default logger via logger.Configure. Call once during startup.
func (c *Config) Apply() error {
	opts := c.Options()
	if len(opts) > 0 {
		wrap.SetDefaults(opts...)
	}

	if c.Output != (OutputConfig{}) {
		setup := logger.Setup{
			Format:          c.Output.Format,
			File:            c.Output.File,
			Async:           c.Output.Async,
			BufferSize:      c.Output.Buffer,
			TimestampFormat: c.Output.Timestamp,
			IncludeCaller:   c.Output.Caller,
		}
		if c.Output.Level != "" {
			lvl, _ := core.ParseLevel(c.Output.Level)
			setup.Level = lvl
		}
		if err := logger.Configure(setup); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the config into wrap options, validation aside
func (c *Config) Options() []wrap.Option {
	var opts []wrap.Option

	addLevel := func(name string, opt func(core.Level) wrap.Option) {
		if name == "" {
			return
		}
		if lvl, err := core.ParseLevel(name); err == nil {
			opts = append(opts, opt(lvl))
		}
	}

	addLevel(c.Level, wrap.WithLevel)
	addLevel(c.Levels.Call, wrap.WithCallLevel)
	addLevel(c.Levels.Return, wrap.WithReturnLevel)
	addLevel(c.Levels.Init, wrap.WithInitLevel)
	addLevel(c.Levels.Failure, wrap.WithFailureLevel)

	if c.Messages.Call != "" {
		opts = append(opts, wrap.WithCallMessage(c.Messages.Call))
	}
	if c.Messages.Return != "" {
		opts = append(opts, wrap.WithReturnMessage(c.Messages.Return))
	}
	if c.Messages.Init != "" {
		opts = append(opts, wrap.WithInitMessage(c.Messages.Init))
	}
	if c.Messages.Failure != "" {
		opts = append(opts, wrap.WithFailureMessage(c.Messages.Failure))
	}
	if c.Logger != "" {
		opts = append(opts, wrap.WithLoggerName(c.Logger))
	}
	return opts
}
