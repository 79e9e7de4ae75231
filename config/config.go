// Package config loads the udplog CLI configuration from a TOML file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/transport"
)

// Payload formats accepted in the format key.
const (
	// FormatLine selects the "LEVEL [timestamp] message" wire line.
	FormatLine = "line"
	// FormatJSON selects one JSON object per datagram.
	FormatJSON = "json"
)

// DefaultDestination is used when neither the file nor a flag names one.
const DefaultDestination = "127.0.0.1:19999"

// Config is the CLI configuration. Every key is optional; see Default.
type Config struct {
	// Destination is the collector's "host:port".
	Destination string `toml:"destination"`
	// Level is the minimum level sent, by name ("info", "WARNING").
	Level string `toml:"level"`
	// Buffered selects the queued writer over the synchronous one.
	Buffered bool `toml:"buffered"`
	// DrainInterval is the buffered writer's tick.
	DrainInterval Duration `toml:"drain_interval"`
	// DrainTimeout bounds the final drain on close.
	DrainTimeout Duration `toml:"drain_timeout"`
	// Format is FormatLine or FormatJSON.
	Format string `toml:"format"`
	// IncludeCaller adds file:line to each payload.
	IncludeCaller bool `toml:"include_caller"`
}

// Duration is a time.Duration written as a Go duration string ("50ms")
// in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns an unbuffered line-format configuration at Info level
// sending to DefaultDestination, with the writer's default drain timings.
func Default() *Config {
	return &Config{
		Destination:   DefaultDestination,
		Level:         core.InfoLevel.String(),
		DrainInterval: Duration{50 * time.Millisecond},
		DrainTimeout:  Duration{5 * time.Second},
		Format:        FormatLine,
	}
}

// Load reads the config at path. A missing file yields the defaults; keys
// absent from the file keep their default values. Load only parses:
// callers apply their overrides and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling config %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the destination, level, durations and format.
func (c *Config) Validate() error {
	if _, err := transport.ResolveDestination(c.Destination); err != nil {
		return err
	}
	if _, err := core.ParseLevel(c.Level); err != nil {
		return err
	}
	if c.DrainInterval.Duration <= 0 {
		return errors.Errorf("drain_interval must be positive, got %s", c.DrainInterval)
	}
	if c.DrainTimeout.Duration < 0 {
		return errors.Errorf("drain_timeout must not be negative, got %s", c.DrainTimeout)
	}
	switch c.Format {
	case FormatLine, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	return nil
}

// ParsedLevel returns the configured level. Call Validate first.
func (c *Config) ParsedLevel() core.Level {
	lvl, err := core.ParseLevel(c.Level)
	if err != nil {
		return core.InfoLevel
	}
	return lvl
}

// DefaultPath returns $XDG_CONFIG_HOME/udplog/config.toml, falling back
// to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "udplog", "config.toml")
}
