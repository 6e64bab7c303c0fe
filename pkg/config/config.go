// Package config loads dot2tikz settings from a TOML file.
//
// A config file supplies defaults for the convert and demo commands;
// command-line flags always take precedence. Every key is optional:
//
//	from   = "dot"      # input format: dot or json
//	layout = "neato"    # engine for "dot2tikz convert" when --layout is absent
//
//	[style]
//	node_style      = "draw,circle,fill,radius=0.5pt,scale=0.2"
//	path_style      = "draw,->"
//	picture_options = "scale=0.02"
//
//	[cache]
//	disabled = false
//	dir      = "/tmp/dot2tikz"
//
// Without --config the file at [DefaultPath] is used when it exists.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/io"
	"github.com/matzehuels/dot2tikz/pkg/layout"
)

// Config is the decoded config file.
type Config struct {
	From   string          `toml:"from"`
	Layout string          `toml:"layout"`
	Style  convert.Options `toml:"style"`
	Cache  Cache           `toml:"cache"`
}

// Cache configures the layout cache.
type Cache struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
}

// Validate checks the enumerated fields. Empty values are allowed.
func (c *Config) Validate() error {
	if c.From != "" {
		if err := io.ValidateFormat(c.From); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "from")
		}
	}
	if c.Layout != "" {
		if err := layout.ValidateEngine(c.Layout); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout")
		}
	}
	return nil
}

// Parse decodes and validates TOML config data. Unknown keys are rejected
// so that typos do not pass silently.
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return c, nil
}

// LoadDefault reads the file at [DefaultPath], returning an empty config
// when there is none.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/dot2tikz/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dot2tikz", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dot2tikz", "config.toml"), nil
}
