// Package config loads mazetower's optional TOML settings file.
//
// The file lives at $XDG_CONFIG_HOME/mazetower/config.toml (falling back to
// ~/.config/mazetower/config.toml). Every key is optional; a missing file
// yields [Default]. Example:
//
//	algorithm = "eller"
//	size      = 32
//	seed      = 7
//	interval  = "40ms"
//	cell_size = 16
//	formats   = ["svg", "txt"]
//	max_size  = 512
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mazetower/pkg/errors"
)

// appName names the config directory.
const appName = "mazetower"

// Duration is a time.Duration that decodes from TOML strings such as "50ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the values a user can pin in the settings file.
type Config struct {
	Algorithm string   `toml:"algorithm"`
	Size      int      `toml:"size"`
	Seed      uint64   `toml:"seed"`
	Interval  Duration `toml:"interval"`
	CellSize  int      `toml:"cell_size"`
	Formats   []string `toml:"formats"`
	MaxSize   int      `toml:"max_size"`

	// Path is the file the values were read from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Algorithm: "recdesc",
		Size:      16,
		Seed:      42,
		Interval:  Duration{50 * time.Millisecond},
		CellSize:  20,
		Formats:   []string{"svg"},
		MaxSize:   256,
	}
}

// DefaultPath returns the XDG location of the settings file.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the settings file at path, or at DefaultPath when path is empty.
// Keys absent from the file keep their default values. A missing default file
// is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks value ranges. Algorithm names are checked for shape only;
// the registry decides whether they exist.
func (c Config) Validate() error {
	if err := errors.ValidateAlgorithmName(c.Algorithm); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "algorithm")
	}
	if c.MaxSize < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_size must be positive, got %d", c.MaxSize)
	}
	if err := errors.ValidateSize(c.Size, c.MaxSize); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "size")
	}
	if c.Interval.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "interval must not be negative, got %s", c.Interval)
	}
	if c.CellSize < 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "cell_size must be at least 2, got %d", c.CellSize)
	}
	if len(c.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "formats must not be empty")
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
