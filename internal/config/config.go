// Package config loads user defaults for the ganzhi command.
//
// The file lives at $XDG_CONFIG_HOME/ganzhi/config.toml (falling back to
// ~/.config/ganzhi/config.toml) unless --config names another one:
//
//	anhe = "normal-extended"   # normal | normal-extended | mangpai
//	xing = "strict"            # strict | loose
//	options = "dayun,liunian"  # transit sequences used by discover/analyze
//	years = 10                 # rows shown by transits
//
// Keys that are left out keep their default.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ganzhi/pkg/errors"
	"github.com/matzehuels/ganzhi/pkg/relation"
	"github.com/matzehuels/ganzhi/pkg/rules"
	"github.com/matzehuels/ganzhi/pkg/transit"
)

const (
	appName  = "ganzhi"
	fileName = "config.toml"
)

// Config holds the defaults applied to every command.
type Config struct {
	Anhe    rules.AnheDefinition `toml:"anhe"`
	Xing    rules.XingDefinition `toml:"xing"`
	Options transit.Options      `toml:"options"`
	Years   int                  `toml:"years"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Anhe:    rules.AnheNormalExtended,
		Xing:    rules.XingStrict,
		Options: transit.OptDayun | transit.OptLiunian,
		Years:   10,
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate home directory")
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the default configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads path on top of [Default]. An empty path loads the default
// file, which may be missing; a named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}

// Decode reads a configuration from r on top of [Default].
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		if code := errors.GetCode(err); code != "" {
			return Config{}, err
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config keys: %s", strings.Join(names, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks the values a file can get wrong after decoding.
func (c Config) Validate() error {
	if !c.Options.Valid() {
		return errors.New(errors.ErrCodeInvalidOptions, "invalid transit options %q", c.Options.String())
	}
	if c.Years < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "years must be at least 1, got %d", c.Years)
	}
	return nil
}

// RelationOptions returns the search options selected by c.
func (c Config) RelationOptions() []relation.Option {
	return []relation.Option{relation.WithAnhe(c.Anhe), relation.WithXing(c.Xing)}
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
