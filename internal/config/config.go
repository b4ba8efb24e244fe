// Package config handles the gomcnp configuration: defaults, the gomcnp.toml
// file and GOMCNP_ environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseTOML reads a configuration from TOML data. Fields not in data keep
// their default values.
func ParseTOML(data []byte) (*Config, error) {
	cfg := NewDefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks that the values in cfg make sense.
func (c *Config) Validate() error {
	var errs []error
	if c.Surface.WrapWidth < 10 {
		errs = append(errs, fmt.Errorf("surface.wrap_width must be at least 10, got %d", c.Surface.WrapWidth))
	}
	if c.Surface.Workers < 0 || c.Ptrac.Workers < 0 {
		errs = append(errs, errors.New("workers can't be negative"))
	}
	if c.Ptrac.Bins < 1 {
		errs = append(errs, fmt.Errorf("ptrac.bins must be positive, got %d", c.Ptrac.Bins))
	}
	if c.Ptrac.EnergyMax <= c.Ptrac.EnergyMin || (c.Ptrac.LogBins && c.Ptrac.EnergyMin <= 0) {
		errs = append(errs, fmt.Errorf("invalid energy range [%g, %g]", c.Ptrac.EnergyMin, c.Ptrac.EnergyMax))
	}
	switch c.Output.Format {
	case "mcnp", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("unknown output.format %q", c.Output.Format))
	}
	return errors.Join(errs...)
}

// Encode writes cfg to w as TOML.
func Encode(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot encode nil config")
	}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
