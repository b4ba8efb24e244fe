package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "gomcnp"
	envPrefix  = "GOMCNP"
)

// InitViper creates and returns a configured *viper.Viper.
// If configFile is not empty, that file is read and must exist. Otherwise
// gomcnp.toml is looked for in the working directory and then in the
// gomcnp directory under the user configuration directory; not finding it is
// not an error.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound with BindPFlag)
//  2. Environment variables (GOMCNP_PTRAC_STRICT, GOMCNP_SURFACE_WRAP_WIDTH, etc.)
//  3. gomcnp.toml values
//  4. Defaults from NewDefaultConfig()
func InitViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setViperDefaults(v)
	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if configFile != "" || !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

// setViperDefaults registers the values from NewDefaultConfig() with dotted keys.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("surface.wrap_width", d.Surface.WrapWidth)
	v.SetDefault("surface.workers", d.Surface.Workers)

	v.SetDefault("ptrac.strict", d.Ptrac.Strict)
	v.SetDefault("ptrac.workers", d.Ptrac.Workers)
	v.SetDefault("ptrac.bins", d.Ptrac.Bins)
	v.SetDefault("ptrac.energy_min", d.Ptrac.EnergyMin)
	v.SetDefault("ptrac.energy_max", d.Ptrac.EnergyMax)
	v.SetDefault("ptrac.log_bins", d.Ptrac.LogBins)

	v.SetDefault("output.format", d.Output.Format)

	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("log.json", d.Log.JSON)
}

// Load returns the configuration held by v.
func Load(v *viper.Viper) *Config {
	return &Config{
		Surface: SurfaceConfig{
			WrapWidth: v.GetInt("surface.wrap_width"),
			Workers:   v.GetInt("surface.workers"),
		},
		Ptrac: PtracConfig{
			Strict:    v.GetBool("ptrac.strict"),
			Workers:   v.GetInt("ptrac.workers"),
			Bins:      v.GetInt("ptrac.bins"),
			EnergyMin: v.GetFloat64("ptrac.energy_min"),
			EnergyMax: v.GetFloat64("ptrac.energy_max"),
			LogBins:   v.GetBool("ptrac.log_bins"),
		},
		Output: OutputConfig{
			Format: v.GetString("output.format"),
		},
		Log: LogConfig{
			Debug:  v.GetBool("log.debug"),
			Pretty: v.GetBool("log.pretty"),
			JSON:   v.GetBool("log.json"),
		},
	}
}
