// Package settings turns the gomcnp global flags, environment and config
// file into the configuration and logger a command runs with.
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/internal/config"
	"github.com/rmera/gomcnp/internal/logger"
	"github.com/rmera/gomcnp/ptrac"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.debug":       "debug",
	"ptrac.strict":    "strict",
	"ptrac.workers":   "workers",
	"surface.workers": "workers",
	"output.format":   "format",
}

// Settings is what a command needs to run.
type Settings struct {
	Config *config.Config
	Logger *slog.Logger
	file   *os.File
}

// AddFlags registers the global flags on cmd.
func AddFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringP("config", "c", "", "Config file (default ./gomcnp.toml)")
	f.BoolP("debug", "d", false, "Enable debug logging")
	f.Bool("strict", false, "Fail on unrecognized PTRAC codes instead of warning")
	f.IntP("workers", "w", 0, "Parallel workers (0 means one per CPU)")
	f.String("log-file", "", "Also write JSON logs to this file")
}

// Load reads the settings for cmd. Flags not registered on cmd are ignored.
// The caller must Close the returned Settings.
func Load(cmd *cobra.Command) (*Settings, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	v, err := config.InitViper(path)
	if err != nil {
		return nil, err
	}
	for key, name := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}
	cfg := config.Load(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	S := &Settings{Config: cfg}
	S.Logger = logger.New(
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithDebug(cfg.Log.Debug),
		logger.WithPretty(cfg.Log.Pretty),
		logger.WithJSON(cfg.Log.JSON),
	)
	if name, _ := flags.GetString("log-file"); name != "" {
		S.file, err = os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		S.Logger = logger.Multi(S.Logger, logger.New(logger.WithWriter(S.file), logger.WithJSON(true), logger.WithDebug(true)))
	}
	S.Logger.Debug("settings loaded", "config", v.ConfigFileUsed(), "format", cfg.Output.Format)
	return S, nil
}

// PtracOptions returns the options for reading PTRAC files.
func (S *Settings) PtracOptions() ptrac.Options {
	o := ptrac.Options{Mode: ptrac.Lenient, Logger: S.Logger}
	if S.Config.Ptrac.Strict {
		o.Mode = ptrac.Strict
	}
	return o
}

// Input returns the reader for name, with "-" meaning the standard input of cmd.
func Input(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

// Close releases the log file, if any.
func (S *Settings) Close() error {
	if S.file == nil {
		return nil
	}
	return S.file.Close()
}
