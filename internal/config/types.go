package config

// Config is the gomcnp configuration, stored as gomcnp.toml.
type Config struct {
	Surface SurfaceConfig `toml:"surface"`
	Ptrac   PtracConfig   `toml:"ptrac"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
}

// SurfaceConfig holds the settings for reading and writing surface cards.
type SurfaceConfig struct {
	WrapWidth int `toml:"wrap_width"`
	Workers   int `toml:"workers"`
}

// PtracConfig holds the settings for decoding PTRAC files and building spectra.
type PtracConfig struct {
	Strict    bool    `toml:"strict"`
	Workers   int     `toml:"workers"`
	Bins      int     `toml:"bins"`
	EnergyMin float64 `toml:"energy_min"`
	EnergyMax float64 `toml:"energy_max"`
	LogBins   bool    `toml:"log_bins"`
}

// OutputConfig holds the default output format: mcnp, json or yaml.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Debug  bool `toml:"debug"`
	Pretty bool `toml:"pretty"`
	JSON   bool `toml:"json"`
}
