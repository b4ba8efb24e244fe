package config

const (
	defaultWrapWidth = 80
	defaultBins      = 50
	defaultEnergyMin = 1e-3
	defaultEnergyMax = 20.0
	defaultFormat    = "mcnp"
)

// NewDefaultConfig returns a Config with the default values. Zero workers
// means one per CPU.
func NewDefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{
			WrapWidth: defaultWrapWidth,
		},
		Ptrac: PtracConfig{
			Bins:      defaultBins,
			EnergyMin: defaultEnergyMin,
			EnergyMax: defaultEnergyMax,
			LogBins:   true,
		},
		Output: OutputConfig{
			Format: defaultFormat,
		},
		Log: LogConfig{
			Pretty: true,
		},
	}
}
