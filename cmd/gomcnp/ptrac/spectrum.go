package ptraccmder

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/ptrac"
	"github.com/rmera/gomcnp/spectrum"
)

const spectrumLongDesc string = `Histogram the energies of the events of one category.

The bins come from the ptrac section of the configuration and can be
overridden with --bins, --emin and --emax. With --by-particle, a spectrum
is built for each particle type and event category. With --png, the
spectrum is also plotted.

Examples:
  gomcnp ptrac spectrum ptrac.txt --category collision
  gomcnp ptrac spectrum ptrac.txt --category termination --png term.png
  gomcnp ptrac spectrum ptrac.txt --by-particle --format json`

const spectrumShortDesc string = "Build energy spectra"

type spectrumFlags struct {
	category   string
	png        string
	byParticle bool
	normalize  bool
}

func newSpectrumCmd() *cobra.Command {
	fl := &spectrumFlags{}
	cmd := &cobra.Command{
		Use:   "spectrum FILE",
		Short: spectrumShortDesc,
		Long:  spectrumLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpectrum(cmd, args[0], fl)
		},
	}
	cmd.Flags().StringVar(&fl.category, "category", "collision", "Event category: source, bank, surface, collision or termination")
	cmd.Flags().StringVar(&fl.png, "png", "", "Plot the spectrum to this PNG file")
	cmd.Flags().BoolVar(&fl.byParticle, "by-particle", false, "One spectrum per particle and category")
	cmd.Flags().BoolVar(&fl.normalize, "normalize", false, "Divide each bin by the total count")
	cmd.Flags().Int("bins", 0, "Number of bins")
	cmd.Flags().Float64("emin", 0, "Lowest energy (MeV)")
	cmd.Flags().Float64("emax", 0, "Highest energy (MeV)")
	cmd.Flags().String("format", "", "Output format: mcnp (text) or json")
	return cmd
}

func dividers(cmd *cobra.Command, S *settings.Settings) ([]float64, error) {
	c := S.Config.Ptrac
	if cmd.Flags().Changed("bins") {
		c.Bins, _ = cmd.Flags().GetInt("bins")
	}
	if cmd.Flags().Changed("emin") {
		c.EnergyMin, _ = cmd.Flags().GetFloat64("emin")
	}
	if cmd.Flags().Changed("emax") {
		c.EnergyMax, _ = cmd.Flags().GetFloat64("emax")
	}
	if c.LogBins {
		return spectrum.LogDividers(c.EnergyMin, c.EnergyMax, c.Bins)
	}
	return spectrum.LinearDividers(c.EnergyMin, c.EnergyMax, c.Bins)
}

func runSpectrum(cmd *cobra.Command, name string, fl *spectrumFlags) error {
	S, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	defer S.Close()
	format := S.Config.Output.Format
	if format != "mcnp" && format != "json" {
		return fmt.Errorf("spectra can't be written as %s", format)
	}
	cat, ok := ptrac.ParseCategory(fl.category)
	if !ok {
		return fmt.Errorf("unknown event category %q", fl.category)
	}
	div, err := dividers(cmd, S)
	if err != nil {
		return err
	}
	P, err := read(cmd, S, name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if fl.byParticle {
		M, err := spectrum.ByParticle(P.Histories, div)
		if err != nil {
			return err
		}
		if fl.normalize {
			M.NormalizeAll()
		}
		if format == "json" {
			return json.NewEncoder(out).Encode(M)
		}
		_, err = fmt.Fprintln(out, M.String())
		return err
	}
	D, err := spectrum.FromHistories(P.Histories, cat, div)
	if err != nil {
		return err
	}
	S.Logger.Debug("spectrum built", "category", cat, "total", D.Total(), "in range", D.Sum())
	if fl.normalize {
		D.Normalize()
	}
	if fl.png != "" {
		title := fmt.Sprintf("%s: %s events", P.Header.Title, cat)
		if err := spectrum.Plot(D, title, fl.png); err != nil {
			return err
		}
		S.Logger.Info("spectrum plotted", "file", fl.png)
	}
	if format == "json" {
		return json.NewEncoder(out).Encode(D)
	}
	_, err = fmt.Fprintln(out, D.String())
	return err
}
