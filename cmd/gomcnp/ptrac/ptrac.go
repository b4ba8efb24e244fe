// Package ptraccmder provides the ptrac command and its subcommands, which
// decode PTRAC files, store them in SQLite and build energy spectra.
package ptraccmder

import (
	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/ptrac"
)

const ptracLongDesc string = `Work with MCNP PTRAC (particle track) files in ASCII format.

Files compressed with gzip or zstd are read transparently.

Subcommands:
  gomcnp ptrac decode      Decode a file and print its histories
  gomcnp ptrac export      Store a file in a SQLite database
  gomcnp ptrac runs        List or delete the runs in a database
  gomcnp ptrac spectrum    Histogram the energies of a kind of event`

const ptracShortDesc string = "Decode PTRAC files"

func NewPtracCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptrac",
		Short: ptracShortDesc,
		Long:  ptracLongDesc,
	}
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newRunsCmd())
	cmd.AddCommand(newSpectrumCmd())
	return cmd
}

// read decodes the whole file name with the workers and mode in S.
func read(cmd *cobra.Command, S *settings.Settings, name string) (*ptrac.Ptrac, error) {
	R, err := ptrac.Open(name, S.PtracOptions())
	if err != nil {
		return nil, err
	}
	defer R.Close()
	hs, err := ptrac.DecodeAll(cmd.Context(), R, S.Config.Ptrac.Workers)
	if err != nil {
		S.Logger.Error("decoding histories", "file", name, "error", err)
		return nil, err
	}
	P := &ptrac.Ptrac{Header: R.Header(), Histories: hs}
	S.Logger.Info("ptrac read", "file", name, "histories", len(hs), "events", P.Events())
	return P, nil
}
