// Package gomcnpcmder
package gomcnpcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/rmera/gomcnp/cmd/gomcnp/config"
	deckcmder "github.com/rmera/gomcnp/cmd/gomcnp/deck"
	ptraccmder "github.com/rmera/gomcnp/cmd/gomcnp/ptrac"
	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	surfacecmder "github.com/rmera/gomcnp/cmd/gomcnp/surface"
)

const gomcnpLongDesc string = `gomcnp reads and writes MCNP input surface cards and decodes PTRAC files.

  gomcnp surface     Parse and rewrite surface cards
  gomcnp deck        Parse and rewrite a whole input file
  gomcnp ptrac       Decode, store and histogram PTRAC files
  gomcnp config      Manage the configuration`

const gomcnpShortDesc string = "gomcnp - MCNP surfaces and particle tracks"

func NewGomcnpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gomcnp",
		Short:        gomcnpShortDesc,
		Long:         gomcnpLongDesc,
		SilenceUsage: true,
	}

	settings.AddFlags(cmd)

	cmd.AddCommand(surfacecmder.NewSurfaceCmd())
	cmd.AddCommand(deckcmder.NewDeckCmd())
	cmd.AddCommand(ptraccmder.NewPtracCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())

	return cmd
}
