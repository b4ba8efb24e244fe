package ptraccmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/mcnpjson"
)

const decodeLongDesc string = `Decode a PTRAC file.

By default a text summary of the header and each history is printed. With
--format json or yaml the whole file is written as a dictionary.

Examples:
  gomcnp ptrac decode ptrac.txt
  gomcnp ptrac decode ptrac.txt.gz --strict --format json`

const decodeShortDesc string = "Decode a PTRAC file"

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: decodeShortDesc,
		Long:  decodeLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "", "Output format: mcnp (text), json or yaml")
	return cmd
}

func runDecode(cmd *cobra.Command, name string) error {
	S, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	defer S.Close()
	P, err := read(cmd, S, name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if S.Config.Output.Format != "mcnp" {
		return mcnpjson.Encode(out, P, S.Config.Output.Format)
	}
	fmt.Fprint(out, P.Header.String())
	for _, h := range P.Histories {
		fmt.Fprintln(out, h.String())
	}
	return nil
}
