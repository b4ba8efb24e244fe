// Package deckcmder provides the deck command, which reads a whole MCNP
// input file.
package deckcmder

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/inp"
	"github.com/rmera/gomcnp/mcnpjson"
)

const deckLongDesc string = `Read an MCNP input file and write it out again.

The surface block is fully parsed. Cell and data cards are kept as they are.
With --format json or yaml the deck is written as a dictionary.

Examples:
  gomcnp deck model.inp
  gomcnp deck model.inp --format yaml`

const deckShortDesc string = "Parse and rewrite an MCNP input file"

func NewDeckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck FILE",
		Short: deckShortDesc,
		Long:  deckLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "", "Output format: mcnp, json or yaml")
	return cmd
}

func runDeck(cmd *cobra.Command, name string) error {
	S, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	defer S.Close()
	r, err := settings.Input(cmd, name)
	if err != nil {
		return err
	}
	defer r.Close()
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	D, err := inp.ParseDeck(cmd.Context(), string(src), S.Config.Surface.Workers)
	if err != nil {
		S.Logger.Error("parsing deck", "file", name, "error", err)
		return err
	}
	S.Logger.Info("deck read", "title", D.Title, "cells", len(D.Cells), "surfaces", len(D.Surfaces), "data", len(D.Data))
	out := cmd.OutOrStdout()
	if S.Config.Output.Format != "mcnp" {
		return mcnpjson.Encode(out, D, S.Config.Output.Format)
	}
	text, err := D.ToMCNP()
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}
