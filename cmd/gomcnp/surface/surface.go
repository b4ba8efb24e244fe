// Package surfacecmder provides the surface command, which reads surface
// cards and writes them back as MCNP input, JSON or YAML.
package surfacecmder

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/geom"
	"github.com/rmera/gomcnp/inp"
	"github.com/rmera/gomcnp/mcnpjson"
)

const surfaceLongDesc string = `Read MCNP surface cards and write them out again.

Cards are given as arguments, one card per argument, or read from a file
with --file ("-" is the standard input). JSON and YAML input, as written by
this command, is read with --input.

With --quadric, the general quadric equation of each surface is printed
along with the kind of quadric it is.

Examples:
  gomcnp surface "1 px 3" "*2 so 10"
  gomcnp surface -f block.txt --format json
  gomcnp surface -f surfaces.yaml --input yaml --quadric`

const surfaceShortDesc string = "Parse and rewrite surface cards"

type surfaceFlags struct {
	file    string
	input   string
	quadric bool
}

func NewSurfaceCmd() *cobra.Command {
	fl := &surfaceFlags{}
	cmd := &cobra.Command{
		Use:   "surface [card...]",
		Short: surfaceShortDesc,
		Long:  surfaceLongDesc,
		Args: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if (file == "") == (len(args) == 0) {
				return fmt.Errorf("give either cards or --file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSurface(cmd, args, fl)
		},
	}
	cmd.Flags().StringVarP(&fl.file, "file", "f", "", "Read the cards from this file")
	cmd.Flags().StringVar(&fl.input, "input", "mcnp", "Input format: mcnp, json or yaml")
	cmd.Flags().BoolVarP(&fl.quadric, "quadric", "q", false, "Print the quadric form of each surface")
	cmd.Flags().String("format", "", "Output format: mcnp, json or yaml")
	return cmd
}

func runSurface(cmd *cobra.Command, args []string, fl *surfaceFlags) error {
	S, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	defer S.Close()
	surfaces, err := readSurfaces(cmd, args, fl, S)
	if err != nil {
		S.Logger.Error("reading surfaces", "error", err)
		return err
	}
	S.Logger.Debug("surfaces read", "count", len(surfaces))
	out := cmd.OutOrStdout()
	if fl.quadric {
		return writeQuadrics(out, surfaces)
	}
	if S.Config.Output.Format == "mcnp" {
		_, err = fmt.Fprintln(out, surfaces.ToMCNPWidth(S.Config.Surface.WrapWidth))
		return err
	}
	return mcnpjson.Encode(out, surfaces, S.Config.Output.Format)
}

func readSurfaces(cmd *cobra.Command, args []string, fl *surfaceFlags, S *settings.Settings) (inp.Surfaces, error) {
	var text string
	if fl.file != "" {
		r, err := settings.Input(cmd, fl.file)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		if fl.input != "mcnp" {
			return mcnpjson.DecodeSurfaces(r, fl.input)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		text = string(b)
	} else {
		if fl.input != "mcnp" {
			return nil, fmt.Errorf("--input %s needs --file", fl.input)
		}
		text = strings.Join(args, "\n")
	}
	return inp.ParseSurfaces(cmd.Context(), text, 1, S.Config.Surface.Workers)
}

func writeQuadrics(out io.Writer, surfaces inp.Surfaces) error {
	for _, s := range surfaces {
		q, err := geom.ToQuadric(s)
		if err != nil {
			fmt.Fprintf(out, "%d %s: %v\n", s.Number(), s.Mnemonic(), err)
			continue
		}
		kind, err := q.Classify()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d %s: %s = 0 (%s)\n", s.Number(), s.Mnemonic(), q, kind)
	}
	return nil
}
