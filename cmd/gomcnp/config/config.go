// Package configcmder provides the config command for writing and showing
// the gomcnp configuration.
package configcmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/internal/config"
)

const configLongDesc string = `Manage the gomcnp configuration.

The configuration is read from gomcnp.toml in the working directory or in
the gomcnp directory under the user configuration directory. Environment
variables such as GOMCNP_PTRAC_STRICT override the file.

Examples:
  gomcnp config init
  gomcnp config show`

const configShortDesc string = "Manage the gomcnp configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newShowCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write a config file with the default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "gomcnp.toml"
			if len(args) == 1 {
				path = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			return runInit(cmd, path, force)
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}
	if err := config.Save(path, config.NewDefaultConfig()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			S, err := settings.Load(cmd)
			if err != nil {
				return err
			}
			defer S.Close()
			return config.Encode(cmd.OutOrStdout(), S.Config)
		},
	}
}
