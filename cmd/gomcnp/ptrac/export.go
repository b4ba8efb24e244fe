package ptraccmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/ptrac/store"
)

const exportLongDesc string = `Decode a PTRAC file and store it in a SQLite database.

Each file becomes a run, identified by the UUID this command prints.
The database is created if needed.

Examples:
  gomcnp ptrac export ptrac.txt --db runs.sqlite`

const exportShortDesc string = "Store a PTRAC file in SQLite"

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: exportShortDesc,
		Long:  exportLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _ := cmd.Flags().GetString("db")
			return runExport(cmd, args[0], db)
		},
	}
	cmd.Flags().String("db", "gomcnp.sqlite", "SQLite database file")
	return cmd
}

func runExport(cmd *cobra.Command, name, db string) error {
	S, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	defer S.Close()
	P, err := read(cmd, S, name)
	if err != nil {
		return err
	}
	st, err := store.Open(cmd.Context(), db)
	if err != nil {
		return err
	}
	defer st.Close()
	id, err := st.SaveRun(cmd.Context(), P)
	if err != nil {
		S.Logger.Error("saving run", "db", db, "error", err)
		return err
	}
	S.Logger.Info("run saved", "db", db, "run", id)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
	return err
}
