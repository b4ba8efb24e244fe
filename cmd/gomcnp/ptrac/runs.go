package ptraccmder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rmera/gomcnp/cmd/gomcnp/settings"
	"github.com/rmera/gomcnp/ptrac"
	"github.com/rmera/gomcnp/ptrac/store"
)

const runsLongDesc string = `List the runs stored in a database, or delete one.

Examples:
  gomcnp ptrac runs --db runs.sqlite
  gomcnp ptrac runs --db runs.sqlite --delete 0b6e1c1e-5a4f-4b43-9d1c-2f1d3c4b5a69`

const runsShortDesc string = "List or delete stored runs"

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: runsShortDesc,
		Long:  runsLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _ := cmd.Flags().GetString("db")
			del, _ := cmd.Flags().GetString("delete")
			return runRuns(cmd, db, del)
		},
	}
	cmd.Flags().String("db", "gomcnp.sqlite", "SQLite database file")
	cmd.Flags().String("delete", "", "Delete the run with this ID")
	return cmd
}

func runRuns(cmd *cobra.Command, db, del string) error {
	S, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	defer S.Close()
	st, err := store.Open(cmd.Context(), db)
	if err != nil {
		return err
	}
	defer st.Close()
	out := cmd.OutOrStdout()
	if del != "" {
		id, err := uuid.Parse(del)
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", del, err)
		}
		if err := st.DeleteRun(cmd.Context(), id); err != nil {
			return err
		}
		S.Logger.Info("run deleted", "db", db, "run", id)
		return nil
	}
	runs, err := st.Runs(cmd.Context())
	if err != nil {
		return err
	}
	for _, r := range runs {
		n, err := st.CountEvents(cmd.Context(), r.ID, ptrac.CategoryTermination)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s  %6d histories %6d terminations  %s\n", r.ID, r.Created.Format(time.DateTime), r.Histories, n, r.Title)
	}
	return nil
}
