package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dbform/internal/config"
	"github.com/goliatone/go-dbform/pkg/store/postgres"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Create or drop the form_responses table",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(postgres.Up), string(postgres.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := postgres.Up
			if len(args) == 1 {
				direction = postgres.Direction(args[0])
			}
			if direction != postgres.Up && direction != postgres.Down {
				return fmt.Errorf("unknown direction %q, want up or down", args[0])
			}
			if a.cfg.Store.Driver != config.DriverPostgres {
				return errors.New("migrate requires store.driver postgres")
			}

			db, closeDB, err := a.openDB(cmd.Context(), a.cfg.Store.DSN)
			if err != nil {
				return err
			}
			defer closeDB()

			versions, err := postgres.Migrate(cmd.Context(), db, direction)
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: nothing to do\n", direction)
				return nil
			}
			for _, v := range versions {
				fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: %s\n", direction, v)
			}
			a.logger.Info("migrations applied", "direction", string(direction), "count", len(versions))
			return nil
		},
	}
}
