// cmd/wordbot/migrate.go
package main

import (
	"fmt"

	"go_4_word_learn/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := repository.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migration completed")
			return nil
		},
	}
}
