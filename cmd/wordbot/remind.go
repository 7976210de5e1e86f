// cmd/wordbot/remind.go
package main

import (
	"fmt"
	"log/slog"

	"go_4_word_learn/internal/middleware"

	"github.com/spf13/cobra"
)

// remind は cron などから1回だけ実行する用途
func newRemindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send due reminders once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			svcs, err := a.newServices(db)
			if err != nil {
				return err
			}
			ctx := middleware.WithLogger(cmd.Context(), a.logger.With(slog.String("component", "reminder")))
			sent, err := svcs.reminders.ProcessDue(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %d reminders\n", sent)
			return nil
		},
	}
}
