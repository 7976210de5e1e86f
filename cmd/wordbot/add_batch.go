// cmd/wordbot/add_batch.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/service"

	"github.com/spf13/cobra"
)

func newAddBatchCmd(a *app) *cobra.Command {
	var (
		chatID int64
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "add-batch FILE",
		Short: "Import 'target|source' word pairs into a chat's practice set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open batch file: %w", err)
			}
			defer f.Close()

			pairs, warnings, err := service.ParseBatch(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			svcs, err := a.newServices(db)
			if err != nil {
				return err
			}
			ctx := middleware.WithLogger(cmd.Context(), a.logger.With(slog.String("component", "add-batch")))
			report, err := svcs.words.ImportBatch(ctx, chatID, pairs, dryRun)
			if err != nil {
				return err
			}

			if report.DryRun {
				for _, p := range report.Pending {
					fmt.Fprintf(out, "would add: %s | %s\n", p.Target, p.Source)
				}
				fmt.Fprintf(out, "Dry run: %d parsed, %d existing, %d to add\n", report.Parsed, report.Existing, len(report.Pending))
				return nil
			}
			fmt.Fprintf(out, "Imported: %d parsed, %d existing, %d added\n", report.Parsed, report.Existing, report.Added)
			return nil
		},
	}
	cmd.Flags().Int64Var(&chatID, "chat-id", 0, "chat whose practice set receives the words")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only report what would be added")
	_ = cmd.MarkFlagRequired("chat-id")
	return cmd
}
