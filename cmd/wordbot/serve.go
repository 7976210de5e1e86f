// cmd/wordbot/serve.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go_4_word_learn/internal/handlers"
	"go_4_word_learn/internal/middleware"
	"go_4_word_learn/internal/repository"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook API and the reminder worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "create or update tables before serving")
	return cmd
}

func (a *app) serve(ctx context.Context, migrate bool) error {
	db, closeDB, err := a.openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	if migrate {
		if err := repository.Migrate(db); err != nil {
			return err
		}
		a.logger.Info("Database schema migrated")
	}

	svcs, err := a.newServices(db)
	if err != nil {
		return err
	}

	bot := handlers.NewBot(svcs.practice, svcs.words, svcs.addWords, svcs.reminders, a.cfg.Practice.Location())
	router := handlers.NewRouter(a.cfg, a.logger, handlers.NewUpdateHandler(bot), handlers.NewHealthHandler(db))

	server := &http.Server{
		Addr:         a.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("Server listening", slog.String("port", a.cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		workerCtx := middleware.WithLogger(gctx, a.logger.With(slog.String("component", "reminder")))
		return svcs.reminders.Run(workerCtx)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("Server exiting")
	return nil
}
