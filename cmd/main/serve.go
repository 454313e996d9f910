package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	serverhttp "pharmatool/server/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only inspection API (health, search, medicines, contacts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		r := serverhttp.NewRouter(cfg, s, logger)
		srv := &http.Server{Addr: cfg.Addr(), Handler: r}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", cfg.Addr()).Msg("server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logger.Info().Msg("server shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
		logger.Info().Msg("bye")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
