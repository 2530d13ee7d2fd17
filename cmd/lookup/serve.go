package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"customer-lookup/internal/config"
	"customer-lookup/internal/directory"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/httpserver"
	"customer-lookup/internal/lookup"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg config.Config, reg *fields.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the customer lookup web UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(cfg, reg)
		},
	}
	cmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address")
	cmd.Flags().StringVar(&cfg.DirectoryBaseURL, "base-url", cfg.DirectoryBaseURL, "customer directory base URL")
	return cmd
}

func serve(cfg config.Config, reg *fields.Registry) error {
	logger := newLogger()

	client := directory.NewClient(cfg.DirectoryBaseURL, cfg.DirectoryTimeout)
	searcher := lookup.NewSearcher(reg, client, logger)
	sessions, err := lookup.NewStore(searcher, cfg.SessionTTL, cfg.SessionMaxEntries)
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}

	srv, err := httpserver.NewLookup(cfg.HTTPAddr, logger, httpserver.LookupDeps{
		Searcher:      searcher,
		Sessions:      sessions,
		Directory:     client,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting lookup ui on %s directory=%s", cfg.HTTPAddr, cfg.DirectoryBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Printf("server stopped")
	return nil
}
