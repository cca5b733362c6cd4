package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"founderreach/internal/metrics"
	"founderreach/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, dbo, err := setup()
	if err != nil {
		return err
	}
	defer dbo.Close()

	app := server.New(server.Deps{
		DB:          dbo,
		Driver:      cfg.DB.Driver,
		CORSOrigins: cfg.CORSOrigins,
		PINRequired: cfg.PINRequired,
		SessionTTL:  time.Duration(cfg.SessionMinutes) * time.Minute,
		Metrics:     metrics.New(),
	})

	listenErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Infof("FounderReach server listening on [::]%s", addr)
		listenErr <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return fmt.Errorf("http listen failed: %w", err)
	case sig := <-quit:
		log.Infof("shutdown signal received (%s)", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("http shutdown failed: %v", err)
		return err
	}

	log.Info("FounderReach server stopped.")
	return nil
}
