package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"peerlend-backend/internal/app"
	"peerlend-backend/internal/infrastructure/cache"
	"peerlend-backend/internal/infrastructure/db"
	"peerlend-backend/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run schema migrations before serving")
	return cmd
}

func runServe(parent context.Context, autoMigrate bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.NewLogger(cfg.AppEnv)

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.DBLogLevel)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if autoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	e := app.NewServer(app.Deps{DB: gdb, Redis: rdb, Config: cfg, Log: log})

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.AppPort
		log.Info("listening", "addr", addr, "env", cfg.AppEnv)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return e.Shutdown(sctx)
	})
	return g.Wait()
}
