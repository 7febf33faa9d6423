package main

import (
	"fmt"

	"peerlend-backend/internal/infrastructure/db"
	"peerlend-backend/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if err := db.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("schema up to date")
			return nil
		},
	}
}
