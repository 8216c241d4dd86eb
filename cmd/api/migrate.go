package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"view-analytics-service/internal/config"
	"view-analytics-service/internal/logger"
	"view-analytics-service/internal/storage/postgres"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log, err := logger.New(cfg.ServiceEnvironment, serviceName)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := postgres.Open(cmd.Context(), cfg.PostgresDSN, postgres.PoolConfig{
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: cfg.PostgresConnMaxLifetime,
		})
		if err != nil {
			return err
		}
		defer db.Close()

		if migrateDown {
			if err := postgres.Rollback(db); err != nil {
				return err
			}
			log.Info("Reverted last migration")
			return nil
		}

		version, err := postgres.Migrate(db)
		if err != nil {
			return err
		}
		log.Info("Schema is up to date", zap.Uint("version", version))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "revert the most recent migration instead")
}
