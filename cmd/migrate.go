package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kisan-backend/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repository.MigrateDB(db, cfg.Database.MigrationsPath, logger); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
