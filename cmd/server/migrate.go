package main

import (
	"fmt"

	"github.com/Alidiabb/quickcounsel/internal/database"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect(cfg.DB)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		defer closeDatabase(db)

		logger.Info("database_migrated", map[string]interface{}{
			"db_driver": cfg.DB.Driver,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
