package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mirtechlab/mt-analytics/core/config"
	"github.com/mirtechlab/mt-analytics/core/database"
	"github.com/mirtechlab/mt-analytics/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run:   migrateDatabase,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func migrateDatabase(_ *cobra.Command, _ []string) {
	db, err := database.NewDatabase(config.Global)
	if err != nil {
		logrus.Fatalf("[MIGRATE] Database connection failed: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		logrus.Fatalf("[MIGRATE] Migration failed: %v", err)
	}
	logrus.Info("[MIGRATE] Schema is up to date")
}
