package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mirtechlab/mt-analytics/core/config"
	"github.com/mirtechlab/mt-analytics/core/database"
	"github.com/mirtechlab/mt-analytics/repository"
)

var seedCounts = repository.DefaultSeedCounts

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with generated demo data",
	Long: `Generates users, products, orders, order items and transactions, then
builds the denormalized fact table from the complete joins. Safe to rerun;
each run appends a fresh batch.`,
	Run: seedDatabase,
}

func init() {
	seedCmd.Flags().IntVar(&seedCounts.Users, "users", seedCounts.Users, "number of users to generate")
	seedCmd.Flags().IntVar(&seedCounts.Products, "products", seedCounts.Products, "number of products to generate")
	seedCmd.Flags().IntVar(&seedCounts.Orders, "orders", seedCounts.Orders, "number of orders to generate")
	seedCmd.Flags().IntVar(&seedCounts.Items, "items", seedCounts.Items, "number of order items to generate")
	rootCmd.AddCommand(seedCmd)
}

func seedDatabase(_ *cobra.Command, _ []string) {
	db, err := database.NewDatabase(config.Global)
	if err != nil {
		logrus.Fatalf("[SEED] Database connection failed: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		logrus.Fatalf("[SEED] Migration failed: %v", err)
	}

	if err := repository.NewSeeder(db).Run(context.Background(), seedCounts); err != nil {
		logrus.Fatalf("[SEED] Seeding failed: %v", err)
	}
}
