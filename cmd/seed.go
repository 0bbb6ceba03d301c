package cmd

import (
	"fmt"
	"lingua_placement/pkg/database"

	"github.com/spf13/cobra"
)

var seedLevelsCmd = &cobra.Command{
	Use:   "seed-levels",
	Short: "Give every language the Beginner, Intermediate and Advanced levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		n, err := database.SeedLevels(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d levels\n", n)
		return nil
	},
}
