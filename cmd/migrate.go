package cmd

import (
	"fmt"
	"lingua_placement/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
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

		fmt.Fprintln(cmd.OutOrStdout(), "Migration completed")
		return nil
	},
}
