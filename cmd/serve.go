package cmd

import (
	"lingua_placement/internal/app"
	"lingua_placement/pkg/logger"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, dir, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	application, err := app.NewApp(cfg, dir)
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	return application.Run()
}
