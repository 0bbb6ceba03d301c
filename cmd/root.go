package cmd

import (
	"lingua_placement/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Language placement test service",
	Long:  "Serves placement tests for language learners, grades submissions and assigns a starting level per language.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "Directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedLevelsCmd)
}

// loadConfig reads config.yaml from the directory given by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}
