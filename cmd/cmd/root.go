package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pagecraft/internal/config"
	"pagecraft/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pagecraft",
	Short: "Generate page content for visitor search terms",
	Long: `pagecraft builds page content for a search term two ways: by assembling
ranked excerpts from your published documents, or by generating personalized
page components (hero banners, calls-to-action) with a text provider.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if cfg.App.Debug {
			logger.SetLevel("debug")
		} else if cfg.App.LogLevel != "" {
			logger.SetLevel(cfg.App.LogLevel)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
