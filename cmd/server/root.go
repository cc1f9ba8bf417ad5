package main

import (
	"fmt"
	"os"

	"github.com/Alidiabb/quickcounsel/internal/config"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	flagPort string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "quickcounsel-server",
	Short: "QuickCounsel API server: lawyer discovery, ratings and portfolios",
	Long: `QuickCounsel serves the HTTP/JSON API that matches clients with lawyers.

Commands:
  quickcounsel-server            Run the API server (same as "serve")
  quickcounsel-server migrate    Create or update the database schema and exit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
		cfg = config.Load()
		if flagPort != "" {
			cfg.Server.Port = flagPort
		}
		utils.ConfigurePasswordCost(cfg.Security.BcryptCost)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "Override listen port (default: PORT or 8080)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
