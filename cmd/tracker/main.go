package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "tracker",
	Short:         "Track how score groups of trades perform against benchmarks",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (defaults to $TRACKER_CONFIG or the $TRACKER_ENV file)")
	rootCmd.AddCommand(trackCmd, ingestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		zap.S().Error(err)
		os.Exit(1)
	}
}
