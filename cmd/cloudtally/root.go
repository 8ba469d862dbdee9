package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "cloudtally",
		Short: "Cloud resource inventory reports",
		Long: `Cloudtally - Cloud Resource Inventory

Cloudtally walks every region and service of an AWS account, survives
partial failures service by service, and consolidates everything it
finds into one normalized report.

Reports come in four modes (basic, detailed, security, cost) as CSV,
spreadsheet, or both.`,
		Version: version,
	}

	flagConfig   string
	flagLogLevel string
	flagSilent   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagSilent, "silent", false, "Suppress progress and informational output")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
