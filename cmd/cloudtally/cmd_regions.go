package main

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	aws "github.com/cloudtally/cloudtally/providers/aws"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions enabled for the account",
	RunE:  runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	connector, err := aws.NewConnectorForProfile(ctx, cfg.Accounts[0].ProfileName())
	if err != nil {
		return err
	}

	regions, err := connector.ListRegions(ctx)
	if err != nil {
		return err
	}

	for _, region := range regions {
		pterm.Println(region)
	}
	return nil
}
