package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cloudtally/cloudtally/inventory"
	aws "github.com/cloudtally/cloudtally/providers/aws"
	"github.com/cloudtally/cloudtally/report"
	"github.com/cloudtally/cloudtally/telemetry"
)

var (
	exportRegion string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <service>",
	Short: "Export one service's resources to CSV",
	Long: `Export a single service's resources without running the full
consolidation. The service name is the collector's short name, for
example ec2, rds, lambda or s3. Use "cloudtally export list" to see
them all.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportRegion, "region", "us-east-1", "Region to export from (ignored for global services)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "reports", "Output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	service := args[0]
	if service == "list" {
		return listServices()
	}

	collector, ok := aws.ByName(service)
	if !ok {
		return fmt.Errorf("unknown service %q; run \"cloudtally export list\"", service)
	}

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
		return fmt.Errorf("credentials: %w", err)
	}
	accountID, err := connector.AccountID(ctx)
	if err != nil {
		return fmt.Errorf("resolving account identity: %w", err)
	}

	engine := inventory.NewEngineWithCollectors(connector, []aws.Collector{collector}, telemetry.Discard{})
	result := engine.Run(ctx, []string{exportRegion})
	if result.HadErrors {
		return fmt.Errorf("collecting %s in %s failed", service, exportRegion)
	}

	path, err := report.SaveCSV(exportOutput, report.ModeDetailed, accountID+"_"+service, result.Records, time.Now())
	if err != nil {
		return err
	}

	if !flagSilent {
		pterm.Success.Printf("exported %d %s resources to %s\n", len(result.Records), service, path)
	}
	return nil
}

func listServices() error {
	rows := pterm.TableData{{"Service", "Resource Type", "Scope"}}
	for _, c := range aws.Registry() {
		scope := "regional"
		if c.Global() {
			scope = "global"
		}
		rows = append(rows, []string{c.Name(), c.ResourceType(), scope})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
