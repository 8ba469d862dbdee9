package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cloudtally/cloudtally/config"
	"github.com/cloudtally/cloudtally/inventory"
	aws "github.com/cloudtally/cloudtally/providers/aws"
	"github.com/cloudtally/cloudtally/report"
	"github.com/cloudtally/cloudtally/store"
	"github.com/cloudtally/cloudtally/telemetry"
)

var (
	flagMode    string
	flagFormat  string
	flagRegions []string
	flagOutput  string
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Scan accounts and write consolidated inventory reports",
	Long: `Scan every configured account across its regions and write one
consolidated report per account.

A failing service or region is logged and skipped; the report is always
written, even when parts of the scan failed. The exit code is non-zero
only for configuration problems or when credentials fail before any
collection starts.`,
	RunE: runInventory,
}

func init() {
	inventoryCmd.Flags().StringVar(&flagMode, "mode", "basic", "Report mode: basic, detailed, security, cost")
	inventoryCmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv, xlsx, both")
	inventoryCmd.Flags().StringSliceVar(&flagRegions, "regions", nil, "Regions to scan (default: all enabled regions)")
	inventoryCmd.Flags().StringVar(&flagOutput, "output", "", "Output directory (overrides config)")
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	mode, err := report.ParseMode(flagMode)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if flagOutput != "" {
		outputDir = flagOutput
	}
	if outputDir == "" {
		outputDir = "reports"
	}

	logger := telemetry.NewLogger(flagLogLevel, true)
	sink := telemetry.Sink(telemetry.NewLogSink(logger))
	if flagSilent {
		sink = telemetry.Discard{}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	hadErrors := false
	for _, account := range cfg.Accounts {
		if err := scanAccount(ctx, account, cfg, mode, format, outputDir, sink, &hadErrors); err != nil {
			return err
		}
	}

	if hadErrors && !flagSilent {
		pterm.Warning.Println("some collectors failed; reports may be incomplete")
	}
	return nil
}

// scanAccount runs the full inventory for one account. Credential
// failure before collection is the only error returned; everything
// after that degrades to a flagged, partial report.
func scanAccount(ctx context.Context, account config.Account, cfg *config.Config,
	mode report.Mode, format report.Format, outputDir string,
	sink telemetry.Sink, hadErrors *bool) error {

	connector, err := aws.NewConnectorForAccount(ctx, account.ProfileName(), account.RoleARN)
	if err != nil {
		return fmt.Errorf("credentials for account %s: %w", account.Name, err)
	}

	accountID, err := connector.AccountID(ctx)
	if err != nil {
		return fmt.Errorf("resolving account %s identity: %w", account.Name, err)
	}

	regions, err := resolveRegions(ctx, connector, account)
	if err != nil {
		return fmt.Errorf("resolving regions for account %s: %w", account.Name, err)
	}

	var spinner *pterm.SpinnerPrinter
	if !flagSilent {
		spinner, _ = pterm.DefaultSpinner.Start(
			fmt.Sprintf("Scanning %s (%d regions)", account.Name, len(regions)))
	}

	engine := inventory.NewEngine(connector, sink, flagSilent)
	result := engine.Run(ctx, regions)
	if result.HadErrors {
		*hadErrors = true
	}

	paths, err := report.Save(outputDir, mode, format, accountID, result.Records, time.Now())
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return fmt.Errorf("writing report for account %s: %w", account.Name, err)
	}

	if cfg.StorePath != "" {
		if err := persistRun(cfg.StorePath, accountID, string(mode), result); err != nil {
			sink.Error(fmt.Sprintf("saving run history: %v", err))
		}
	}

	if spinner != nil {
		spinner.Success(fmt.Sprintf("%s: %d resources", account.Name, len(result.Records)))
	}
	if !flagSilent {
		printSummary(account.Name, mode, result, paths)
	}
	return nil
}

// resolveRegions picks the region set: explicit flag first, then the
// account's configured override, then every enabled region.
func resolveRegions(ctx context.Context, connector *aws.Connector, account config.Account) ([]string, error) {
	if len(flagRegions) > 0 {
		return flagRegions, nil
	}
	if len(account.Regions) > 0 {
		return account.Regions, nil
	}
	return connector.ListRegions(ctx)
}

func persistRun(storePath, accountID, mode string, result *inventory.Result) error {
	s, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.SaveRun(accountID, mode, result.Records, result.HadErrors)
	return err
}

func printSummary(account string, mode report.Mode, result *inventory.Result, paths []string) {
	pterm.Println()
	pterm.DefaultSection.Printf("Inventory summary: %s (%s mode)", account, mode)

	counts := result.CountByType()
	rows := pterm.TableData{{"Resource Type", "Count"}}
	for _, resType := range sortedKeys(counts) {
		rows = append(rows, []string{resType, fmt.Sprintf("%d", counts[resType])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	pterm.Printf("Total resources: %d\n", len(result.Records))
	for _, path := range paths {
		pterm.Printf("Report written: %s\n", path)
	}
}

func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(flagConfig)
}
