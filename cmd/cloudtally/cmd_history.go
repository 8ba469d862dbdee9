package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/cloudtally/cloudtally/store"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past inventory runs",
	Long: `Show the runs recorded in the snapshot store. Requires a
store_path in the config file; runs are only recorded when one is set.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "How many runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StorePath == "" {
		return fmt.Errorf("no store_path configured; run history is not being recorded")
	}

	s, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer s.Close()

	snapshots := s.History(historyLimit)
	if len(snapshots) == 0 {
		pterm.Println("no runs recorded yet")
		return nil
	}

	rows := pterm.TableData{{"Run", "Time", "Account", "Mode", "Resources", "Errors"}}
	for _, snap := range snapshots {
		errors := "no"
		if snap.HadErrors {
			errors = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", snap.Run),
			snap.Timestamp.Format("2006-01-02 15:04"),
			snap.Account,
			snap.Mode,
			fmt.Sprintf("%d", snap.Total),
			errors,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
