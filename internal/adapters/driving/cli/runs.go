package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent ingestion runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum runs to list")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	if runLister == nil {
		return errors.New("run ledger not configured")
	}

	runs, err := runLister.Runs(context.Background(), runsLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No ingestion runs recorded.")
		return nil
	}

	for _, run := range runs {
		status := "ok"
		detail := fmt.Sprintf("%d documents -> %s", run.Documents, run.Destination)
		if !run.Success {
			status = "failed"
			detail = run.Reason
		}
		cmd.Printf("%s  %-8s  %-24s  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			status, run.SourceKey, detail)
	}
	return nil
}
