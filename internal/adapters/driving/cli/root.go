// Package cli provides the cobra command tree for the ingest CLI.
//
// Services are injected by the composition root (cmd/ingest-cli) through
// the Set* functions before Execute is called.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// version is set by the composition root at startup.
var version = "dev"

// Injected services.
var (
	ingestor  driving.Ingestor
	runLister driving.RunLister
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ingest-cli",
	Short: "Ingest external sources into the document store",
	Long: `ingest-cli collects documents from external sources (Confluence
spaces, GitHub repositories) and normalises them into the document store
consumed by the retrieval pipeline.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline progress to stderr")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetIngestor injects the ingestion service.
func SetIngestor(i driving.Ingestor) {
	ingestor = i
}

// SetRunLister injects the run ledger service.
func SetRunLister(l driving.RunLister) {
	runLister = l
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
