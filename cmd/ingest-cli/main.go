// Command ingest-cli is the composition root: it wires the config store,
// document sink, run ledger, tokenizer and connectors into the ingestion
// service and hands control to the CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/sink/fsdir"
	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ingest-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ingest-cli/internal/connectors/confluence"
	"github.com/custodia-labs/ingest-cli/internal/connectors/github"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/services"
	"github.com/custodia-labs/ingest-cli/internal/tokenizer"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open metadata store: %w", err)
	}
	defer store.Close()

	sink := fsdir.New(documentsDir(configStore))

	service := services.NewIngestService(
		[]driven.Connector{
			confluence.New(),
			github.New(),
		},
		sink,
		tokenizer.New(),
		store.RunStore(),
	)

	cli.SetVersion(Version)
	cli.SetIngestor(service)
	cli.SetRunLister(service)
	return cli.Execute()
}

// documentsDir resolves the destination root from configuration,
// defaulting to ~/.ingest/documents.
func documentsDir(cfg driven.ConfigStore) string {
	if dir, ok := cfg.Get(driven.KeyDocumentsDir); ok && dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "documents"
	}
	return filepath.Join(home, ".ingest", "documents")
}
