package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/lithiumscope/internal/config"
	"github.com/rshade/lithiumscope/internal/engine"
	"github.com/rshade/lithiumscope/internal/ingest"
	"github.com/rshade/lithiumscope/internal/logging"
)

// commandContext returns the command context, falling back to Background for
// commands executed outside Execute (tests calling RunE directly).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadDataset resolves the dataset directory from --dataset, the config file
// and LITHIUMSCOPE_DATASET_DIR, and loads it. An empty directory selects the
// embedded dataset.
func loadDataset(ctx context.Context, cmd *cobra.Command) (*ingest.Dataset, error) {
	log := logging.FromContext(ctx)

	flagDir, _ := cmd.Flags().GetString("dataset")
	dir := config.GetDatasetDir(flagDir)

	source := dir
	if source == "" {
		source = "embedded"
	}
	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "load_dataset").
		Str("source", source).
		Msg("loading dataset")

	ds, err := ingest.Load(ctx, dir)
	if err != nil {
		log.Error().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "load_dataset").
			Str("source", source).
			Err(err).
			Msg("failed to load dataset")
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	return ds, nil
}

// resolveOutputFormat applies the configured default to flagValue and parses it.
func resolveOutputFormat(flagValue string) (engine.OutputFormat, error) {
	return engine.ParseOutputFormat(config.GetOutputFormat(flagValue))
}

// outputFlagUsage is the --output help text for views without CSV.
const outputFlagUsage = "output format (table, json, ndjson); defaults to output.default_format"
