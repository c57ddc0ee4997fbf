package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/lithiumscope/internal/config"
	"github.com/rshade/lithiumscope/internal/ingest"
)

// NewConfigShowCmd prints the effective configuration (defaults, file and
// environment merged) as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling configuration: %w", err)
			}
			if cfg.Path() != "" {
				cmd.Printf("# %s\n", cfg.Path())
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

// NewConfigGetCmd prints a single configuration value by dotted key.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print a configuration value",
		Example: `  lithiumscope config get output.default_format`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration for semantic correctness and, when
dataset.dir is set, checks that the directory holds a loadable dataset.`,
		Example: `  # Validate current configuration
  lithiumscope config validate

  # Validate and show detailed information
  lithiumscope config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	var ds *ingest.Dataset
	if cfg.Dataset.Dir != "" {
		var err error
		ds, err = ingest.LoadDir(commandContext(cmd), cfg.Dataset.Dir)
		if err != nil {
			return fmt.Errorf("dataset.dir is not a valid dataset: %w", err)
		}
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, ds)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, ds *ingest.Dataset) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Dashboard page size: %d\n", cfg.Dashboard.PageSize)

	if ds == nil {
		cmd.Println("  Dataset: embedded")
		return
	}
	cmd.Printf("  Dataset: %s (%s, schema %s, as of %s)\n",
		cfg.Dataset.Dir, ds.Manifest.Name, ds.Manifest.SchemaVersion, ds.Manifest.AsOf)
	cmd.Printf("  Records: %d\n", ds.Repository.Len())
}
