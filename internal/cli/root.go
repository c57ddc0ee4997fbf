// Package cli implements the lithiumscope command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/lithiumscope/internal/config"
	"github.com/rshade/lithiumscope/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the lithiumscope CLI.
// It wires up configuration, logging and tracing, then registers the view
// commands (kpis, environment, facilities, flow, dashboard) and the config
// and version commands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "lithiumscope",
		Short:   "Lithium supply-chain analytics",
		Long:    "lithiumscope: KPIs, environmental metrics and facility views over a lithium supply-chain dataset",
		Version: ver,
		Example: rootCmdExample,
		// Usage on every RunE error drowns the message; main prints errors.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.InitGlobalConfig()
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("dataset", "",
		"dataset directory (manifest.yaml + collection JSON); defaults to the embedded dataset")

	cmd.AddCommand(
		NewKPIsCmd(),
		NewEnvironmentCmd(),
		NewFacilitiesCmd(),
		NewFlowCmd(),
		NewDashboardCmd(),
		newConfigCmd(),
		NewVersionCmd(ver),
	)

	return cmd
}

const rootCmdExample = `  # Headline KPIs from the embedded dataset
  lithiumscope kpis

  # Environmental averages as JSON
  lithiumscope environment --output json

  # Operational Australian facilities, highest utilization first
  lithiumscope facilities --search australia --status active --sort utilization:desc

  # Export every facility as CSV
  lithiumscope facilities --output csv > facilities.csv

  # Use an alternative dataset directory
  lithiumscope kpis --dataset ./data/2025

  # Interactive dashboard
  lithiumscope dashboard`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigGetCmd(), NewConfigValidateCmd())
	return cmd
}
