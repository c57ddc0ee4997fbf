package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lithiumscope/internal/config"
	"github.com/rshade/lithiumscope/internal/engine"
	"github.com/rshade/lithiumscope/internal/logging"
)

// NewKPIsCmd creates the "kpis" command that prints the headline figures.
func NewKPIsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Headline supply-chain KPIs",
		Long: `Print total mining capacity, active facility count, processing output,
battery production capacity and average utilization.

Table output formats capacities in thousands the way the dashboard cards do;
JSON and NDJSON carry the raw numbers.`,
		Example: `  lithiumscope kpis
  lithiumscope kpis --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			ds, err := loadDataset(ctx, cmd)
			if err != nil {
				return err
			}

			kpis := engine.CalculateKPIs(ds.Repository)
			logging.FromContext(ctx).Debug().Ctx(ctx).
				Str("component", "cli").
				Str("operation", "kpis").
				Int("active_facilities", kpis.ActiveFacilities).
				Msg("calculated KPIs")

			return engine.RenderKPIs(cmd.OutOrStdout(), format, kpis)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", outputFlagUsage)
	return cmd
}

// NewEnvironmentCmd creates the "environment" command for the carbon, water
// and renewable averages.
func NewEnvironmentCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "environment",
		Aliases: []string{"env"},
		Short:   "Environmental impact averages",
		Long: `Print the average carbon intensity and water consumption of operational
mining operations, and the average renewable energy share of operational
sites of every kind (mining, processing and battery) that report a nonzero
share.

When the carbon unit is recognised the output includes a per-tonne equivalency
in miles driven and smartphones charged.`,
		Example: `  lithiumscope environment
  lithiumscope env --output ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			ds, err := loadDataset(commandContext(cmd), cmd)
			if err != nil {
				return err
			}

			report := engine.NewEnvironmentalReport(ds.Repository)
			return engine.RenderEnvironmental(cmd.OutOrStdout(), format, report, config.GetOutputPrecision())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", outputFlagUsage)
	return cmd
}

// NewFlowCmd creates the "flow" command that prints the flow-graph projection.
func NewFlowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Supply-chain flow graph nodes",
		Long: `Print one node per operational entity, grouped by stage (mining, processing,
battery). Links are not inferred, so the link list is always empty.`,
		Example: `  lithiumscope flow
  lithiumscope flow --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			ds, err := loadDataset(commandContext(cmd), cmd)
			if err != nil {
				return err
			}
			return engine.RenderFlow(cmd.OutOrStdout(), format, engine.SupplyChainFlow(ds.Repository))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", outputFlagUsage)
	return cmd
}
