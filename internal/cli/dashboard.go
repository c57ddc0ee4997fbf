package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/lithiumscope/internal/config"
	"github.com/rshade/lithiumscope/internal/engine"
	"github.com/rshade/lithiumscope/internal/tui"
)

// dashboardParams holds the parameters for the dashboard command.
type dashboardParams struct {
	plain   bool
	noColor bool
	color   bool
}

// NewDashboardCmd creates the "dashboard" command. On a terminal it runs the
// interactive TUI; otherwise it prints a styled or plain one-shot summary.
func NewDashboardCmd() *cobra.Command {
	var params dashboardParams

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive supply-chain dashboard",
		Long: `Show the KPI cards, environmental averages and the facility table.

On an interactive terminal this starts a full-screen dashboard:
  s        cycle sort field      o   reverse sort order
  /        filter by name or country
  enter    facility detail       esc back / clear filter
  pgup/dn  change page           q   quit

When stdout is not a terminal, or with --plain, a static summary is printed.`,
		Example: `  lithiumscope dashboard
  lithiumscope dashboard --plain
  lithiumscope dashboard --color | less -R`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeDashboard(cmd, params)
		},
	}

	cmd.Flags().BoolVar(&params.plain, "plain", false, "force non-interactive plain text output")
	cmd.Flags().BoolVar(&params.noColor, "no-color", false, "disable colors (implies --plain)")
	cmd.Flags().BoolVar(&params.color, "color", false, "style output even when stdout is not a terminal")

	return cmd
}

func executeDashboard(cmd *cobra.Command, params dashboardParams) error {
	ctx := commandContext(cmd)

	mode := tui.DetectOutputMode(params.color, params.noColor, params.plain)
	// The TUI reads keys from stdin; a piped stdin cannot drive it.
	if mode == tui.OutputModeInteractive && !isTerminal(os.Stdin) {
		mode = tui.OutputModeStyled
	}

	logger.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "dashboard").
		Str("mode", mode.String()).
		Msg("dashboard output mode")

	if mode == tui.OutputModeInteractive {
		return runInteractiveDashboard(ctx, cmd)
	}

	ds, err := loadDataset(ctx, cmd)
	if err != nil {
		return err
	}

	if mode == tui.OutputModeStyled {
		rendered := tui.RenderDashboardSummary(
			engine.CalculateKPIs(ds.Repository),
			engine.NewEnvironmentalReport(ds.Repository),
			engine.AllFacilities(ds.Repository),
			tui.TerminalWidth(),
		)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	}

	return renderPlainDashboard(cmd.OutOrStdout(), ds.Repository)
}

// renderPlainDashboard writes the KPI, environmental and facility tables one
// after another.
func renderPlainDashboard(w io.Writer, src engine.Source) error {
	if err := engine.RenderKPIs(w, engine.OutputTable, engine.CalculateKPIs(src)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	report := engine.NewEnvironmentalReport(src)
	if err := engine.RenderEnvironmental(w, engine.OutputTable, report, config.GetOutputPrecision()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return engine.RenderFacilities(w, engine.OutputTable, engine.AllFacilities(src), nil)
}

func runInteractiveDashboard(ctx context.Context, cmd *cobra.Command) error {
	load := func(ctx context.Context) (engine.Source, error) {
		ds, err := loadDataset(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return ds.Repository, nil
	}

	model, _ := tui.NewDashboardModel(ctx, load, config.GetGlobalConfig().Dashboard.PageSize)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	if m, ok := final.(tui.DashboardModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
