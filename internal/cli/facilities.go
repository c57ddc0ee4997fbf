package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/lithiumscope/internal/cli/pagination"
	"github.com/rshade/lithiumscope/internal/engine"
	"github.com/rshade/lithiumscope/internal/logging"
)

// facilitiesParams holds the parameters for the facilities command.
type facilitiesParams struct {
	output   string
	search   string
	typ      string
	status   string
	sort     string
	page     int
	pageSize int
	limit    int
	offset   int
}

// NewFacilitiesCmd creates the "facilities" command: the operations table
// with search, type and status filters, sorting, pagination and CSV export.
func NewFacilitiesCmd() *cobra.Command {
	var params facilitiesParams

	cmd := &cobra.Command{
		Use:   "facilities",
		Short: "List mining, processing and battery facilities",
		Long: `List every facility as a unified row: status, name, type, country,
capacity and utilization. Rows come mining first, then processing, then
battery, each in dataset order, unless --sort is given.

--search matches a case-insensitive substring of the facility name or country.
--type and --status take a label (Mining, Processing, Battery / active,
caution, construction) or "all".

--sort capacity compares the raw capacity figure, so tonnes and GWh rows
interleave when types are mixed.

Pagination is either page-based (--page, --page-size) or offset-based
(--limit, --offset); the two modes are mutually exclusive.`,
		Example: `  # Every facility
  lithiumscope facilities

  # Chilean facilities sorted by capacity, largest first
  lithiumscope facilities --search chile --sort capacity:desc

  # Second page of ten
  lithiumscope facilities --page 2 --page-size 10

  # Operational battery sites as CSV
  lithiumscope facilities --type battery --status active --output csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeFacilities(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.output, "output", "o", "",
		"output format (table, json, ndjson, csv); defaults to output.default_format")
	cmd.Flags().StringVar(&params.search, "search", "", "case-insensitive substring of name or country")
	cmd.Flags().StringVar(&params.typ, "type", "", "facility type: Mining, Processing, Battery or all")
	cmd.Flags().StringVar(&params.status, "status", "", "facility status: active, caution, construction or all")
	cmd.Flags().StringVar(&params.sort, "sort", "", "sort as field[:asc|desc]")
	cmd.Flags().IntVar(&params.page, "page", 0, "page number (1-based)")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0,
		fmt.Sprintf("rows per page (default %d when --page is set)", pagination.DefaultPageSize))
	cmd.Flags().IntVar(&params.limit, "limit", pagination.DefaultLimit, "maximum rows (0 = unlimited)")
	cmd.Flags().IntVar(&params.offset, "offset", pagination.DefaultOffset, "rows to skip")

	return cmd
}

// buildPaginationParams converts flags into validated pagination params.
func buildPaginationParams(params facilitiesParams) (pagination.PaginationParams, error) {
	p := *pagination.NewPaginationParams()
	p.Page = params.page
	p.PageSize = params.pageSize
	p.Limit = params.limit
	p.Offset = params.offset

	if p.Page > 0 && p.PageSize == 0 {
		p.PageSize = pagination.DefaultPageSize
	}

	field, order, err := pagination.ParseSort(params.sort)
	if err != nil {
		return p, err
	}
	if err = pagination.NewFacilitySorter().ValidateField(field); err != nil {
		return p, err
	}
	p.SortField = field
	p.SortOrder = order

	if err = p.Validate(); err != nil {
		return p, fmt.Errorf("invalid pagination: %w", err)
	}
	return p, nil
}

// executeFacilities is the execution pipeline for the facilities command.
func executeFacilities(cmd *cobra.Command, params facilitiesParams) error {
	ctx := commandContext(cmd)
	log := logging.FromContext(ctx)

	// 1. Validate flags
	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}
	pageParams, err := buildPaginationParams(params)
	if err != nil {
		return err
	}
	query := engine.FacilityQuery{Search: params.search, Type: params.typ, Status: params.status}
	if err = ValidateFacilityQuery(query); err != nil {
		return err
	}

	// 2. Load and normalize
	ds, err := loadDataset(ctx, cmd)
	if err != nil {
		return err
	}
	rows := engine.AllFacilities(ds.Repository)

	// 3. Filter, sort, paginate
	rows, err = ApplyFacilityFilters(ctx, rows, query)
	if err != nil {
		return err
	}
	if pageParams.SortField != "" {
		rows = pagination.NewFacilitySorter().Sort(rows, pageParams.SortField, pageParams.SortOrder)
	}

	total := len(rows)
	rows = pagination.ApplyToSlice(pageParams, rows)

	var meta any
	if pageParams.IsEnabled() {
		meta = pagination.NewPaginationMeta(pageParams, total)
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "facilities").
		Int("total", total).
		Int("shown", len(rows)).
		Str("format", string(format)).
		Msg("rendering facilities")

	// 4. Render
	return engine.RenderFacilities(cmd.OutOrStdout(), format, rows, meta)
}
