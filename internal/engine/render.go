package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rshade/lithiumscope/internal/greenops"
)

// OutputFormat selects a renderer.
type OutputFormat string

// Supported output formats. CSV is only available for facility lists.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
	OutputCSV    OutputFormat = "csv"
)

// ErrUnsupportedFormat is returned for an unknown format or one the view
// cannot render.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseOutputFormat parses a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON, OutputCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json, ndjson or csv)", ErrUnsupportedFormat, s)
	}
}

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// colWidthName caps the facility name column in tables.
const colWidthName = 36

// truncateMinLen is the minimum truncation length below which no ellipsis is added.
const truncateMinLen = 3

// CSVHeader is the first row of a facility CSV export.
//
//nolint:gochecknoglobals // Fixed export header.
var CSVHeader = []string{"Status", "Facility Name", "Type", "Country", "Capacity", "Utilization"}

// StatusIcon returns a single-character icon for a FacilityStatus.
func StatusIcon(status FacilityStatus) string {
	switch status {
	case StatusActive:
		return "✓" // check mark
	case StatusConstruction:
		return "+"
	case StatusCaution:
		return "!"
	default:
		return "?"
	}
}

// FormatUtilization renders a rate as "92%" and passes labels through.
func FormatUtilization(u Utilization) string {
	if !u.IsNumber() {
		return u.Label
	}
	return u.String() + "%"
}

// truncate shortens s to maxLen runes, ending in "..." when there is room.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= truncateMinLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func unsupported(view string, format OutputFormat) error {
	return fmt.Errorf("%w: %s cannot be rendered as %q", ErrUnsupportedFormat, view, format)
}

func writeIndentedJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling line: %w", err)
	}
	if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("writing NDJSON line: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// KPIs
// ---------------------------------------------------------------------------

// KPI card labels and units.
const (
	kpiMiningLabel      = "Total Mining Capacity"
	kpiActiveLabel      = "Active Facilities"
	kpiProcessingLabel  = "Processing Output"
	kpiBatteryLabel     = "Battery Production"
	kpiUtilizationLabel = "Average Utilization"
)

// KPICard is one formatted headline figure.
type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// KPICards formats k the way the dashboard cards show it: capacities in
// thousands, battery capacity and utilization with one decimal.
func KPICards(k KPIs) []KPICard {
	return []KPICard{
		{kpiMiningLabel, greenops.FormatThousands(k.TotalMiningCapacity), "tonnes LCE/year"},
		{kpiActiveLabel, strconv.Itoa(k.ActiveFacilities), "total"},
		{kpiProcessingLabel, greenops.FormatThousands(k.ProcessingOutput), "tonnes/year refined"},
		{kpiBatteryLabel, strconv.FormatFloat(k.BatteryCapacity, 'f', 1, 64), "GWh annual capacity"},
		{kpiUtilizationLabel, strconv.FormatFloat(k.AvgUtilization, 'f', 1, 64) + "%", "facility utilization"},
	}
}

// RenderKPIs writes k in the requested format. JSON carries raw numbers.
func RenderKPIs(w io.Writer, format OutputFormat, k KPIs) error {
	switch format {
	case OutputTable:
		return renderCardsTable(w, KPICards(k))
	case OutputJSON:
		return writeIndentedJSON(w, k)
	case OutputNDJSON:
		return writeJSONLine(w, k)
	default:
		return unsupported("KPIs", format)
	}
}

func renderCardsTable(w io.Writer, cards []KPICard) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "METRIC\tVALUE\tUNIT\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, c := range cards {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Label, c.Value, c.Unit); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	return tw.Flush()
}

// ---------------------------------------------------------------------------
// Environmental metrics
// ---------------------------------------------------------------------------

// EnvironmentalReport is EnvironmentalMetrics plus the labels needed to
// display them.
type EnvironmentalReport struct {
	EnvironmentalMetrics

	CarbonIntensityUnit  string                     `json:"carbonIntensityUnit"`
	WaterConsumptionUnit string                     `json:"waterConsumptionUnit"`
	Equivalency          *greenops.EquivalencyOutput `json:"equivalency,omitempty"`
}

// NewEnvironmentalReport computes the metrics for src and, when the carbon
// unit is recognised, the per-tonne equivalency of the average.
func NewEnvironmentalReport(src Source) EnvironmentalReport {
	r := EnvironmentalReport{
		EnvironmentalMetrics: CalculateEnvironmentalMetrics(src),
		CarbonIntensityUnit:  CarbonIntensityUnit(src),
		WaterConsumptionUnit: WaterConsumptionUnit(src),
	}

	out, err := greenops.Describe(greenops.IntensityInput{
		Value: r.AvgCarbonIntensity,
		Unit:  r.CarbonIntensityUnit,
	})
	if err == nil && !out.IsEmpty {
		r.Equivalency = &out
	}

	return r
}

// RenderEnvironmental writes r in the requested format. precision applies to
// table values only.
func RenderEnvironmental(w io.Writer, format OutputFormat, r EnvironmentalReport, precision int) error {
	switch format {
	case OutputTable:
		return renderEnvironmentalTable(w, r, precision)
	case OutputJSON:
		return writeIndentedJSON(w, r)
	case OutputNDJSON:
		return writeJSONLine(w, r)
	default:
		return unsupported("environmental metrics", format)
	}
}

// EnvironmentalCards formats the three averages with precision decimals.
func EnvironmentalCards(r EnvironmentalReport, precision int) []KPICard {
	return []KPICard{
		{"Average Carbon Intensity", greenops.FormatFloat(r.AvgCarbonIntensity, precision), r.CarbonIntensityUnit},
		{"Water Usage Efficiency", greenops.FormatFloat(r.AvgWaterConsumption, precision), r.WaterConsumptionUnit},
		{"Renewable Energy Mix", greenops.FormatFloat(r.AvgRenewableEnergy, precision), "%"},
	}
}

func renderEnvironmentalTable(w io.Writer, r EnvironmentalReport, precision int) error {
	if err := renderCardsTable(w, EnvironmentalCards(r, precision)); err != nil {
		return err
	}

	if r.Equivalency != nil {
		if _, err := fmt.Fprintf(w, "\n%s\n", r.Equivalency.DisplayText); err != nil {
			return fmt.Errorf("writing equivalency: %w", err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Facilities
// ---------------------------------------------------------------------------

// RenderFacilities writes rows in the requested format. pagination, when
// non-nil, is included in the JSON envelope and summarised under the table.
func RenderFacilities(w io.Writer, format OutputFormat, rows []Facility, pagination any) error {
	switch format {
	case OutputTable:
		return renderFacilitiesTable(w, rows, pagination)
	case OutputJSON:
		return renderFacilitiesJSON(w, rows, pagination)
	case OutputNDJSON:
		for _, row := range rows {
			if err := writeJSONLine(w, row); err != nil {
				return err
			}
		}
		return nil
	case OutputCSV:
		return RenderFacilitiesAsCSV(w, rows)
	default:
		return unsupported("facilities", format)
	}
}

func renderFacilitiesTable(w io.Writer, rows []Facility, pagination any) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "STATUS\tFACILITY\tTYPE\tCOUNTRY\tCAPACITY\tUTILIZATION\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t--------\t----\t-------\t--------\t-----------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, f := range rows {
		if _, err := fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\t%s\n",
			StatusIcon(f.Status), f.Status,
			truncate(f.Name, colWidthName), f.Type, f.Country,
			f.Capacity, FormatUtilization(f.Utilization),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	footer := fmt.Sprintf("\n%d facilities", len(rows))
	if s, ok := pagination.(fmt.Stringer); ok {
		footer += " (" + s.String() + ")"
	}
	if _, err := fmt.Fprintln(w, footer); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

type facilitiesEnvelope struct {
	Facilities []Facility `json:"facilities"`
	Count      int        `json:"count"`
	Pagination any        `json:"pagination,omitempty"`
}

func renderFacilitiesJSON(w io.Writer, rows []Facility, pagination any) error {
	// Initialize to empty slice so JSON produces [] instead of null.
	if rows == nil {
		rows = []Facility{}
	}
	return writeIndentedJSON(w, facilitiesEnvelope{
		Facilities: rows,
		Count:      len(rows),
		Pagination: pagination,
	})
}

// RenderFacilitiesAsCSV writes the operations-table export: a fixed header,
// then one row per facility, every cell double-quoted.
func RenderFacilitiesAsCSV(w io.Writer, rows []Facility) error {
	if err := writeQuotedRecord(w, CSVHeader); err != nil {
		return err
	}
	for _, f := range rows {
		record := []string{
			f.Status.String(),
			f.Name,
			f.Type.String(),
			f.Country,
			f.Capacity,
			FormatUtilization(f.Utilization),
		}
		if err := writeQuotedRecord(w, record); err != nil {
			return err
		}
	}
	return nil
}

// writeQuotedRecord quotes every field, doubling embedded quotes.
// encoding/csv only quotes fields that need it.
func writeQuotedRecord(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing CSV record: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Flow graph
// ---------------------------------------------------------------------------

// RenderFlow writes g in the requested format. NDJSON emits one node per line.
func RenderFlow(w io.Writer, format OutputFormat, g FlowGraph) error {
	switch format {
	case OutputTable:
		return renderFlowTable(w, g)
	case OutputJSON:
		return writeIndentedJSON(w, g)
	case OutputNDJSON:
		for _, n := range g.Nodes {
			if err := writeJSONLine(w, n); err != nil {
				return err
			}
		}
		return nil
	default:
		return unsupported("flow graph", format)
	}
}

func renderFlowTable(w io.Writer, g FlowGraph) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "STAGE\tNODE\tLOCATION\tCAPACITY\tUTILIZATION\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t--------\t--------\t-----------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, n := range g.Nodes {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%%\n",
			n.Stage, truncate(n.Name, colWidthName), n.Location,
			greenops.FormatQuantity(n.Capacity), greenops.FormatQuantity(n.Utilization),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%d nodes, %d links\n", len(g.Nodes), len(g.Links)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
