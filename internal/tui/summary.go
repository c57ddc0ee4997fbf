package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/lithiumscope/internal/engine"
)

// envPrecision is the decimal count used for environmental averages.
const envPrecision = 2

// RenderDashboardSummary renders a boxed, non-interactive dashboard: KPI
// cards, environmental averages, the carbon equivalency line when available
// and a status count. width controls the box width.
func RenderDashboardSummary(
	kpis engine.KPIs,
	env engine.EnvironmentalReport,
	facilities []engine.Facility,
	width int,
) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("LITHIUM SUPPLY CHAIN"))
	content.WriteString("\n")
	cards := renderKPICards(engine.KPICards(kpis))
	content.WriteString(cards)
	content.WriteString("\n\n")

	content.WriteString(HeaderStyle.Render("ENVIRONMENTAL IMPACT"))
	content.WriteString("\n")
	for _, c := range engine.EnvironmentalCards(env, envPrecision) {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-26s", c.Label)))
		content.WriteString(ValueStyle.Render(c.Value))
		if c.Unit != "" {
			content.WriteString(" " + SubtleStyle.Render(c.Unit))
		}
		content.WriteString("\n")
	}
	if env.Equivalency != nil {
		content.WriteString(SubtleStyle.Render(env.Equivalency.DisplayText))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(renderStatusCounts(facilities))

	// Never narrower than the card row, or lipgloss wraps the cards apart.
	boxWidth := max(width-borderPadding, lipgloss.Width(cards)+borderPadding)
	return BoxStyle.Width(boxWidth).Render(content.String())
}

// renderStatusCounts writes "✓ 16 active  + 4 construction  ! 5 caution".
func renderStatusCounts(facilities []engine.Facility) string {
	counts := map[engine.FacilityStatus]int{}
	for _, f := range facilities {
		counts[f.Status]++
	}

	order := []engine.FacilityStatus{engine.StatusActive, engine.StatusConstruction, engine.StatusCaution}
	parts := make([]string, 0, len(order))
	for _, s := range order {
		label := fmt.Sprintf("%s %d %s", engine.StatusIcon(s), counts[s], s.String())
		parts = append(parts, statusStyle(s).Render(label))
	}
	return LabelStyle.Render("Facilities: ") + strings.Join(parts, "  ")
}
