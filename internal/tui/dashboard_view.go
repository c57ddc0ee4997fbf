package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/lithiumscope/internal/engine"
)

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return CriticalStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			SubtleStyle.Render("Press 'q' to quit") + "\n"
	case ViewStateLoading:
		return m.loadingState.View()
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m DashboardModel) renderListView() string {
	sections := []string{
		renderKPICards(engine.KPICards(m.kpis)),
		m.renderEnvironmentalLine(),
		m.table.View(),
	}

	if footer := m.renderPaginationFooter(); footer != "" {
		sections = append(sections, footer)
	}
	sections = append(sections, m.renderStatusBar())

	if m.showFilter {
		sections = append(sections, LabelStyle.Render("Filter: ")+m.textInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderKPICards lays the headline cards out side by side.
func renderKPICards(cards []engine.KPICard) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := LabelStyle.Render(c.Label) + "\n" +
			ValueStyle.Render(c.Value) + "\n" +
			SubtleStyle.Render(c.Unit)
		rendered = append(rendered, CardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderEnvironmentalLine condenses the environmental averages to one line.
func (m DashboardModel) renderEnvironmentalLine() string {
	cards := engine.EnvironmentalCards(m.env, envPrecision)
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, LabelStyle.Render(c.Label+": ")+ValueStyle.Render(c.Value+" "+c.Unit))
	}
	return strings.Join(parts, "  ")
}

func (m DashboardModel) renderStatusBar() string {
	sortLabel := "source order"
	if field := m.sortField(); field != "" {
		sortLabel = field + " " + m.sortOrder
	}

	filterStatus := ""
	if m.textInput.Value() != "" {
		filterStatus = fmt.Sprintf(" | Filtered: %d/%d", len(m.rows), len(m.allRows))
	}

	status := fmt.Sprintf(
		"Sort: %s%s | Press 's' to cycle, 'o' to reverse, '/' to filter, 'q' to quit",
		sortLabel, filterStatus)
	return SubtleStyle.Render(status)
}

func (m DashboardModel) renderDetailView() string {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return msgSelectedOutOfBounds
	}

	f := m.rows[m.selected]
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("FACILITY DETAIL"))
	content.WriteString("\n\n")
	writeDetailLine(&content, "Name:        ", f.Name)
	writeDetailLine(&content, "ID:          ", f.ID)
	writeDetailLine(&content, "Type:        ", f.Type.String())
	writeDetailLine(&content, "Country:     ", fmt.Sprintf("%s (%s)", f.Country, f.CountryCode))
	writeDetailLine(&content, "Capacity:    ", f.Capacity)

	content.WriteString(LabelStyle.Render("Utilization: "))
	content.WriteString(utilizationStyle(f.Utilization).Render(engine.FormatUtilization(f.Utilization)))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Status:      "))
	content.WriteString(statusStyle(f.Status).Render(engine.StatusIcon(f.Status) + " " + f.Status.String()))
	content.WriteString("\n")

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func writeDetailLine(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}

func statusStyle(s engine.FacilityStatus) lipgloss.Style {
	switch s {
	case engine.StatusActive:
		return OKStyle
	case engine.StatusConstruction:
		return InfoStyle
	case engine.StatusCaution:
		return WarningStyle
	default:
		return ValueStyle
	}
}

// Utilization bands for the detail view.
const (
	utilizationHigh = 80.0
	utilizationLow  = 50.0
)

func utilizationStyle(u engine.Utilization) lipgloss.Style {
	if !u.IsNumber() {
		return SubtleStyle
	}
	switch v := *u.Value; {
	case v >= utilizationHigh:
		return OKStyle
	case v < utilizationLow:
		return WarningStyle
	default:
		return ValueStyle
	}
}
