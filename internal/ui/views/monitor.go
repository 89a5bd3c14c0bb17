package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"waterdeck/internal/domain"
)

// Column widths in cells
const (
	nameWidth     = 28
	typeWidth     = 14
	severityWidth = 9
	modelWidth    = 18
	alertsWidth   = 7
)

// MonitorRenderer handles rendering of monitor rows
type MonitorRenderer struct {
	styles       *Styles
	showSeverity bool
	showModel    bool
}

// NewMonitorRenderer creates a new monitor renderer
func NewMonitorRenderer(styles *Styles, showSeverity, showModel bool) *MonitorRenderer {
	return &MonitorRenderer{
		styles:       styles,
		showSeverity: showSeverity,
		showModel:    showModel,
	}
}

// RenderHeader renders the column titles
func (r *MonitorRenderer) RenderHeader() string {
	cells := []string{
		cell("NAME", nameWidth),
		cell("TYPE", typeWidth),
	}
	if r.showSeverity {
		cells = append(cells, cell("SEVERITY", severityWidth))
	}
	if r.showModel {
		cells = append(cells, cell("MODEL", modelWidth))
	}
	cells = append(cells, cell("ALERTS", alertsWidth), "LAST RUN")
	return r.styles.Header.Render("  " + strings.Join(cells, " "))
}

// RenderMonitor renders one table row
func (r *MonitorRenderer) RenderMonitor(m *domain.Monitor, isSelected bool, searchQuery string, now time.Time) string {
	if m == nil {
		return ""
	}

	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}
	parts = append(parts, base.Render(cursor))

	// Name, with the search match highlighted
	name := truncate(m.Name, nameWidth)
	padding := base.Render(strings.Repeat(" ", nameWidth-lipgloss.Width(name)))
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		parts = append(parts, r.highlightMatch(name, searchQuery,
			base.Foreground(lipgloss.Color("226")).Bold(true), base)+padding)
	} else {
		parts = append(parts, base.Render(name)+padding)
	}

	typeStyle := base.Foreground(lipgloss.Color(GetTypeColor(m.Type)))
	parts = append(parts, base.Render(" "), typeStyle.Render(cell(m.Type.Label(), typeWidth)))

	if r.showSeverity {
		sevStyle := base.Foreground(lipgloss.Color(GetSeverityColor(m.Severity)))
		if m.Severity == domain.SeverityHigh {
			sevStyle = sevStyle.Bold(true)
		}
		parts = append(parts, base.Render(" "), sevStyle.Render(cell(string(m.Severity), severityWidth)))
	}

	if r.showModel {
		model := m.ModelName
		if model == "" {
			model = "-"
		}
		parts = append(parts, base.Render(" "+cell(model, modelWidth)))
	}

	alerts := cell(fmt.Sprintf("%d", m.AlertCount), alertsWidth)
	if m.AlertCount > 0 {
		parts = append(parts, base.Render(" "), r.styles.Alerts.Background(lipgloss.Color(bgColor)).Render(alerts))
	} else {
		parts = append(parts, base.Render(" "+alerts))
	}

	parts = append(parts, base.Render(" "+LastRunText(m.LastRun, now)))

	return strings.Join(parts, "")
}

// LastRunText describes when a monitor last ran relative to now
func LastRunText(lastRun *time.Time, now time.Time) string {
	if lastRun == nil {
		return "never"
	}
	return humanize.RelTime(*lastRun, now, "ago", "from now")
}

// cell pads or truncates s to exactly width cells
func cell(s string, width int) string {
	s = truncate(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// truncate shortens s to width cells with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// highlightMatch highlights matching text within a string
func (r *MonitorRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Case folding can change byte lengths; fall back to plain text then
	if index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
