package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"waterdeck/internal/domain"
)

// RenderMonitorDetail builds the text shown in the detail pager for one monitor
func RenderMonitorDetail(m *domain.Monitor, now time.Time) string {
	var info strings.Builder
	bold := lipgloss.NewStyle().Bold(true)

	info.WriteString(bold.Render(m.Name))
	info.WriteString("\n\n")

	info.WriteString(fmt.Sprintf("ID:       %s\n", m.ID))
	info.WriteString("Type:     ")
	info.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(GetTypeColor(m.Type))).Render(m.Type.Label()))
	info.WriteString("\n")
	info.WriteString("Severity: ")
	info.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(GetSeverityColor(m.Severity))).Render(string(m.Severity)))
	info.WriteString("\n")

	model := m.ModelName
	if model == "" {
		model = "-"
	}
	info.WriteString(fmt.Sprintf("Model:    %s\n\n", model))

	info.WriteString(bold.Render("Activity:"))
	info.WriteString("\n")
	info.WriteString(fmt.Sprintf("  Created:  %s (%s)\n", m.CreatedAt.Format(time.RFC3339), humanize.RelTime(m.CreatedAt, now, "ago", "from now")))
	if m.LastRun != nil {
		info.WriteString(fmt.Sprintf("  Last run: %s (%s)\n", m.LastRun.Format(time.RFC3339), LastRunText(m.LastRun, now)))
	} else {
		info.WriteString("  Last run: never\n")
	}

	alerts := fmt.Sprintf("%s %s", humanize.Comma(int64(m.AlertCount)), pluralAlerts(m.AlertCount))
	if m.AlertCount > 0 {
		alerts = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Render(alerts)
	}
	info.WriteString("  Alerts:   ")
	info.WriteString(alerts)
	info.WriteString("\n\n")

	info.WriteString("Press q to close")
	return info.String()
}

func pluralAlerts(n int) string {
	if n == 1 {
		return "alert"
	}
	return "alerts"
}
