package views

import (
	"github.com/charmbracelet/lipgloss"

	"waterdeck/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Search      lipgloss.Style
	Header      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Footer      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Alerts      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm:     lipgloss.NewStyle().Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Alerts:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

// GetSeverityColor returns the color for a monitor severity
func GetSeverityColor(severity domain.Severity) string {
	switch severity {
	case domain.SeverityHigh:
		return "203" // red
	case domain.SeverityMedium:
		return "214" // yellow
	case domain.SeverityLow:
		return "78" // green
	default:
		return "241"
	}
}

// GetTypeColor returns the color for a monitor type
func GetTypeColor(t domain.MonitorType) string {
	switch t {
	case domain.MonitorDataQuality:
		return "33" // blue
	case domain.MonitorPerformance:
		return "51" // cyan
	case domain.MonitorDrift:
		return "177" // purple
	default:
		return "252"
	}
}
