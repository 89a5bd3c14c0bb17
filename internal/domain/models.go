package domain

import (
	"time"

	"github.com/google/uuid"
)

// MonitorType is the kind of check a monitor runs
type MonitorType string

const (
	MonitorDataQuality MonitorType = "data_quality"
	MonitorPerformance MonitorType = "performance"
	MonitorDrift       MonitorType = "drift"
)

// Label returns the human readable name of the monitor type
func (t MonitorType) Label() string {
	switch t {
	case MonitorDataQuality:
		return "Data Quality"
	case MonitorPerformance:
		return "Performance"
	case MonitorDrift:
		return "Drift"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known monitor types
func (t MonitorType) Valid() bool {
	switch t {
	case MonitorDataQuality, MonitorPerformance, MonitorDrift:
		return true
	}
	return false
}

// Severity is how loudly a monitor alerts
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Monitor represents a single configured model monitor
type Monitor struct {
	ID         uuid.UUID
	Name       string
	Type       MonitorType
	Severity   Severity
	ModelName  string
	AlertCount int
	CreatedAt  time.Time
	LastRun    *time.Time // nil if the monitor never ran
}

// ListMeta describes one page of a monitor listing
type ListMeta struct {
	Page    int
	Limit   int
	Total   int // monitors in the catalog
	Matched int // monitors matching the search term
}

// Pages returns the number of pages needed for the matched monitors
func (m ListMeta) Pages() int {
	if m.Limit <= 0 || m.Matched == 0 {
		return 1
	}
	return (m.Matched + m.Limit - 1) / m.Limit
}
