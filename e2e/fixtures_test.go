//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MonitorFixture is one entry of a test catalog
type MonitorFixture struct {
	Name     string
	Type     string
	Severity string
	Model    string
	Alerts   int
}

// MonitorOption customizes a fixture
type MonitorOption func(*MonitorFixture)

// WithType sets the monitor type
func WithType(t string) MonitorOption {
	return func(m *MonitorFixture) { m.Type = t }
}

// WithModel sets the monitored model
func WithModel(model string) MonitorOption {
	return func(m *MonitorFixture) { m.Model = model }
}

// WithAlerts sets the alert count
func WithAlerts(n int) MonitorOption {
	return func(m *MonitorFixture) { m.Alerts = n }
}

// Monitor builds a fixture with sensible defaults
func Monitor(name string, options ...MonitorOption) MonitorFixture {
	m := MonitorFixture{Name: name, Type: "drift", Severity: "medium", Model: "churn"}
	for _, opt := range options {
		opt(&m)
	}
	return m
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a TOML catalog into the workspace. Later entries are newer.
func (tf *TUITestFramework) WriteCatalog(name string, monitors ...MonitorFixture) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var b strings.Builder
	for i, m := range monitors {
		fmt.Fprintf(&b, "[[monitors]]\n")
		fmt.Fprintf(&b, "name = %q\n", m.Name)
		fmt.Fprintf(&b, "type = %q\n", m.Type)
		fmt.Fprintf(&b, "severity = %q\n", m.Severity)
		fmt.Fprintf(&b, "model = %q\n", m.Model)
		fmt.Fprintf(&b, "alerts = %d\n", m.Alerts)
		fmt.Fprintf(&b, "created_at = %s\n\n", base.Add(time.Duration(i)*time.Hour).Format(time.RFC3339))
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
