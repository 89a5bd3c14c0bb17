package monitors

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterdeck/internal/domain"
)

func sortFixture() Store {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bravo := newMonitor("bravo", "fraud", domain.MonitorDrift, base)
	bravo.Severity, bravo.AlertCount = domain.SeverityHigh, 2
	alpha := newMonitor("Alpha", "churn", domain.MonitorPerformance, base.Add(time.Hour))
	alpha.Severity, alpha.AlertCount = domain.SeverityLow, 9
	charlie := newMonitor("charlie", "churn", domain.MonitorDataQuality, base.Add(2*time.Hour))
	charlie.Severity, charlie.AlertCount = domain.SeverityMedium, 2
	return NewMemoryStore([]*domain.Monitor{bravo, alpha, charlie})
}

func TestListSortsByRequestedField(t *testing.T) {
	store := sortFixture()

	tests := []struct {
		sort Sort
		want []string
	}{
		{Sort{}, []string{"charlie", "Alpha", "bravo"}},
		{DefaultSort(), []string{"charlie", "Alpha", "bravo"}},
		{Sort{Field: SortCreatedAt}, []string{"bravo", "Alpha", "charlie"}},
		{ByField(SortName), []string{"Alpha", "bravo", "charlie"}},
		{ByField(SortName).Reversed(), []string{"charlie", "bravo", "Alpha"}},
		{ByField(SortSeverity), []string{"bravo", "charlie", "Alpha"}},
		{Sort{Field: SortSeverity}, []string{"Alpha", "charlie", "bravo"}},
		// equal alert counts fall back to newest first
		{ByField(SortAlerts), []string{"Alpha", "charlie", "bravo"}},
		{Sort{Field: SortAlerts}, []string{"charlie", "bravo", "Alpha"}},
		{Sort{Field: "owner", Desc: false}, []string{"charlie", "Alpha", "bravo"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort.String(), func(t *testing.T) {
			rows, _ := List(store, Query{Sort: tt.sort})
			assert.Equal(t, tt.want, names(rows))
		})
	}
}

func TestSortAppliesBeforePaging(t *testing.T) {
	rows, meta := List(sortFixture(), Query{Limit: 2, Page: 2, Sort: ByField(SortName)})

	assert.Equal(t, []string{"charlie"}, names(rows))
	assert.Equal(t, 2, meta.Pages())
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in   string
		want Sort
	}{
		{"name", Sort{Field: SortName}},
		{"alerts", Sort{Field: SortAlerts, Desc: true}},
		{"created_at", DefaultSort()},
		{"created_at_asc", Sort{Field: SortCreatedAt}},
		{" Severity_DESC ", Sort{Field: SortSeverity, Desc: true}},
		{"name_desc", Sort{Field: SortName, Desc: true}},
	}
	for _, tt := range tests {
		got, err := ParseSort(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, got, mustParse(t, got.String()), "String round trips")
	}

	for _, bad := range []string{"", "owner", "name_up", "_desc"} {
		_, err := ParseSort(bad)
		assert.True(t, errors.Is(err, ErrUnknownSort), bad)
	}
}

func TestSortLabels(t *testing.T) {
	assert.Equal(t, "created ↓", DefaultSort().Label())
	assert.Equal(t, "name ↑", ByField(SortName).Label())
	assert.Len(t, SortFields(), 4)
	for _, f := range SortFields() {
		assert.True(t, f.Valid())
	}
}

func mustParse(t *testing.T, text string) Sort {
	t.Helper()
	s, err := ParseSort(text)
	require.NoError(t, err)
	return s
}
